package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and content files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config %s ok\ncontent %s ok: %d skills, %d projects\n",
			cfgFile, cfg.ContentFile, len(c.Skills), len(c.Projects))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
