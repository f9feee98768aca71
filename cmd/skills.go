package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/arc"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the progress ring geometry for each skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SKILL\tLEVEL\tCIRCUMFERENCE\tDASH OFFSET")
		for _, s := range c.Skills {
			p := arc.ForLevel(s.Level)
			fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\n", s.Name, s.Level, p.Circumference, p.DashOffset)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
