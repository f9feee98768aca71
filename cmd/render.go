package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/web"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page and its static files into a directory",
	Long: `render writes index.html in the initial view state (light theme, menu
closed, Home active) together with the embedded scripts and styles, for
hosting without the server. Scroll tracking and the contact form need the
server and are inert in the exported page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}
		if err := render(renderOut, func(f *os.File) error { return web.RenderPage(f, c) }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", filepath.Join(renderOut, "index.html"))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(renderCmd)
}

func render(dir string, page func(*os.File) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	if err := page(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return copyFS(filepath.Join(dir, "static"), web.StaticFiles())
}

func copyFS(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
