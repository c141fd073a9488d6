package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCommand(env *cliEnv) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the page to a static index.html",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(env.cfg, env.logger, nil)
			if err != nil {
				return err
			}
			defer a.carousels.Close()
			a.reloadCatalog(cmd.Context())

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			target := filepath.Join(outDir, "index.html")
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			if err := a.renderStatic(f); err != nil {
				f.Close()
				return fmt.Errorf("render %s: %w", target, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			env.logger.Info("Page written", zap.String("path", target))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	return cmd
}
