package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shub-dev/portfolio/internal/storage"
	"github.com/shub-dev/portfolio/internal/upload"
)

func newUploadCommand(env *cliEnv) *cobra.Command {
	var (
		manifestPath string
		dryRun       bool
	)
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Publish profile and gallery images to the object store",
		Long: `Uploads every file named by the manifest, one at a time. A file that fails
is reported and skipped; the rest of the batch still runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := env.cfg, env.logger
			ctx := cmd.Context()

			if manifestPath == "" {
				manifestPath = cfg.Upload.Manifest
			}
			manifest := upload.DefaultManifest(filepath.Join(cfg.AssetsDir, "gallery"))
			if manifestPath != "" {
				m, err := upload.LoadManifest(manifestPath)
				if err != nil {
					return err
				}
				manifest = m
			}

			mappings, err := manifest.Expand()
			if err != nil {
				logger.Warn("Some manifest directories could not be read", zap.Error(err))
			}
			if len(mappings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to upload")
				return nil
			}

			out := cmd.OutOrStdout()
			if dryRun {
				rows := make([][]string, 0, len(mappings))
				for _, m := range mappings {
					rows = append(rows, []string{m.Local, m.Remote})
				}
				fmt.Fprintln(out, renderTable([]string{"Local", "Remote"}, rows, nil))
				return nil
			}

			unlock, err := upload.Lock(cfg.DBPath + ".upload.lock")
			if err != nil {
				return err
			}
			defer func() {
				if err := unlock(); err != nil {
					logger.Warn("Failed to release upload lock", zap.Error(err))
				}
			}()

			ledger, err := storage.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer ledger.Close()

			var store upload.Store
			if cfg.Upload.Endpoint != "" {
				store = upload.NewHTTPStore(cfg.Upload.Endpoint, cfg.Upload.Token, cfg.Upload.PublicURL)
			} else {
				publicBase := cfg.Upload.PublicURL
				if publicBase == "" {
					publicBase = "/uploads"
				}
				store = upload.DirStore{Root: cfg.Upload.Dir, PublicBase: publicBase}
			}

			runner := &upload.Runner{Store: store, Ledger: ledger, Logger: logger}
			report := runner.Run(ctx, mappings)

			rows := make([][]string, 0, len(report.Uploaded)+len(report.Failed))
			var total int64
			for _, r := range report.Uploaded {
				total += r.Size
				rows = append(rows, []string{"ok", r.Remote, humanize.Bytes(uint64(r.Size)), r.URL})
			}
			for _, f := range report.Failed {
				rows = append(rows, []string{"failed", f.Remote, "-", f.Err.Error()})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Status", "Remote", "Size", "URL / Error"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d uploaded (%s), %d failed\n",
				len(report.Uploaded), humanize.Bytes(uint64(total)), len(report.Failed))
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest (defaults to UPLOAD_MANIFEST or the built-in mapping)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the mappings without uploading")
	return cmd
}
