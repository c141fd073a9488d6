package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/shub-dev/portfolio/internal/assets"
)

func newAssetsCommand(env *cliEnv) *cobra.Command {
	var (
		kind     string
		category string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List discovered gallery images and certificates",
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := os.DirFS(env.cfg.AssetsDir)
			catalog, err := assets.Load(fsys, assets.PrefixResolver{Base: env.cfg.AssetsURL})
			if err != nil {
				return fmt.Errorf("load assets from %s: %w", env.cfg.AssetsDir, err)
			}

			var records []assets.Record
			if kind == "" || kind == string(assets.KindGallery) {
				records = append(records, catalog.Gallery()...)
			}
			if kind == "" || kind == string(assets.KindCertificate) {
				for _, r := range catalog.Certificates() {
					if category == "" || string(r.Category) == category {
						records = append(records, r)
					}
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Fprintf(out, "No assets found under %s\n", env.cfg.AssetsDir)
				return nil
			}

			rows := make([][]string, 0, len(records))
			for i, r := range records {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					string(r.Kind),
					r.Title,
					r.Category.String(),
					fileSize(fsys, r.Path),
					r.Path,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Kind", "Title", "Category", "Size", "Path"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d gallery images, %d certificates\n", len(catalog.Gallery()), len(catalog.Certificates()))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list gallery or certificate assets")
	cmd.Flags().StringVar(&category, "category", "", "Only list certificates in this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	return cmd
}

func fileSize(fsys fs.FS, p string) string {
	info, err := fs.Stat(fsys, path.Clean(p))
	if err != nil {
		return "-"
	}
	return humanize.Bytes(uint64(info.Size()))
}
