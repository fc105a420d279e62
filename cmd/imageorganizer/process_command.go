package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imageorganizer/internal/archive"
	"imageorganizer/internal/batch"
	"imageorganizer/internal/pipeline"
	"imageorganizer/internal/services/ocr"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var noExport bool
	var zipExport bool

	cmd := &cobra.Command{
		Use:   "process <directory>",
		Short: "Classify, recognize, and group a directory of images, then export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if zipExport {
				cfg.Export.ZipEnabled = true
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			store, err := batch.Open()
			if err != nil {
				return fmt.Errorf("open batch store: %w", err)
			}
			defer store.Close()

			sources, err := pipeline.ScanDirectory(args[0])
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				return fmt.Errorf("no files found in %s", args[0])
			}

			proc := pipeline.NewProcessor(cfg, store, logger, ocr.NewTesseractEngine())
			result, err := proc.Run(cmd.Context(), sources)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderClusterTable(result))

			if noExport {
				return nil
			}
			summary, err := archive.NewWriter(cfg, logger).Export(cmd.Context(), result)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported %d files in %d folders to %s\n", summary.Files, summary.Folders, summary.Root)
			if summary.ZipPath != "" {
				fmt.Fprintf(out, "ZIP archive: %s\n", summary.ZipPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noExport, "no-export", false, "Group and report only; skip writing the output directory")
	cmd.Flags().BoolVar(&zipExport, "zip", false, "Also write the export as a single ZIP archive")
	return cmd
}
