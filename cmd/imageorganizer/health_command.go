package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/pipeline"
	"imageorganizer/internal/services/ocr"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check readiness of the store, OCR engine, and output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
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

			proc := pipeline.NewProcessor(cfg, store, logger, ocr.NewTesseractEngine())
			checks := proc.HealthCheck(cmd.Context())

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			ready := true
			for _, check := range checks {
				kind := statusOK
				if !check.Ready {
					kind = statusError
					ready = false
				}
				fmt.Fprintln(out, renderStatusLine(check.Name, kind, check.Detail, colorize))
			}
			if !ready {
				return fmt.Errorf("one or more checks failed")
			}
			return nil
		},
	}
}
