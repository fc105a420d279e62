package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imageorganizer/internal/classify"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "classify <filename>...",
		Short:       "Show the document role and derived identifier for filenames",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			columns := []tableColumn{
				{title: "Filename"},
				{title: "Role"},
				{title: "Identifier"},
			}
			rows := make([][]string, 0, len(args))
			for _, filename := range args {
				identifier := classify.DeriveIdentifier(filename)
				if identifier == "" {
					identifier = "-"
				}
				rows = append(rows, []string{
					filename,
					classify.Classify(filename).Label(),
					identifier,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(columns, rows))
			return nil
		},
	}
}
