package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"json2reqif/internal/diagnostic"
	"json2reqif/internal/mapping"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <mapping>",
		Short: "Check a mapping file without converting anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := mapping.Validate(cfg)
			printDiagnostics(cmd.OutOrStdout(), diags)

			if err := diags.Error(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s dialect)\n", pterm.Green("✓ Valid"), args[0], cfg.Dialect)

			return nil
		},
	}
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := pterm.Yellow(d.Severity.String())
		if d.Severity == diagnostic.SeverityError {
			label = pterm.Red(d.Severity.String())
		}

		fmt.Fprintf(w, "%s: %s\n", label, d)
	}
}
