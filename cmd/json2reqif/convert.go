package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"json2reqif/internal/convert"
	"json2reqif/internal/ident"
	"json2reqif/internal/mapping"
	"json2reqif/internal/query"
	"json2reqif/internal/reqif"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.json> <output.reqif> [mapping]",
		Short: "Convert a JSON document to ReqIF",
		Long: `Convert reads the input JSON document, applies the mapping and writes
the ReqIF document. The mapping is taken from the third argument, --mapping,
or the "mapping" setting, in that order.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: a.convert,
	}

	cmd.Flags().StringP("mapping", "m", "", "Mapping file (default: mapping_config.json)")
	_ = a.viper.BindPFlag("mapping", cmd.Flags().Lookup("mapping"))

	return cmd
}

func (a *app) convert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	mappingPath := a.settings.Mapping
	if len(args) == 3 {
		mappingPath = args[2]
	}

	cfg, err := a.loadMapping(mappingPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "failed to read input %s", input)
	}

	doc, err := query.ParseDocument(data)
	if err != nil {
		return errors.Wrapf(err, "input %s", input)
	}

	out, res, err := convert.NewConverter(cfg, a.converterConfig()).Render(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %s", input)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write output %s", output)
	}

	a.logger.Info("wrote document", zap.String("path", output), zap.Int("bytes", len(out)))

	printSummary(cmd.OutOrStdout(), output, res.Stats)

	return nil
}

// loadMapping decodes and validates a mapping file. Warnings are logged.
func (a *app) loadMapping(path string) (*mapping.MappingConfig, error) {
	cfg, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := mapping.Validate(cfg)
	for _, w := range diags.Warnings {
		a.logger.Warn(w.Message,
			zap.String("code", w.Code),
			zap.String("section", w.Section),
			zap.String("attribute", w.Attribute))
	}

	if err := diags.Error(); err != nil {
		return nil, errors.Wrapf(err, "mapping %s", path)
	}

	a.logger.Debug("loaded mapping", zap.String("path", path), zap.Stringer("dialect", cfg.Dialect))

	return cfg, nil
}

func (a *app) converterConfig() convert.Config {
	config := convert.DefaultConfig()
	config.Title = a.settings.Header.Title
	config.Logger = a.logger
	config.Assembler = reqif.NewXMLAssembler(a.settings.Output.Indent)

	if seed := a.settings.IDs.Seed; seed != "" {
		config.IDs = ident.NewSeeded(seed)
	}

	return config
}

func printSummary(w io.Writer, output string, s convert.Stats) {
	fmt.Fprintf(w, "%s %s\n", pterm.Green("✓ Wrote"), output)

	rows := []struct {
		label string
		value int
	}{
		{"Specifications", s.Specifications},
		{"Objects", s.Objects},
		{"Leaves", s.Leaves},
		{"Roots", s.Roots},
		{"Data types", s.DataTypes},
		{"Spec types", s.SpecTypes},
	}

	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", pterm.Gray(r.label+":"), pterm.LightCyan(r.value))
	}
}
