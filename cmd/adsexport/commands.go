package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonMunkholm/AdsExport/internal/campaign"
	"github.com/JonMunkholm/AdsExport/internal/core"
	"github.com/JonMunkholm/AdsExport/internal/history"
	"github.com/JonMunkholm/AdsExport/internal/legacy"
	"github.com/JonMunkholm/AdsExport/internal/logging"
	"github.com/JonMunkholm/AdsExport/internal/validate"
)

// errInvalid is returned when a checked file has errors. The issues have
// already been printed.
var errInvalid = errors.New("validation failed")

type cli struct {
	out, errOut io.Writer

	verbose bool
	legacy  bool
	strict  bool
	output  string
	csvMode bool
	asJSON  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "adsexport",
		Short:         "Render campaigns as Google Ads Editor CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log encoder diagnostics")
	root.PersistentFlags().BoolVar(&c.legacy, "legacy", false, "read the file as a legacy JSON payload")

	exportCmd := &cobra.Command{
		Use:   "export <campaign-file>",
		Short: "Render a JSON or YAML campaign file as an editor CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runExport,
	}
	exportCmd.Flags().StringVarP(&c.output, "output", "o", "", `output path ("-" for stdout, default: generated filename)`)
	exportCmd.Flags().BoolVar(&c.strict, "strict", false, "refuse to write when the campaign has validation errors")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a campaign file, or a finished CSV with --csv",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runValidate,
	}
	validateCmd.Flags().BoolVar(&c.csvMode, "csv", false, "check the physical CSV layout instead of a campaign")

	columnsCmd := &cobra.Command{
		Use:   "columns",
		Short: "List the editor columns in order",
		Args:  cobra.NoArgs,
		RunE:  c.runColumns,
	}

	statsCmd := &cobra.Command{
		Use:   "stats <campaign-file>",
		Short: "Count entities and the rows an export would contain",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runStats,
	}
	statsCmd.Flags().BoolVar(&c.asJSON, "json", false, "print JSON")

	root.AddCommand(exportCmd, validateCmd, columnsCmd, statsCmd)
	return root
}

func (c *cli) service() *core.Service {
	logger := zap.NewNop()
	if c.verbose {
		if l, err := logging.Setup("debug", "text"); err == nil {
			logger = l
		}
	}
	return core.NewService(core.Options{
		Logger: logger,
		Strict: c.strict,
	})
}

// load reads a campaign file. Legacy payloads are adapted; canonical files
// are decoded by extension.
func (c *cli) load(path string) (*campaign.Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if c.legacy {
		return legacy.AdaptJSON(data)
	}
	return core.DecodeCampaignFile(path, data)
}

func (c *cli) runExport(cmd *cobra.Command, args []string) error {
	svc := c.service()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	camp, err := c.load(args[0])
	if err != nil {
		return err
	}

	source := history.SourceCLI
	if c.legacy {
		source = history.SourceLegacy
	}
	exp, err := svc.Export(ctx, camp, source)

	var verr *core.ValidationError
	if errors.As(err, &verr) {
		printResult(c.errOut, verr.Result)
		return errInvalid
	}
	if err != nil {
		return err
	}

	dest := c.output
	if dest == "" {
		dest = exp.Filename
	}
	if dest == "-" {
		if _, err := c.out.Write(exp.Data); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	} else if err := os.WriteFile(dest, exp.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	for _, w := range exp.Warnings() {
		fmt.Fprintln(c.errOut, "warning:", w)
	}
	if dest != "-" {
		fmt.Fprintf(c.errOut, "wrote %s (%d rows, %d bytes)\n",
			filepath.Base(dest), exp.Report.Counts.Total(), len(exp.Data))
	}
	return nil
}

func (c *cli) runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	var res validate.Result
	if c.csvMode || strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		res = validate.PhysicalFormatReader(f)
	} else {
		camp, err := c.load(path)
		if err != nil {
			return err
		}
		res = c.service().Validate(camp)
	}

	printResult(c.out, res)
	if !res.Valid {
		return errInvalid
	}
	return nil
}

func (c *cli) runColumns(cmd *cobra.Command, _ []string) error {
	for i, name := range c.service().Columns() {
		fmt.Fprintf(c.out, "%3d  %s\n", i+1, name)
	}
	return nil
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	camp, err := c.load(args[0])
	if err != nil {
		return err
	}

	summary := c.service().Summarize(camp)
	if c.asJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
		_, err := c.out.Write(buf.Bytes())
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		n     int
	}{
		{"Ad groups", summary.AdGroups},
		{"Keywords", summary.Keywords},
		{"Ads", summary.Ads},
		{"Negative keywords", summary.NegativeKeywords},
		{"Sitelinks", summary.Sitelinks},
		{"Callouts", summary.Callouts},
		{"Snippets", summary.Snippets},
		{"Image assets", summary.ImageAssets},
		{"Video assets", summary.VideoAssets},
		{"Rows", summary.Rows.Total()},
		{"Columns", summary.Columns},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.label, r.n)
	}
	return tw.Flush()
}

func printResult(w io.Writer, res validate.Result) {
	for _, issue := range res.Errors {
		fmt.Fprintln(w, "error:", issue.Message)
	}
	for _, issue := range res.Warnings {
		fmt.Fprintln(w, "warning:", issue.Message)
	}
	if res.Valid {
		fmt.Fprintf(w, "ok (%d warnings)\n", len(res.Warnings))
	}
}
