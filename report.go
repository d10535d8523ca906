package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filetable/internal/notify"
	"filetable/internal/ui/services/selection"
)

var errNothingSelected = errors.New("nothing selected")

type reportOptions struct {
	selectPaths []string
	all         bool
	sink        string
	reportFile  string
}

// newReportCmd prints the download report for a selection without the table
func newReportCmd(root *options) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the download report for the given selection",
		Example: `  filetable report --files files.toml --select '/srv/a.bin' --select '/srv/b.bin'
  filetable report --all --sink clipboard`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.selectPaths, "select", nil, "path to select; repeat for more (report order follows flag order)")
	flags.BoolVar(&opts.all, "all", false, "select every available file")
	flags.StringVarP(&opts.sink, "sink", "s", notify.SinkStdout, "where the report goes: stdout, clipboard, file")
	flags.StringVar(&opts.reportFile, "report-file", "", "target file of the file sink")
	cmd.MarkFlagsMutuallyExclusive("select", "all")

	return cmd
}

func runReport(cmd *cobra.Command, root *options, opts *reportOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	records, err := loadRecords(cfg.FilesPath)
	if err != nil {
		return err
	}

	svc := selection.NewService(nil, records)
	if opts.all {
		svc.SelectAll()
	}
	var rejected []string
	for _, path := range opts.selectPaths {
		if svc.IsSelected(path) {
			continue
		}
		if !svc.Toggle(path) {
			rejected = append(rejected, path)
		}
	}
	if len(rejected) > 0 {
		return fmt.Errorf("not available for selection: %s", strings.Join(rejected, ", "))
	}
	if !svc.HasSelection() {
		return errNothingSelected
	}

	sinkName := strings.ToLower(strings.TrimSpace(opts.sink))
	if sinkName == "" {
		sinkName = notify.SinkStdout
	}
	switch sinkName {
	case notify.SinkPopup, notify.SinkPager:
		return fmt.Errorf("%s sink needs the interactive table", sinkName)
	}

	filePath := opts.reportFile
	if filePath == "" {
		filePath = cfg.Notify.FilePath
	}
	sink, err := notify.New(sinkName, notify.Options{
		FilePath: filePath,
		Stdout:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if err := sink.Notify(svc.Report()); err != nil {
		return err
	}
	if deferred, ok := sink.(*notify.Deferred); ok {
		return deferred.Flush()
	}
	return nil
}
