package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"filetable/internal/config"
	"filetable/internal/domain"
	"filetable/internal/files"
	"filetable/internal/logging"
	"filetable/internal/notify"
	"filetable/internal/ui"
	"filetable/internal/ui/services/events"
	"filetable/internal/ui/services/selection"
)

// e2eEnv makes the app announce itself once it is about to draw
const e2eEnv = "FILETABLE_E2E_TEST"

// options holds the command line flags. Non-empty values override the config file.
type options struct {
	filesPath  string
	configPath string
	sink       string
	title      string
	reportFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "filetable",
		Short:        "Select files from a table and report their paths and devices",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&opts.filesPath, "files", "f", "", "file list to show (.toml or .json); the built-in sample when empty")
	pflags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")

	flags := cmd.Flags()
	flags.StringVarP(&opts.sink, "sink", "s", "", "where download reports go: popup, clipboard, pager, file, stdout")
	flags.StringVar(&opts.title, "title", "", "title shown above the table")
	flags.StringVar(&opts.reportFile, "report-file", "", "target file of the file sink")

	cmd.AddCommand(newReportCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
// An explicitly named config file must exist.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		svc := config.NewConfigServiceAt(opts.configPath)
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = config.NewConfigService().Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.filesPath != "" {
		cfg.FilesPath = opts.filesPath
	}
	if opts.sink != "" {
		cfg.Notify.Sink = opts.sink
	}
	if opts.title != "" {
		cfg.UI.Title = opts.title
	}
	if opts.reportFile != "" {
		cfg.Notify.FilePath = opts.reportFile
		// Naming a report file without a sink implies the file sink
		if opts.sink == "" {
			cfg.Notify.Sink = notify.SinkFile
		}
	}
	return cfg, nil
}

func loadRecords(path string) ([]domain.FileRecord, error) {
	if path == "" {
		return files.Sample(), nil
	}
	return files.Load(path)
}

func runUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	records, err := loadRecords(cfg.FilesPath)
	if err != nil {
		log.Printf("Failed to load file list: %v", err)
		return err
	}
	log.Printf("Loaded %d files from %q", len(records), cfg.FilesPath)

	sink, err := notify.New(cfg.Notify.Sink, notify.Options{
		FilePath: cfg.Notify.FilePath,
		Stdout:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	bus := events.NewBus()
	for _, unsubscribe := range subscribeLogging(bus) {
		defer unsubscribe()
	}

	model := ui.NewModel(cfg, bus, records, sink)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if os.Getenv(e2eEnv) == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	// Reports for stdout are held back until the terminal is ours again
	if deferred, ok := sink.(*notify.Deferred); ok {
		if err := deferred.Flush(); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
	}
	return nil
}

// subscribeLogging records selection activity in the app log
func subscribeLogging(bus events.EventBus) []func() {
	return []func(){
		bus.Subscribe(events.TypeOf(selection.FilesLoadedEvent{}), func(e interface{}) {
			ev := e.(selection.FilesLoadedEvent)
			log.Printf("File list loaded: %d files, %d available", ev.Total, ev.Available)
		}),
		bus.Subscribe(events.TypeOf(selection.SelectionChangedEvent{}), func(e interface{}) {
			ev := e.(selection.SelectionChangedEvent)
			log.Printf("Selection changed: +%v -%v (%d selected)", ev.Added, ev.Removed, ev.Total)
		}),
		bus.Subscribe(events.TypeOf(selection.AllSelectedEvent{}), func(e interface{}) {
			ev := e.(selection.AllSelectedEvent)
			log.Printf("Selected all %d available files", len(ev.Paths))
		}),
		bus.Subscribe(events.TypeOf(selection.SelectionClearedEvent{}), func(interface{}) {
			log.Printf("Selection cleared")
		}),
	}
}
