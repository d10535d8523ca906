// Package notify delivers the download report to the user.
package notify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Sink names accepted by New
const (
	SinkPopup     = "popup"
	SinkClipboard = "clipboard"
	SinkPager     = "pager"
	SinkFile      = "file"
	SinkStdout    = "stdout"
)

// ErrUnknownSink is returned by New for names it does not know
var ErrUnknownSink = errors.New("unknown notification sink")

// Sink receives one multi-line report per download
type Sink interface {
	Name() string
	Notify(message string) error
}

// Options carries per-sink settings
type Options struct {
	FilePath string   // target of the file sink
	Terminal Terminal // needed by the pager sink
	Stdout   io.Writer
}

// Names lists every sink New understands
func Names() []string {
	return []string{SinkPopup, SinkClipboard, SinkPager, SinkFile, SinkStdout}
}

// New builds the sink registered under name
func New(name string, opts Options) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SinkPopup:
		return &Popup{}, nil
	case SinkClipboard:
		return NewClipboard(), nil
	case SinkPager:
		return NewPager(opts.Terminal), nil
	case SinkFile:
		if opts.FilePath == "" {
			return nil, fmt.Errorf("%s sink needs a file path", SinkFile)
		}
		return NewFile(opts.FilePath), nil
	case SinkStdout:
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		return NewDeferred(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSink, name, strings.Join(Names(), ", "))
	}
}

// Popup is the in-app alert. The UI shows the message itself; the sink only
// remembers it.
type Popup struct {
	mu   sync.Mutex
	last string
}

func (p *Popup) Name() string { return SinkPopup }

func (p *Popup) Notify(message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = message
	return nil
}

// Last returns the most recent message
func (p *Popup) Last() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Clipboard copies the report to the system clipboard
type Clipboard struct {
	write func(string) error
}

func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (c *Clipboard) Name() string { return SinkClipboard }

func (c *Clipboard) Notify(message string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	if err := c.write(message); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// File writes each report to a file, replacing the previous one
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return SinkFile }

// Path returns the target file
func (f *File) Path() string { return f.path }

func (f *File) Notify(message string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(message+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Deferred collects reports while the UI owns the terminal and writes them
// out on Flush
type Deferred struct {
	mu      sync.Mutex
	w       io.Writer
	pending []string
}

func NewDeferred(w io.Writer) *Deferred {
	return &Deferred{w: w}
}

func (d *Deferred) Name() string { return SinkStdout }

func (d *Deferred) Notify(message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, message)
	return nil
}

// Flush writes every collected report, separated by blank lines
func (d *Deferred) Flush() error {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(d.w, strings.Join(pending, "\n\n"))
	return err
}
