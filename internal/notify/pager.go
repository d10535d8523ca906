package notify

import (
	"errors"
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
)

// Terminal is the part of *tea.Program the pager needs to borrow the screen
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Pager shows the report in an ov pager
type Pager struct {
	terminal Terminal
	run      func(message string) error
}

func NewPager(terminal Terminal) *Pager {
	return &Pager{terminal: terminal, run: runOviewer}
}

func (p *Pager) Name() string { return SinkPager }

// SetTerminal attaches the program once it exists
func (p *Pager) SetTerminal(terminal Terminal) {
	p.terminal = terminal
}

// Notify blocks until the pager is closed
func (p *Pager) Notify(message string) error {
	if p.terminal == nil {
		return errors.New("pager has no terminal to run in")
	}

	// Release terminal control to run ov
	if err := p.terminal.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.terminal.RestoreTerminal()
	}()

	return p.run(message)
}

func runOviewer(message string) error {
	root, err := oviewer.NewRoot(strings.NewReader(message))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
