// Package progress shows terminal progress for multi-step commands.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// Config controls whether and where progress is drawn.
type Config struct {
	Enabled bool
	Writer  io.Writer
}

// DefaultConfig returns an enabled configuration writing to stderr.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Writer:  os.Stderr,
	}
}

// Spinner implements a spinner progress indicator.
type Spinner struct {
	spinner *pterm.SpinnerPrinter
	config  *Config
	active  bool
	mu      sync.Mutex
}

// NewSpinner creates a new spinner progress indicator.
func NewSpinner(config *Config) *Spinner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Spinner{
		config: config,
	}
}

// Start starts the spinner with a message.
func (s *Spinner) Start(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.config.Enabled {
		return nil
	}
	if s.active {
		return fmt.Errorf("spinner already active")
	}

	printer := pterm.DefaultSpinner
	if s.config.Writer != nil {
		printer = *printer.WithWriter(s.config.Writer)
	}

	var err error
	s.spinner, err = printer.Start(message)
	if err != nil {
		return fmt.Errorf("failed to start spinner: %w", err)
	}

	s.active = true
	return nil
}

// Update updates the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.spinner == nil {
		return
	}
	s.spinner.UpdateText(message)
}

// Success marks the spinner as successful.
func (s *Spinner) Success(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.spinner == nil {
		return
	}
	s.spinner.Success(message)
	s.active = false
}

// Failure marks the spinner as failed.
func (s *Spinner) Failure(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.spinner == nil {
		return
	}
	s.spinner.Fail(message)
	s.active = false
}
