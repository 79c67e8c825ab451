// Package tui provides the interactive result browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gifgrab-cli/gifgrab/clipboard"
	"github.com/gifgrab-cli/gifgrab/engine"
	"github.com/gifgrab-cli/gifgrab/tenor"
)

// Options encapsulates the runtime configuration for the result browser.
type Options struct {
	Query   string
	Results []*tenor.Result
	Target  engine.Target
	Format  tenor.Format
	Client  *tenor.Client
	Env     clipboard.Environment
}

// Run initializes and executes the Bubble Tea application loop over a fetched result set.
func Run(options *Options) error {
	if options.Env == nil {
		options.Env = clipboard.System()
	}

	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
