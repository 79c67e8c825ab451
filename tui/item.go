// Package tui provides the interactive result browser.
package tui

import (
	"strings"

	"github.com/gifgrab-cli/gifgrab/key"
	"github.com/gifgrab-cli/gifgrab/style"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping a search result for terminal display.
type listItem struct {
	result *tenor.Result
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	if t.result.ContentDescription != "" {
		return t.result.ContentDescription
	}
	return t.result.ID
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() string {
	var parts []string

	if len(t.result.Tags) > 0 {
		parts = append(parts, strings.Join(t.result.Tags, ", "))
	}

	if viper.GetBool(key.TUIShowURLs) {
		parts = append(parts, style.Faint(t.result.PageURL()))
	}

	return strings.Join(parts, " • ")
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	return t.Title() + " " + strings.Join(t.result.Tags, " ")
}
