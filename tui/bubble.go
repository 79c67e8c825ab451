// Package tui provides the interactive result browser.
package tui

import (
	"fmt"
	"net/url"
	"path"

	bubblekey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gifgrab-cli/gifgrab/clipboard"
	"github.com/gifgrab-cli/gifgrab/color"
	"github.com/gifgrab-cli/gifgrab/download"
	"github.com/gifgrab-cli/gifgrab/engine"
	"github.com/gifgrab-cli/gifgrab/history"
	"github.com/gifgrab-cli/gifgrab/icon"
	confkey "github.com/gifgrab-cli/gifgrab/key"
	"github.com/gifgrab-cli/gifgrab/open"
	"github.com/gifgrab-cli/gifgrab/style"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/gifgrab-cli/gifgrab/util"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var listStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)

// statusMsg carries a transient feedback line shown under the list.
type statusMsg string

type errMsg struct{ err error }

type bubble struct {
	options *Options
	listC   list.Model
	keymap  keymap
	status  string
	width   int
}

func newBubble(options *Options) *bubble {
	keys := newKeymap()

	items := lo.Map(options.Results, func(r *tenor.Result, _ int) list.Item {
		return &listItem{result: r}
	})

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(confkey.TUIItemSpacing))

	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("Results for %q", options.Query)
	l.AdditionalShortHelpKeys = keys.shortHelp

	return &bubble{
		options: options,
		listC:   l,
		keymap:  keys,
	}
}

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		x, y := listStyle.GetFrameSize()
		b.listC.SetSize(msg.Width-x, msg.Height-y-1)
	case statusMsg:
		b.status = string(msg)
	case errMsg:
		b.status = style.Fg(color.Red)(fmt.Sprintf("%s %v", icon.Get(icon.Fail), msg.err))
	case tea.KeyMsg:
		if bubblekey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// While the filter input is active the remaining bindings type into it.
		if b.listC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblekey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblekey.Matches(msg, b.keymap.copy):
			if item, ok := b.listC.SelectedItem().(*listItem); ok {
				return b, b.copyCmd(item.result)
			}
		case bubblekey.Matches(msg, b.keymap.download):
			if item, ok := b.listC.SelectedItem().(*listItem); ok {
				return b, b.downloadCmd(item.result)
			}
		case bubblekey.Matches(msg, b.keymap.open):
			if item, ok := b.listC.SelectedItem().(*listItem); ok {
				return b, b.openCmd(item.result)
			}
		}
	}

	var cmd tea.Cmd
	b.listC, cmd = b.listC.Update(msg)
	return b, cmd
}

func (b *bubble) View() string {
	status := b.status
	if b.width > 0 {
		status = truncate.StringWithTail(status, uint(b.width), "…")
	}
	return listStyle.Render(b.listC.View()) + "\n" + status
}

// copyCmd resolves the configured link for the result and sends it to the clipboard sink.
func (b *bubble) copyCmd(result *tenor.Result) tea.Cmd {
	return func() tea.Msg {
		link := result.PageURL()
		if b.options.Target == engine.TargetMedia {
			resolved, err := tenor.Resolve(result, b.options.Format)
			if err != nil {
				return errMsg{err}
			}
			link = resolved
		}

		if err := clipboard.Copy(b.options.Env, link); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("%s copied %s", icon.Get(icon.Clipboard), link))
	}
}

// downloadCmd fetches the media bytes behind the result and stores them in the picture library.
func (b *bubble) downloadCmd(result *tenor.Result) tea.Cmd {
	return func() tea.Msg {
		mediaLink, err := tenor.Resolve(result, b.options.Format)
		if err != nil {
			return errMsg{err}
		}

		data, err := b.options.Client.Fetch(mediaLink)
		if err != nil {
			return errMsg{err}
		}

		basename := util.SanitizeFilename(trailingSegment(mediaLink))
		saved, err := download.Save(data, basename)
		if err != nil {
			return errMsg{err}
		}

		_ = history.Save(&history.SavedMedia{
			ID:          result.ID,
			Description: result.ContentDescription,
			Query:       b.options.Query,
			URL:         mediaLink,
			Path:        saved,
		})

		return statusMsg(fmt.Sprintf("%s saved %s", icon.Get(icon.Download), saved))
	}
}

// openCmd launches the result's page URL with the system handler.
func (b *bubble) openCmd(result *tenor.Result) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(result.PageURL()); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("%s opened %s", icon.Get(icon.Link), result.PageURL()))
	}
}

func trailingSegment(mediaLink string) string {
	parsed, err := url.Parse(mediaLink)
	if err != nil {
		return mediaLink
	}
	return path.Base(parsed.Path)
}
