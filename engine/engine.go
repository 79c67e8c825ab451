package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/url"
	"os"
	"path"

	"github.com/gifgrab-cli/gifgrab/clipboard"
	"github.com/gifgrab-cli/gifgrab/download"
	"github.com/gifgrab-cli/gifgrab/history"
	"github.com/gifgrab-cli/gifgrab/icon"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/query"
	"github.com/gifgrab-cli/gifgrab/tenor"
	"github.com/gifgrab-cli/gifgrab/util"
	"github.com/samber/mo"
)

// ErrNoResults indicates that delivery was requested for an empty result set.
var ErrNoResults = errors.New("no results to deliver")

type (
	// IndexPicker draws the delivery subject's index from [0, n).
	IndexPicker func(n int) int
)

// Options encapsulates one invocation of the result pipeline.
type Options struct {
	Query  string
	Limit  int
	Target Target
	Format tenor.Format

	// Delivery toggles. Both may be requested in the same invocation.
	Copy     bool
	Download bool

	Quiet    bool
	Extended bool

	Out io.Writer
	Err io.Writer

	Client *tenor.Client
	Env    clipboard.Environment

	// Picker substitutes the uniform random draw in tests.
	Picker mo.Option[IndexPicker]

	// Sink substitutes the platform clipboard backend in tests.
	Sink mo.Option[clipboard.Backend]
}

// Run executes the linear search, render, select, deliver pipeline.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}
	if options.Env == nil {
		options.Env = clipboard.System()
	}

	// Step 1: Search. Transport and schema failures are fatal.
	results, err := options.Client.Search(options.Query, options.Limit)
	if err != nil {
		return err
	}

	if err := query.Remember(options.Query, 1); err != nil {
		log.Warnf("remember query: %v", err)
	}

	// Step 2: Render. Always precedes delivery, suppressed when quiet.
	if !options.Quiet {
		if err := render(results, options); err != nil {
			return err
		}
	}

	// Step 3: Select. Without a delivery request the invocation ends here.
	if !options.Copy && !options.Download {
		return nil
	}
	if len(results) == 0 {
		return ErrNoResults
	}

	pick := options.Picker.OrElse(rand.Intn)
	subject := results[pick(len(results))]
	log.Infof("selected result %s for delivery", subject.ID)

	// Step 4: Resolve the subject's links and deliver.
	mediaLink, err := tenor.Resolve(subject, options.Format)
	if err != nil {
		return err
	}
	link := subject.PageURL()
	if options.Target == TargetMedia {
		link = mediaLink
	}

	if options.Copy {
		if err := options.deliverClipboard(link); err != nil {
			fmt.Fprintln(options.Err, link)
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		if !options.Quiet {
			fmt.Fprintf(options.Out, "%s copied %s\n", icon.Get(icon.Clipboard), link)
		}
	}

	if options.Download {
		// File delivery always stores the media bytes, never the page link.
		saved, err := options.deliverFile(subject, mediaLink)
		if err != nil {
			fmt.Fprintln(options.Err, mediaLink)
			return fmt.Errorf("download media: %w", err)
		}
		if !options.Quiet {
			fmt.Fprintf(options.Out, "%s saved %s\n", icon.Get(icon.Download), saved)
		}
	}

	return nil
}

// render emits the result set to the output writer: one line per result
// carrying the link selected by the target, or a single structural JSON dump
// of the entire set in extended mode. Order mirrors the API response.
func render(results []*tenor.Result, options *Options) error {
	if options.Extended {
		dump, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(options.Out, string(dump))
		return err
	}

	for _, result := range results {
		line := result.PageURL()
		if options.Target == TargetMedia {
			resolved, err := tenor.Resolve(result, options.Format)
			if err != nil {
				return err
			}
			line = resolved
		}
		if _, err := fmt.Fprintln(options.Out, line); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) deliverClipboard(link string) error {
	if sink, ok := o.Sink.Get(); ok {
		return sink.Copy(link)
	}
	return clipboard.Copy(o.Env, link)
}

func (o *Options) deliverFile(subject *tenor.Result, mediaLink string) (string, error) {
	data, err := o.Client.Fetch(mediaLink)
	if err != nil {
		return "", err
	}

	saved, err := download.Save(data, suggestedName(mediaLink))
	if err != nil {
		return "", err
	}

	if err := history.Save(&history.SavedMedia{
		ID:          subject.ID,
		Description: subject.ContentDescription,
		Query:       o.Query,
		URL:         mediaLink,
		Path:        saved,
	}); err != nil {
		log.Warnf("record download: %v", err)
	}

	return saved, nil
}

// suggestedName derives the base filename from the trailing path segment of
// the media URL.
func suggestedName(mediaLink string) string {
	parsed, err := url.Parse(mediaLink)
	if err != nil {
		return util.SanitizeFilename(mediaLink)
	}
	return util.SanitizeFilename(path.Base(parsed.Path))
}
