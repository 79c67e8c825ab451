// Package engine orchestrates rendering, random selection and delivery of search results.
package engine

import (
	"fmt"
	"strings"
)

// Target determines whether page-link or direct-media-link semantics apply
// to rendering and clipboard delivery.
type Target int

const (
	// TargetPage delivers the Tenor page URL, suitable for embedding chats.
	TargetPage Target = iota
	// TargetMedia delivers the resolved direct media URL.
	TargetMedia
)

func (t Target) String() string {
	switch t {
	case TargetMedia:
		return "gif"
	default:
		return "page"
	}
}

// TargetNames returns the accepted link-type flag values.
func TargetNames() []string {
	return []string{"page", "gif"}
}

// ParseTarget converts a link-type flag value into a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "page":
		return TargetPage, nil
	case "gif", "media":
		return TargetMedia, nil
	default:
		return TargetPage, fmt.Errorf("unknown link type %q, accepted values are: %s", s, strings.Join(TargetNames(), ", "))
	}
}
