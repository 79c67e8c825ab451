// Package tenor implements the Tenor v1 search API client and result schema.
package tenor

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Format identifies one encoded rendition of a result's underlying media.
// The set of formats is the closed enum defined by the Tenor v1 media table.
type Format string

// GIF container family, full resolution down to nano.
const (
	Gif       Format = "gif"
	MediumGif Format = "mediumgif"
	TinyGif   Format = "tinygif"
	NanoGif   Format = "nanogif"
)

// MP4 container family. LoopedMP4 repeats the clip several times in one file.
const (
	MP4       Format = "mp4"
	LoopedMP4 Format = "loopedmp4"
	TinyMP4   Format = "tinymp4"
	NanoMP4   Format = "nanomp4"
)

// WebM container family.
const (
	WebM     Format = "webm"
	TinyWebM Format = "tinywebm"
	NanoWebM Format = "nanowebm"
)

// Static preview thumbnails.
const (
	GifPreview     Format = "gifpreview"
	TinyGifPreview Format = "tinygifpreview"
	NanoGifPreview Format = "nanogifpreview"
)

// Formats returns every member of the closed format enum.
func Formats() []Format {
	return []Format{
		Gif, MediumGif, TinyGif, NanoGif,
		MP4, LoopedMP4, TinyMP4, NanoMP4,
		WebM, TinyWebM, NanoWebM,
		GifPreview, TinyGifPreview, NanoGifPreview,
	}
}

// FormatNames returns the enum members as plain strings, for flag completion.
func FormatNames() []string {
	return lo.Map(Formats(), func(f Format, _ int) string {
		return string(f)
	})
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a user-supplied quality name into a Format.
// Unknown names produce an error carrying the closest known name as a hint.
func ParseFormat(s string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(Formats(), normalized) {
		return normalized, nil
	}

	closest := lo.MinBy(FormatNames(), func(a string, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
	return "", fmt.Errorf("unknown quality %q, did you mean %q?", s, closest)
}
