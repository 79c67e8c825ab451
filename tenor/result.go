package tenor

import "fmt"

// Variant is one encoded rendition of a result's media: a URL plus its
// byte size, pixel dimensions and, for animated formats, a duration.
type Variant struct {
	URL      string  `json:"url"`
	Size     int64   `json:"size"`
	Dims     []int   `json:"dims"`
	Duration float64 `json:"duration"`
	Preview  string  `json:"preview,omitempty"`
}

// Result represents a single media item returned by the search API.
// It is immutable once parsed; result order mirrors the API response.
type Result struct {
	ID                 string               `json:"id"`
	Created            float64              `json:"created"`
	ContentDescription string               `json:"content_description"`
	ItemURL            string               `json:"itemurl"`
	URL                string               `json:"url"`
	Tags               []string             `json:"tags"`
	Media              []map[Format]Variant `json:"media"`
}

// MissingVariantError reports a result whose media table lacks a format the
// upstream schema is expected to provide. This is a contract violation of the
// API, not a normal runtime branch.
type MissingVariantError struct {
	ID     string
	Format Format
}

func (e *MissingVariantError) Error() string {
	return fmt.Sprintf("result %s: media table has no %q variant", e.ID, e.Format)
}

// Resolve maps a requested media quality to the matching URL inside the
// result's media table. Pure lookup: no normalization, no network I/O.
func Resolve(result *Result, format Format) (string, error) {
	for _, table := range result.Media {
		if variant, ok := table[format]; ok {
			return variant.URL, nil
		}
	}
	return "", &MissingVariantError{ID: result.ID, Format: format}
}

// PageURL returns the canonical Tenor page link for the result.
func (r *Result) PageURL() string {
	return r.ItemURL
}

func (r *Result) String() string {
	return r.ContentDescription
}
