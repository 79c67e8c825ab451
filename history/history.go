// Package history provides a persistent registry of media files saved by the file delivery sink.
package history

import (
	"time"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/where"
	"github.com/metafates/gache"
	"golang.org/x/exp/slices"
)

// SavedMedia is one recorded download.
type SavedMedia struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Query       string `json:"query"`
	URL         string `json:"url"`
	Path        string `json:"path"`
	SavedAt     int64  `json:"saved_at"`
}

// cacher provides an abstracted, disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedMedia](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedMedia, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedMedia), nil
	}
	return cached, nil
}

// List returns download records ordered from most to least recent.
func List() ([]*SavedMedia, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := make([]*SavedMedia, 0, len(saved))
	for _, record := range saved {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b *SavedMedia) int {
		return int(b.SavedAt - a.SavedAt)
	})
	return records, nil
}

// Save persists a download record to the history registry.
func Save(record *SavedMedia) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if record.SavedAt == 0 {
		record.SavedAt = time.Now().Unix()
	}
	saved[record.Path] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific download record from the history registry.
func Remove(record *SavedMedia) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.Path)
	return cacher.Set(saved)
}
