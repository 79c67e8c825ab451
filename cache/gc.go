// Package cache prunes expired transient artifacts from the temp directory.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/where"
)

// TTL is the maximum age of a cache artifact before it becomes eligible for pruning.
const TTL = 7 * 24 * time.Hour

// CollectGarbage prunes expired entries from the temp directory.
// Intended to run as a background task at startup. Persistent registries
// (queries, history) are never touched.
func CollectGarbage() {
	dir := where.Temp()

	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if time.Since(entry.ModTime()) > TTL {
			path := filepath.Join(dir, entry.Name())
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				log.Warnf("prune %s: %v", path, err)
				continue
			}
			log.Debugf("pruned expired temp entry %s", path)
		}
	}
}
