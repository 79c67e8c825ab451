// Package download implements the file delivery sink.
//
// Media bytes are written to the platform picture directory under a name
// derived from the media URL. Name collisions are avoided with a single
// randomized rename attempt; the check is deliberately not repeated, so a
// second collision on the alternate name is accepted as a limitation.
package download

import (
	"math/rand"
	"path/filepath"
	"strconv"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/where"
)

// spliceOffset is the number of trailing characters the random numeral is
// spliced in front of. It assumes a 4-character suffix such as ".gif" and is
// intentionally not extension-aware, matching the historical behavior.
const spliceOffset = 4

// alternate splices a random decimal numeral into the filename immediately
// before its last 4 characters.
func alternate(name string) string {
	n := strconv.Itoa(rand.Intn(100000))

	at := len(name) - spliceOffset
	if at < 0 {
		at = 0
	}
	return name[:at] + n + name[at:]
}

// Save writes data into the downloads directory under the suggested base
// filename, renaming once if the exact name already exists. It returns the
// path the file was stored at.
func Save(data []byte, basename string) (string, error) {
	dir := where.Downloads()
	name := basename

	path := filepath.Join(dir, name)
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return "", err
	}
	if exists {
		name = alternate(name)
		path = filepath.Join(dir, name)
		log.Infof("%s already exists, saving as %s", basename, name)
	}

	if err := filesystem.API().WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
