package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectGarbage(t *testing.T) {
	Convey("Given a temp directory with fresh and expired entries", t, func() {
		filesystem.SetMemMapFs()

		dir := where.Temp()
		fresh := filepath.Join(dir, "fresh.bin")
		stale := filepath.Join(dir, "stale.bin")

		So(filesystem.API().WriteFile(fresh, []byte("a"), 0655), ShouldBeNil)
		So(filesystem.API().WriteFile(stale, []byte("b"), 0655), ShouldBeNil)

		old := time.Now().Add(-TTL - time.Hour)
		So(filesystem.API().Chtimes(stale, old, old), ShouldBeNil)

		Convey("When garbage is collected", func() {
			CollectGarbage()

			Convey("Only the expired entry is pruned", func() {
				So(exists(fresh), ShouldBeTrue)
				So(exists(stale), ShouldBeFalse)
			})
		})
	})
}

func exists(path string) bool {
	ok, err := filesystem.API().Exists(path)
	return err == nil && ok
}
