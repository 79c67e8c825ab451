package download

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/key"
	"github.com/gifgrab-cli/gifgrab/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func setupFs() {
	filesystem.SetMemMapFs()
	viper.Set(key.DownloadsDir, "/pictures")
}

func TestSave(t *testing.T) {
	Convey("Save", t, func() {
		setupFs()

		Convey("Should write bytes under the suggested name", func() {
			path, err := Save([]byte("GIF89a"), "cat.gif")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(where.Downloads(), "cat.gif"))

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "GIF89a")
		})

		Convey("On collision", func() {
			existing := filepath.Join(where.Downloads(), "cat.gif")
			So(filesystem.API().WriteFile(existing, []byte("old"), 0644), ShouldBeNil)

			path, err := Save([]byte("new"), "cat.gif")
			So(err, ShouldBeNil)

			Convey("Should store under a different name", func() {
				So(path, ShouldNotEqual, existing)
			})

			Convey("Should keep the pre-existing file intact", func() {
				data, err := filesystem.API().ReadFile(existing)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "old")
			})

			Convey("Should derive the alternate from the same base name", func() {
				name := filepath.Base(path)
				So(name, ShouldStartWith, "cat")
				So(name, ShouldEndWith, ".gif")
			})
		})
	})
}

func TestAlternate(t *testing.T) {
	Convey("alternate", t, func() {
		Convey("Should splice before the last four characters", func() {
			name := alternate("cat.gif")
			So(name, ShouldNotEqual, "cat.gif")
			So(name, ShouldStartWith, "cat")
			So(name, ShouldEndWith, ".gif")
			So(strings.TrimSuffix(strings.TrimPrefix(name, "cat"), ".gif"), ShouldNotBeEmpty)
		})

		Convey("Splice is fixed-offset, not extension-aware", func() {
			// A 5-character extension lands inside the suffix, by historical contract.
			name := alternate("clip.webm")
			So(name, ShouldStartWith, "clip.")
			So(name, ShouldEndWith, "webm")
		})

		Convey("Should not panic on names shorter than the offset", func() {
			name := alternate("abc")
			So(name, ShouldEndWith, "abc")
			So(len(name), ShouldBeGreaterThan, 3)
		})
	})
}
