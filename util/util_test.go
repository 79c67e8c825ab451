package util

import (
	"testing"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "result", "results"), ShouldEqual, "1 result")
		So(Quantify(5, "result", "results"), ShouldEqual, "5 results")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.gif"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(0, 1, 50), ShouldEqual, 1)
		So(Clamp(100, 1, 50), ShouldEqual, 50)
		So(Clamp(10, 1, 50), ShouldEqual, 10)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Should remove a file", func() {
			So(filesystem.API().WriteFile("/tmp/x.gif", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/tmp/x.gif"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp/x.gif")
			So(exists, ShouldBeFalse)
		})

		Convey("Should error on missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
