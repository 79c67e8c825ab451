package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseTarget(t *testing.T) {
	Convey("Given link-type flag values", t, func() {
		Convey("'page' resolves to the page target", func() {
			target, err := ParseTarget("page")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, TargetPage)
		})

		Convey("'gif' and 'media' resolve to the media target", func() {
			for _, value := range []string{"gif", "media", " GIF "} {
				target, err := ParseTarget(value)
				So(err, ShouldBeNil)
				So(target, ShouldEqual, TargetMedia)
			}
		})

		Convey("Unknown values produce an error naming the accepted set", func() {
			_, err := ParseTarget("webm")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "page, gif")
		})
	})
}
