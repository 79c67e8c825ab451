package tenor

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleResult = `{
	"id": "16989471141791455574",
	"created": 1625077718.0,
	"content_description": "Excited Cat GIF",
	"itemurl": "https://tenor.com/view/excited-cat-gif-16989471141791455574",
	"url": "https://tenor.com/bauzS.gif",
	"tags": ["excited", "cat"],
	"media": [{
		"gif":     {"url": "https://media.tenor.com/full.gif",  "size": 1048576, "dims": [498, 372], "duration": 1.5},
		"tinygif": {"url": "https://media.tenor.com/tiny.gif",  "size": 65536,   "dims": [220, 164], "duration": 1.5},
		"mp4":     {"url": "https://media.tenor.com/full.mp4",  "size": 524288,  "dims": [498, 372], "duration": 1.5}
	}]
}`

func parseSample(t *testing.T) *Result {
	t.Helper()
	var r Result
	if err := json.Unmarshal([]byte(sampleResult), &r); err != nil {
		t.Fatal(err)
	}
	return &r
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		result := parseSample(t)

		Convey("Should return the URL backing the requested format", func() {
			url, err := Resolve(result, Gif)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://media.tenor.com/full.gif")

			url, err = Resolve(result, TinyGif)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://media.tenor.com/tiny.gif")

			url, err = Resolve(result, MP4)
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://media.tenor.com/full.mp4")
		})

		Convey("Should surface a missing expected variant as a schema error", func() {
			url, err := Resolve(result, NanoWebM)
			So(url, ShouldBeEmpty)
			So(err, ShouldNotBeNil)

			var missing *MissingVariantError
			So(err, ShouldHaveSameTypeAs, missing)
			So(err.Error(), ShouldContainSubstring, "nanowebm")
			So(err.Error(), ShouldContainSubstring, result.ID)
		})

		Convey("Should preserve the parsed schema fields", func() {
			So(result.PageURL(), ShouldEqual, "https://tenor.com/view/excited-cat-gif-16989471141791455574")
			So(result.Tags, ShouldResemble, []string{"excited", "cat"})
			So(result.ContentDescription, ShouldEqual, "Excited Cat GIF")
		})
	})
}

func TestParseFormat(t *testing.T) {
	Convey("ParseFormat", t, func() {
		Convey("Should accept every enum member", func() {
			for _, f := range Formats() {
				parsed, err := ParseFormat(string(f))
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, f)
			}
		})

		Convey("Should normalize case and whitespace", func() {
			parsed, err := ParseFormat("  TinyGif ")
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, TinyGif)
		})

		Convey("Should hint the closest known name for typos", func() {
			_, err := ParseFormat("tinygiff")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "tinygif"`)
		})
	})
}
