package query

import (
	"testing"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	"github.com/gifgrab-cli/gifgrab/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchSaveQueries, true)
}

func TestRememberAndSuggest(t *testing.T) {
	Convey("Query suggestions", t, func() {
		So(Remember("excited cat", 1), ShouldBeNil)
		So(Remember("excited cat", 2), ShouldBeNil)
		So(Remember("sad dog", 1), ShouldBeNil)

		// Suggestion results are memoized per prefix; use distinct prefixes per case.
		Convey("Should suggest a remembered query", func() {
			suggestion := Suggest("excited")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet(), ShouldEqual, "excited cat")
		})

		Convey("Should fuzzy-match partial input", func() {
			suggestions := SuggestMany("cat")
			So(suggestions, ShouldContain, "excited cat")
		})

		Convey("Should return nothing for unmatched input", func() {
			So(SuggestMany("zebra"), ShouldBeEmpty)
		})

		Convey("Should be inert when saving is disabled", func() {
			viper.Set(key.SearchSaveQueries, false)
			defer viper.Set(key.SearchSaveQueries, true)

			So(Remember("ignored", 1), ShouldBeNil)
			So(SuggestMany("ignored"), ShouldBeEmpty)
		})
	})
}
