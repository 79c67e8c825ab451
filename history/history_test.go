package history

import (
	"testing"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Download history", t, func() {
		record := &SavedMedia{
			ID:          "16989471141791455574",
			Description: "Excited Cat GIF",
			Query:       "excited cat",
			URL:         "https://media.tenor.com/full.gif",
			Path:        "/pictures/cat.gif",
			SavedAt:     100,
		}

		Convey("Should persist and list records", func() {
			So(Save(record), ShouldBeNil)
			So(Save(&SavedMedia{Path: "/pictures/dog.gif", SavedAt: 200}), ShouldBeNil)

			records, err := List()
			So(err, ShouldBeNil)
			So(len(records), ShouldBeGreaterThanOrEqualTo, 2)

			Convey("Most recent first", func() {
				So(records[0].SavedAt, ShouldBeGreaterThanOrEqualTo, records[1].SavedAt)
			})
		})

		Convey("Should stamp missing timestamps", func() {
			fresh := &SavedMedia{Path: "/pictures/fresh.gif"}
			So(Save(fresh), ShouldBeNil)
			So(fresh.SavedAt, ShouldBeGreaterThan, 0)
		})

		Convey("Should remove records", func() {
			So(Save(record), ShouldBeNil)
			So(Remove(record), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			_, exists := saved[record.Path]
			So(exists, ShouldBeFalse)
		})
	})
}
