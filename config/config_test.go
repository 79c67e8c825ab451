package config

import (
	"testing"

	"github.com/gifgrab-cli/gifgrab/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("search.default.query")
			So(result, ShouldEqual, "search_default_query")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field env names", t, func() {
		f := Default["api.key"]
		So(f.Env(), ShouldEqual, "GIFGRAB_API_KEY")
	})
}
