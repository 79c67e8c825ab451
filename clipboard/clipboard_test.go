package clipboard

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeEnvironment substitutes the process environment in dispatch tests.
type fakeEnvironment struct {
	goos string
	vars map[string]string
}

func (f *fakeEnvironment) OS() string { return f.goos }

func (f *fakeEnvironment) LookupEnv(name string) (string, bool) {
	value, ok := f.vars[name]
	return value, ok
}

func TestSelect(t *testing.T) {
	Convey("Backend selection", t, func() {
		Convey("Should pick xclip when DISPLAY is set", func() {
			env := &fakeEnvironment{goos: "linux", vars: map[string]string{"DISPLAY": ":0"}}
			backend, err := Select(env)
			So(err, ShouldBeNil)
			So(backend.Name(), ShouldEqual, "xclip")
		})

		Convey("Should prefer xclip even when WAYLAND_DISPLAY is also set", func() {
			env := &fakeEnvironment{goos: "linux", vars: map[string]string{
				"DISPLAY":         ":0",
				"WAYLAND_DISPLAY": "wayland-0",
			}}
			backend, err := Select(env)
			So(err, ShouldBeNil)
			So(backend.Name(), ShouldEqual, "xclip")
		})

		Convey("Should pick wl-copy when only WAYLAND_DISPLAY is set", func() {
			env := &fakeEnvironment{goos: "linux", vars: map[string]string{"WAYLAND_DISPLAY": "wayland-0"}}
			backend, err := Select(env)
			So(err, ShouldBeNil)
			So(backend.Name(), ShouldEqual, "wl-copy")
		})

		Convey("Should fail without a display server on unix-like platforms", func() {
			for _, goos := range []string{"linux", "freebsd", "openbsd", "netbsd"} {
				env := &fakeEnvironment{goos: goos, vars: map[string]string{}}
				_, err := Select(env)
				So(errors.Is(err, ErrNoDisplayServer), ShouldBeTrue)
			}
		})

		Convey("Should treat an empty DISPLAY as unset", func() {
			env := &fakeEnvironment{goos: "linux", vars: map[string]string{"DISPLAY": ""}}
			_, err := Select(env)
			So(errors.Is(err, ErrNoDisplayServer), ShouldBeTrue)
		})

		Convey("Should pick clip on windows regardless of environment", func() {
			env := &fakeEnvironment{goos: "windows", vars: map[string]string{}}
			backend, err := Select(env)
			So(err, ShouldBeNil)
			So(backend.Name(), ShouldEqual, "clip")
		})

		Convey("Should pick pbcopy on darwin regardless of environment", func() {
			env := &fakeEnvironment{goos: "darwin", vars: map[string]string{"DISPLAY": ":0"}}
			backend, err := Select(env)
			So(err, ShouldBeNil)
			So(backend.Name(), ShouldEqual, "pbcopy")
		})

		Convey("Should fail on any other platform", func() {
			env := &fakeEnvironment{goos: "plan9", vars: map[string]string{}}
			_, err := Select(env)
			So(errors.Is(err, ErrUnsupportedPlatform), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "plan9")
		})
	})
}

func TestCopy(t *testing.T) {
	Convey("Copy", t, func() {
		Convey("Should propagate selection failures", func() {
			env := &fakeEnvironment{goos: "plan9", vars: map[string]string{}}
			err := Copy(env, "https://tenor.com/view/cat")
			So(errors.Is(err, ErrUnsupportedPlatform), ShouldBeTrue)
		})

		Convey("Should report a missing backend binary as a spawn error", func() {
			backend := &commandBackend{name: "definitely-not-a-clipboard-utility"}
			err := backend.Copy("payload")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "spawn")
		})
	})
}
