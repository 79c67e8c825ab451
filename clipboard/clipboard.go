// Package clipboard implements the clipboard delivery sink.
//
// A backend is an external clipboard utility selected from the runtime
// platform and display-server environment. The payload is written to the
// spawned process's stdin; the exit status is intentionally not inspected.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/gifgrab-cli/gifgrab/constant"
	"github.com/gifgrab-cli/gifgrab/log"
)

// Environment is the capability the backend selection table reads from.
// It is queried once at the start of delivery dispatch so the platform
// branches stay testable with a substituted fake.
type Environment interface {
	// OS returns the runtime platform identifier (runtime.GOOS semantics).
	OS() string

	// LookupEnv reports an environment variable and whether it is set.
	LookupEnv(name string) (string, bool)
}

type systemEnvironment struct{}

func (systemEnvironment) OS() string { return runtime.GOOS }

func (systemEnvironment) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

// System returns the Environment backed by the real process environment.
func System() Environment {
	return systemEnvironment{}
}

// Selection failures per the dispatch contract.
var (
	ErrNoDisplayServer     = errors.New("no display server detected")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Backend copies a UTF-8 string to the system clipboard.
type Backend interface {
	Name() string
	Copy(text string) error
}

// commandBackend drives an external clipboard utility over stdin.
type commandBackend struct {
	name string
	args []string
}

func (b *commandBackend) Name() string {
	return b.name
}

// Copy spawns the utility, writes the full payload to its input stream and
// closes it. Fire-and-forget: spawn and write errors propagate, the exit
// status does not.
func (b *commandBackend) Copy(text string) error {
	cmd := exec.Command(b.name, b.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open %s input: %w", b.name, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", b.name, err)
	}

	if _, err := io.WriteString(stdin, text); err != nil {
		return fmt.Errorf("write to %s: %w", b.name, err)
	}
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("close %s input: %w", b.name, err)
	}

	_ = cmd.Wait()

	log.Debugf("copied %d bytes via %s", len(text), b.name)
	return nil
}

// isUnixLike reports platforms that use a display-server clipboard utility.
func isUnixLike(goos string) bool {
	switch goos {
	case constant.Linux, constant.FreeBSD, constant.OpenBSD, constant.NetBSD:
		return true
	default:
		return false
	}
}

// Select resolves the concrete clipboard backend for the environment.
//
//	unix-like + DISPLAY          -> xclip
//	unix-like + WAYLAND_DISPLAY  -> wl-copy
//	unix-like, neither           -> ErrNoDisplayServer
//	windows                      -> clip
//	darwin                       -> pbcopy
//	anything else                -> ErrUnsupportedPlatform
func Select(env Environment) (Backend, error) {
	goos := env.OS()

	switch {
	case isUnixLike(goos):
		if value, ok := env.LookupEnv("DISPLAY"); ok && value != "" {
			return &commandBackend{name: "xclip", args: []string{"-selection", "clipboard"}}, nil
		}
		if value, ok := env.LookupEnv("WAYLAND_DISPLAY"); ok && value != "" {
			return &commandBackend{name: "wl-copy"}, nil
		}
		return nil, ErrNoDisplayServer
	case goos == constant.Windows:
		return &commandBackend{name: "clip"}, nil
	case goos == constant.Darwin:
		return &commandBackend{name: "pbcopy"}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Copy selects the backend for the environment and delivers the text to it.
func Copy(env Environment, text string) error {
	backend, err := Select(env)
	if err != nil {
		return err
	}
	return backend.Copy(text)
}
