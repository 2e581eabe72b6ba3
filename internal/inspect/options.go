package inspect

import (
	"fmt"
	"os"
	"strings"
)

// DefaultRootLabel is the display name for the implicit tree root, the
// built-in error interface
const DefaultRootLabel = "error"

type InspectOptions struct {
	// Dir is the working directory for resolving relative patterns.
	// Empty means the process working directory
	Dir string

	// BuildFlags are passed through to the underlying build system,
	// e.g. -tags=integration
	BuildFlags []string

	// Tests includes the test binaries of the matched packages
	Tests bool

	// Unexported includes unexported type names in the scan
	Unexported bool
}

func NewDefaultInspectOptions() *InspectOptions {
	return &InspectOptions{}
}

func (o InspectOptions) String() string {
	p := map[string]interface{}{
		"Dir":        o.Dir,
		"BuildFlags": o.BuildFlags,
		"Tests":      o.Tests,
		"Unexported": o.Unexported,
	}
	ret := make([]string, 0)
	for k, v := range p {
		ret = append(ret, fmt.Sprintf("%s: %v", k, v))
	}
	return strings.Join(ret, "\n")
}

// Validate will ensure the options are sane after all the flags and then
// return an error if things dont make sense
func (o InspectOptions) Validate() error {
	if o.Dir != "" {
		fi, err := os.Stat(o.Dir)
		if err != nil {
			return fmt.Errorf("failed to stat dir %s: %w", o.Dir, err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("dir is not a directory (%s)", o.Dir)
		}
	}
	return nil
}

func Dir(v string) InspectOption {
	return func(o *InspectOptions) error {
		o.Dir = v
		return nil
	}
}

func BuildFlags(v []string) InspectOption {
	return func(o *InspectOptions) error {
		o.BuildFlags = append(o.BuildFlags, v...)
		return nil
	}
}

func IncludeTests(v bool) InspectOption {
	return func(o *InspectOptions) error {
		o.Tests = v
		return nil
	}
}

func IncludeUnexported(v bool) InspectOption {
	return func(o *InspectOptions) error {
		o.Unexported = v
		return nil
	}
}

type InspectOption func(o *InspectOptions) error
