// Package libbundle: Plugin Contract for Bundler Plugins
//
// Provides the interface all bundler plugins implement and the types the
// registry uses to collect flags, verification callbacks and input-stage
// transforms from them.
//
// Plugin wiring is explicit and synchronous: the registry calls these
// methods directly during CLI startup on the main goroutine, and their
// return values are collected by the caller. There is no event bus and no
// asynchronous dispatch.
package libbundle

import (
	"github.com/urfave/cli/v2"
)

// CommandBundle is the command identifier plugins scope their flag
// registration to. Plugins receiving any other identifier are expected to
// report nothing.
const CommandBundle = "bundle"

// VerifyFunc validates a plugin's parsed flag values after CLI parsing and
// before the command action runs. Returning a ConfigError aborts the
// command cleanly.
type VerifyFunc func(c *cli.Context) error

// Transform rewrites source text during the input stage of a bundle.
type Transform interface {
	// Name identifies the transform in logs and error reports.
	Name() string
	// Apply returns the rewritten source. Transforms run synchronously
	// and must not retain src.
	Apply(src string) (string, error)
}

// Plugin is the contract bundler plugins implement.
//
// Example:
//
//	registry := libbundle.NewRegistry()
//	if err := registry.Register(replace.New("BUNDLER")); err != nil { ... }
type Plugin interface {
	// Name identifies the plugin. Registering two plugins with the same
	// name is an error.
	Name() string

	// RegisterFlags reports the CLI flags the plugin contributes to the
	// named command plus an optional verification callback. Plugins
	// return (nil, nil, nil) for commands they do not participate in.
	RegisterFlags(command string) ([]cli.Flag, VerifyFunc, error)

	// CollectInputTransform returns the input-stage transform configured
	// from the parsed invocation, or nil when the plugin has nothing to
	// contribute to this bundle.
	CollectInputTransform(c *cli.Context) (Transform, error)
}
