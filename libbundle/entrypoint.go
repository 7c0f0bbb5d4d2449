// Package libbundle: CLI Entrypoint Builder for the Bundler
//
// Provides helpers for assembling the bundler's urfave/cli application from
// a plugin registry: plugin flags are mounted on the bundle command,
// verification callbacks run after flag parsing, and the collected input
// transforms are handed to the bundle action.
//
// # Usage Example
//
//	app, err := libbundle.NewApp(&libbundle.Entrypoint{
//		Name:     "bundler",
//		Usage:    "bundle input files through registered transforms",
//		Registry: registry,
//		RunBundle: func(c *cli.Context, transforms []libbundle.Transform) error { ... },
//	})
package libbundle

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Entrypoint defines the structure for the bundler's CLI entrypoint.
type Entrypoint struct {
	// Name is the CLI name of the tool.
	Name string
	// Usage is the CLI usage description.
	Usage string
	// Registry holds the plugins contributing flags and transforms.
	Registry *Registry
	// GlobalFlags are mounted on the application itself.
	GlobalFlags []cli.Flag
	// BundleFlags are mounted on the bundle command ahead of plugin flags.
	BundleFlags []cli.Flag
	// Setup runs before any command, after global flag parsing.
	Setup func(c *cli.Context) error
	// RunBundle executes the bundle stage with the collected transforms.
	RunBundle func(c *cli.Context, transforms []Transform) error
}

// NewApp assembles the CLI application from the entrypoint. Flag
// registration runs here, once, during startup; a plugin failure at this
// stage is returned as a plain error and treated as fatal by the caller.
func NewApp(e *Entrypoint) (*cli.App, error) {
	if e == nil {
		return nil, fmt.Errorf("entrypoint is nil")
	}
	if e.Registry == nil {
		return nil, fmt.Errorf("entrypoint registry is nil")
	}
	if e.RunBundle == nil {
		return nil, fmt.Errorf("entrypoint bundle action is nil")
	}

	pluginFlags, verifiers, err := e.Registry.CommandFlags(CommandBundle)
	if err != nil {
		return nil, err
	}

	bundleCmd := &cli.Command{
		Name:  CommandBundle,
		Usage: "Bundle input files through the registered input transforms",
		Flags: append(append([]cli.Flag{}, e.BundleFlags...), pluginFlags...),
		Before: func(c *cli.Context) error {
			return Verify(verifiers, c)
		},
		Action: func(c *cli.Context) error {
			transforms, err := e.Registry.CollectInputTransforms(c)
			if err != nil {
				return err
			}
			return e.RunBundle(c, transforms)
		},
	}

	app := &cli.App{
		Name:            e.Name,
		Usage:           e.Usage,
		Flags:           e.GlobalFlags,
		HideHelpCommand: true,
		ErrWriter:       os.Stderr,
		Before:          e.Setup,
		Commands:        []*cli.Command{bundleCmd},
	}
	return app, nil
}
