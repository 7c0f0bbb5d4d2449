package libbundle

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Registry is the plugin orchestrator. It owns the set of registered
// plugins and mediates every framework call into them: flag collection and
// transform collection go through the registry, in registration order.
//
// A panic escaping a plugin during flag collection is recovered at the
// registration boundary and reported as a plain (fatal) error rather than a
// ConfigError, so the CLI treats it as an internal fault.
type Registry struct {
	plugins []Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a plugin to the registry. Plugin names must be unique.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("cannot register nil plugin")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("cannot register plugin with empty name")
	}
	for _, existing := range r.plugins {
		if existing.Name() == name {
			return fmt.Errorf("plugin %q is already registered", name)
		}
	}
	r.plugins = append(r.plugins, p)
	log.Debugf("registered plugin %q", name)
	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// CommandFlags collects the CLI flags and verification callbacks every
// registered plugin contributes to the named command.
func (r *Registry) CommandFlags(command string) (flags []cli.Flag, verifiers []VerifyFunc, err error) {
	for _, p := range r.plugins {
		pluginFlags, verify, perr := registerPluginFlags(p, command)
		if perr != nil {
			return nil, nil, fmt.Errorf("plugin %q failed to register flags for command %q: %w", p.Name(), command, perr)
		}
		flags = append(flags, pluginFlags...)
		if verify != nil {
			verifiers = append(verifiers, verify)
		}
	}
	return flags, verifiers, nil
}

// registerPluginFlags invokes a single plugin's flag registration with
// panic recovery at the registration boundary.
func registerPluginFlags(p Plugin, command string) (flags []cli.Flag, verify VerifyFunc, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("registration panic: %v", rec)
		}
	}()
	return p.RegisterFlags(command)
}

// Verify runs every collected verification callback in order, stopping at
// the first failure.
func Verify(verifiers []VerifyFunc, c *cli.Context) error {
	for _, verify := range verifiers {
		if err := verify(c); err != nil {
			return err
		}
	}
	return nil
}

// CollectInputTransforms asks every registered plugin for its input-stage
// transform. Plugins returning nil are skipped; the remaining transforms
// keep registration order.
func (r *Registry) CollectInputTransforms(c *cli.Context) ([]Transform, error) {
	var transforms []Transform
	for _, p := range r.plugins {
		tr, err := p.CollectInputTransform(c)
		if err != nil {
			return nil, fmt.Errorf("plugin %q failed to provide input transform: %w", p.Name(), err)
		}
		if tr == nil {
			continue
		}
		log.Debugf("collected input transform %q from plugin %q", tr.Name(), p.Name())
		transforms = append(transforms, tr)
	}
	return transforms, nil
}
