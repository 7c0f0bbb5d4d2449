// Package replace implements the replacement-flag loader plugin: it
// registers the --replace flag on the bundle command, resolves an
// environment-variable default when the flag is absent, verifies and
// normalizes the entries into a substitution map, and configures the
// text-replacement transform from that map.
package replace

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/typhonjs-node-bundle/plugin-replace/bundle"
	"github.com/typhonjs-node-bundle/plugin-replace/libbundle"
)

// FlagName is the CLI flag the plugin registers on the bundle command.
const FlagName = "replace"

// envSuffix completes the fallback variable name: "<PREFIX>_REPLACE".
const envSuffix = "_REPLACE"

// Plugin wires the replacement flag into the bundler. One instance serves
// one CLI invocation; the verified mapping lives on the instance and is
// discarded at process exit.
type Plugin struct {
	// envPrefix scopes the environment fallback variable.
	envPrefix string

	// verified holds the normalized mapping for the current invocation.
	// It is assigned even when verification fails, so the partial, valid
	// entries are stored before the error surfaces.
	verified *Map
}

// New creates the replace plugin. envPrefix names the environment fallback
// variable "<envPrefix>_REPLACE".
func New(envPrefix string) *Plugin {
	return &Plugin{envPrefix: envPrefix}
}

// Name implements libbundle.Plugin.
func (p *Plugin) Name() string {
	return "replace"
}

// EnvVarName returns the environment variable consulted for the flag
// default when --replace is not supplied.
func (p *Plugin) EnvVarName() string {
	return p.envPrefix + envSuffix
}

// RegisterFlags implements libbundle.Plugin. The plugin participates in the
// bundle command only; every other command identifier is a no-op.
func (p *Plugin) RegisterFlags(command string) ([]cli.Flag, libbundle.VerifyFunc, error) {
	if command != libbundle.CommandBundle {
		return nil, nil, nil
	}

	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    FlagName,
			Aliases: []string{"r"},
			Usage:   "Replace constants with hard-coded values.",
		},
	}
	return flags, p.verify, nil
}

// verify resolves the flag's effective value and normalizes it. The
// environment default is consulted only when --replace was not explicitly
// supplied on the command line.
func (p *Plugin) verify(c *cli.Context) error {
	var entries []string
	if c.IsSet(FlagName) {
		entries = c.StringSlice(FlagName)
	} else {
		resolved, err := libbundle.ResolveJSONArrayEnv(p.EnvVarName())
		if err != nil {
			return err
		}
		entries = resolved
	}

	m, err := Verify(entries)
	// The partial map is stored before the error surfaces; see Verify.
	p.verified = m
	if err != nil {
		return err
	}
	if m != nil {
		log.Debugf("replace plugin verified %d substitution(s)", len(m.Values))
	}
	return nil
}

// Verified returns the mapping produced by the last verification, which may
// be a partial result when verification failed, or nil when the flag was
// never supplied.
func (p *Plugin) Verified() *Map {
	return p.verified
}

// TransformOptions is the transform configuration factory: given the
// normalized mapping of an invocation it builds the replacement transform's
// options, combining every substitution with the fixed safety option that
// disables rewriting of bare-identifier assignments. A nil mapping means
// the transform is skipped entirely.
func TransformOptions(m *Map) *bundle.ReplaceOptions {
	if m == nil || m.Values == nil {
		return nil
	}

	values := make(map[string]string, len(m.Values))
	for k, v := range m.Values {
		values[k] = v
	}

	var delimiters []string
	if m.Delimiters != nil {
		delimiters = append([]string(nil), m.Delimiters...)
	}

	return &bundle.ReplaceOptions{
		Values:            values,
		Delimiters:        delimiters,
		PreventAssignment: true,
	}
}

// CollectInputTransform implements libbundle.Plugin. It returns the
// configured replacement transform, or nil when no mapping was produced for
// this invocation.
func (p *Plugin) CollectInputTransform(_ *cli.Context) (libbundle.Transform, error) {
	opts := TransformOptions(p.verified)
	if opts == nil {
		return nil, nil
	}
	return bundle.NewReplaceTransform(*opts), nil
}
