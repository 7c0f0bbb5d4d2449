package bundle

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/typhonjs-node-bundle/plugin-replace/libbundle"
)

const (
	sourceCacheExpiration = 5 * time.Minute
	sourceCacheCleanup    = 10 * time.Minute
)

// Pipeline reads the configured entry files, runs the collected input
// transforms over each in registration order, and concatenates the results
// into the output file. Execution is synchronous on the calling goroutine;
// nothing here blocks on or spawns concurrent work.
type Pipeline struct {
	cfg        *Config
	transforms []libbundle.Transform

	// sources caches file content by path so entries repeated across the
	// entry list are read once.
	sources *cache.Cache
}

// NewPipeline creates a pipeline for one bundle invocation.
func NewPipeline(cfg *Config, transforms []libbundle.Transform) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		transforms: transforms,
		sources:    cache.New(sourceCacheExpiration, sourceCacheCleanup),
	}
}

// Run executes the bundle. buildID tags the log records of this invocation.
func (p *Pipeline) Run(buildID string) error {
	logger := log.WithFields(log.Fields{
		"build_id": buildID,
		"output":   p.cfg.Output,
	})
	logger.Infof("bundling %d entries through %d transform(s)",
		len(p.cfg.Entries), len(p.transforms))

	var out strings.Builder
	for _, entry := range p.cfg.Entries {
		src, err := p.readSource(entry)
		if err != nil {
			return err
		}

		for _, tr := range p.transforms {
			src, err = tr.Apply(src)
			if err != nil {
				return fmt.Errorf("transform %q failed on entry %q: %w", tr.Name(), entry, err)
			}
		}

		out.WriteString(src)
		if !strings.HasSuffix(src, "\n") {
			out.WriteString("\n")
		}
	}

	if err := os.WriteFile(p.cfg.Output, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("cannot write bundle output %q: %w", p.cfg.Output, err)
	}

	logger.Infof("bundle written (%d bytes)", out.Len())
	return nil
}

// readSource returns the content of path, served from the source cache when
// the same entry already appeared in this invocation.
func (p *Pipeline) readSource(path string) (string, error) {
	if cached, ok := p.sources.Get(path); ok {
		return cached.(string), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read entry %q: %w", path, err)
	}

	src := string(data)
	p.sources.Set(path, src, cache.DefaultExpiration)
	return src, nil
}
