// Package bundle implements the bundling pipeline and the input-stage
// transforms it runs, including the text-replacement transform configured
// by the replace plugin.
package bundle

import (
	"regexp"
	"sort"
	"strings"

	"github.com/typhonjs-node-bundle/plugin-replace/libbundle"
)

// ReplaceOptions configures the text-replacement transform.
type ReplaceOptions struct {
	// Values maps each matched key to its replacement text.
	Values map[string]string

	// Delimiters wrap each key before matching. A two-element
	// empty-string pair selects literal substring replacement; nil
	// selects the default word-boundary delimiters, so "FOO" does not
	// match inside "FOOBAR".
	Delimiters []string

	// PreventAssignment skips occurrences directly followed by a simple
	// assignment: with it set, `FOO = 1` is left alone while `x = FOO`
	// is still rewritten. Chained comparison (`==`) is not treated as an
	// assignment.
	PreventAssignment bool
}

// assignmentPattern matches the text immediately after a key when the key
// is the target of a simple assignment. A second `=` (comparison) or `>`
// (arrow) after the separator means no assignment.
var assignmentPattern = regexp.MustCompile(`^\s*=(?:[^=>]|$)`)

type replaceTransform struct {
	pattern           *regexp.Regexp
	values            map[string]string
	preventAssignment bool
}

// NewReplaceTransform builds the replacement transform from opts. An empty
// value map yields a no-op transform.
//
// Keys are matched longest first, so overlapping keys ("NODE_ENV" vs
// "NODE") resolve deterministically regardless of map iteration order.
func NewReplaceTransform(opts ReplaceOptions) libbundle.Transform {
	t := &replaceTransform{
		values:            opts.Values,
		preventAssignment: opts.PreventAssignment,
	}
	if len(opts.Values) == 0 {
		return t
	}

	keys := make([]string, 0, len(opts.Values))
	for k := range opts.Values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}

	left, right := `\b`, `\b`
	if len(opts.Delimiters) == 2 {
		left = regexp.QuoteMeta(opts.Delimiters[0])
		right = regexp.QuoteMeta(opts.Delimiters[1])
	}

	t.pattern = regexp.MustCompile(left + "(" + strings.Join(quoted, "|") + ")" + right)
	return t
}

func (t *replaceTransform) Name() string {
	return "replace"
}

func (t *replaceTransform) Apply(src string) (string, error) {
	if t.pattern == nil {
		return src, nil
	}

	matches := t.pattern.FindAllStringSubmatchIndex(src, -1)
	if matches == nil {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, loc := range matches {
		if t.preventAssignment && assignmentPattern.MatchString(src[loc[1]:]) {
			continue
		}
		key := src[loc[2]:loc[3]]
		b.WriteString(src[last:loc[0]])
		b.WriteString(t.values[key])
		last = loc[1]
	}
	b.WriteString(src[last:])
	return b.String(), nil
}
