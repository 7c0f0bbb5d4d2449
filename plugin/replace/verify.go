package replace

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/typhonjs-node-bundle/plugin-replace/libbundle"
)

// entryPattern splits a raw entry into its key and value groups. The left
// group is greedy, so the rightmost '=' that leaves non-empty content on
// both sides wins: "a=b=c" parses as key "a=b", value "c".
var entryPattern = regexp.MustCompile(`^(.+)=(.+)$`)

// Map is the normalized key→value substitution table handed to the
// text-replacement transform. Keys are unique; the first occurrence of a
// key wins.
type Map struct {
	Values map[string]string

	// Delimiters is a transitional compatibility marker set only on maps
	// that passed verification: the two-element empty-string pair tells
	// the replacement transform to substitute keys literally instead of
	// wrapping them in its default word-boundary delimiters.
	Delimiters []string
}

// Verify validates raw "key=value" entries and folds the well-formed ones
// into a Map. A nil entry slice means there is nothing to verify and no map
// is produced.
//
// Entries without a viable separator are collected as malformed; entries
// whose key is already present are collected as duplicates, with the first
// inserted value retained. If either list is non-empty a ConfigError
// combining both is returned alongside the partial map, so callers can
// still observe the entries that were accepted.
func Verify(entries []string) (*Map, error) {
	if entries == nil {
		return nil, nil
	}

	m := &Map{Values: make(map[string]string, len(entries))}
	var malformed, duplicate []string

	for _, entry := range entries {
		groups := entryPattern.FindStringSubmatch(entry)
		if groups == nil {
			malformed = append(malformed, entry)
			continue
		}
		key, value := groups[1], groups[2]
		if _, exists := m.Values[key]; exists {
			duplicate = append(duplicate, entry)
			continue
		}
		m.Values[key] = value
	}

	if len(malformed) > 0 || len(duplicate) > 0 {
		return m, verifyError(malformed, duplicate)
	}

	m.Delimiters = []string{"", ""}
	return m, nil
}

// verifyError builds the combined verification failure: a fixed preface,
// then the malformed section, then the duplicate section, each on its own
// line.
func verifyError(malformed, duplicate []string) error {
	var b strings.Builder
	b.WriteString("verification of flag entries failed:")
	if len(malformed) > 0 {
		fmt.Fprintf(&b, "\nmalformed entries %s; each entry must take the form '<key>=<value>'",
			serializeEntries(malformed))
	}
	if len(duplicate) > 0 {
		fmt.Fprintf(&b, "\nduplicate entries %s overwrite keys already defined; the first value is retained",
			serializeEntries(duplicate))
	}
	return &libbundle.ConfigError{Field: FlagName, Reason: b.String()}
}

func serializeEntries(entries []string) string {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Sprintf("%q", entries)
	}
	return string(data)
}
