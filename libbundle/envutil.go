package libbundle

import (
	"encoding/json"
	"fmt"
	"os"
)

// ResolveJSONArrayEnv reads the named environment variable and decodes its
// content as a JSON array of strings, the format flag defaults use when
// supplied through the environment.
//
// An unset variable is not an error: the flag simply has no default and
// (nil, nil) is returned. A set variable that is not valid JSON, or whose
// JSON is not an array, yields a ConfigError naming the variable.
//
// Example:
//
//	entries, err := libbundle.ResolveJSONArrayEnv("BUNDLER_REPLACE")
func ResolveJSONArrayEnv(name string) ([]string, error) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &ConfigError{
			Field:  name,
			Reason: fmt.Sprintf("invalid JSON: %v", err),
			Err:    err,
		}
	}

	items, ok := decoded.([]interface{})
	if !ok {
		return nil, &ConfigError{
			Field:  name,
			Reason: `value must be formatted as a JSON array of "<key>=<value>" strings`,
		}
	}

	entries := make([]string, 0, len(items))
	for _, item := range items {
		// Non-string array elements are carried through as their string
		// form and fail shape verification downstream instead of here.
		if s, ok := item.(string); ok {
			entries = append(entries, s)
			continue
		}
		entries = append(entries, fmt.Sprintf("%v", item))
	}
	return entries, nil
}
