// Package dictionary loads a nested localization JSON document and flattens
// it into a dot-joined key to string-value map.
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dictionary maps dot-joined key paths to leaf values.
type Dictionary map[string]string

// Load reads and flattens a localization JSON file. On any failure it
// returns an empty dictionary together with the error so the caller can log
// and continue with every key reporting as unmatched.
func Load(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return Dictionary{}, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}

	return Flatten(root), nil
}

// Flatten recursively flattens a nested key/value tree. Nested objects
// recurse with the key dot-appended to the prefix; arrays are leaves, not
// recursed into. Non-string leaves are stored as their JSON encoding.
func Flatten(root map[string]any) Dictionary {
	dict := make(Dictionary)
	flattenInto(dict, "", root)
	return dict
}

func flattenInto(dict Dictionary, prefix string, node map[string]any) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenInto(dict, full, v)
		case string:
			dict[full] = v
		default:
			dict[full] = encodeLeaf(v)
		}
	}
}

func encodeLeaf(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Lookup returns the value for a flattened key.
func (d Dictionary) Lookup(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}
