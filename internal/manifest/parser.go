package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes package.json content. Content must be a JSON object; a
// field whose value has the wrong type is left at its zero value so that
// one bad field does not hide the rest. Use Validate to report such fields.
func Parse(data []byte) (*PackageJSON, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("parsing package.json: not a JSON object")
	}

	var p PackageJSON
	decodeField(fields, "name", &p.Name)
	decodeField(fields, "version", &p.Version)
	decodeField(fields, "description", &p.Description)
	decodeField(fields, "private", &p.Private)
	decodeField(fields, "type", &p.Type)
	decodeField(fields, "scripts", &p.Scripts)
	decodeField(fields, "dependencies", &p.Dependencies)
	decodeField(fields, "devDependencies", &p.DevDependencies)
	return &p, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) {
	if raw, ok := fields[key]; ok {
		// Type mismatches are reported by the schema, not here.
		_ = json.Unmarshal(raw, dst)
	}
}

// ParseFile reads and decodes the package.json at path.
func ParseFile(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
