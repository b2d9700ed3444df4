package schemagen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseFile loads a Definition from a file. The file extension
// is used to determine the format (JSON or YAML).
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindMisuse, Message: "error reading definition file", Err: err}
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return nil, misuseError(fmt.Sprintf("unsupported file extension: %s", ext))
	}
}

// ParseYAML loads a Definition from YAML using the wire key names.
func ParseYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.UnmarshalWithOptions(data, &def, yaml.Strict()); err != nil {
		return nil, decodeError("error decoding definition YAML", err)
	}
	return &def, nil
}

// ParseJSON loads a Definition from its JSON wire form.
func ParseJSON(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, decodeError("error decoding definition JSON", err)
	}
	return &def, nil
}
