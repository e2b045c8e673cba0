package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Resolved returns the entries as plain key/value pairs in document order.
// Categories are skipped; Choice and Color resolve to the selected option name.
// Later duplicates of a key are ignored.
func (c *Config) Resolved() ([]string, map[string]any) {
	keys := make([]string, 0, len(c.entries))
	values := make(map[string]any, len(c.entries))
	for _, e := range c.entries {
		if _, seen := values[e.Key]; seen {
			continue
		}
		var v any
		switch val := e.Value.(type) {
		case *Text:
			v = val.Value
		case *Choice:
			v, _ = val.Current()
		case *Color:
			v, _ = val.Current()
		case *Integer:
			v = val.Value
		case *Boolean:
			v = val.Value
		case *Category:
			continue
		}
		keys = append(keys, e.Key)
		values[e.Key] = v
	}
	return keys, values
}

// Export writes the resolved key/value map in the given format.
func (c *Config) Export(w io.Writer, format string) error {
	keys, values := c.Resolved()

	var (
		out []byte
		err error
	)
	switch strings.ToLower(format) {
	case FormatJSON, "":
		out, err = exportJSON(keys, values)
	case FormatYAML, "yml":
		out, err = yaml.Marshal(values)
	case FormatTOML:
		out, err = toml.Marshal(values)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

func exportJSON(keys []string, values map[string]any) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	for _, k := range keys {
		if out, err = sjson.SetBytes(out, escapePath(k), values[k]); err != nil {
			return nil, err
		}
	}
	return pretty.PrettyOptions(out, prettyOptions), nil
}

// escapePath makes an arbitrary key usable as a single sjson path component.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', ':', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
