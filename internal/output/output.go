// Package output renders projected invocation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/aws/smithy-go/middleware"
	"gopkg.in/yaml.v3"
)

var metadataType = reflect.TypeFor[middleware.Metadata]()

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json or yaml)", name)
	}
}

// Render writes v to w. A nil value writes nothing, the way an operation
// without output returns nothing to the pipeline.
func Render(w io.Writer, format Format, v any) error {
	if v == nil {
		return nil
	}

	// SDK shapes only carry json-compatible field names, so YAML goes
	// through the JSON form to keep the same keys.
	data, err := json.MarshalIndent(withoutMetadata(v), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case FormatYAML:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()
	default:
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}
}

// withoutMetadata drops the result metadata the SDK attaches to every
// response. It has no exported state and always encodes as {}.
func withoutMetadata(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return v
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return v
	}

	t := rv.Type()
	var (
		fields  []reflect.StructField
		index   []int
		dropped bool
	)
	for i := range t.NumField() {
		f := t.Field(i)
		switch {
		case f.Type == metadataType:
			dropped = true
		case !f.IsExported():
		case f.Anonymous:
			return v
		default:
			fields = append(fields, f)
			index = append(index, i)
		}
	}
	if !dropped {
		return v
	}

	out := reflect.New(reflect.StructOf(fields)).Elem()
	for j, i := range index {
		out.Field(j).Set(rv.Field(i))
	}
	return out.Interface()
}
