package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
)

// Stdin is the path argument that reads a document from standard input.
const Stdin = "-"

// ReadDocument decodes a dashboard document from path.
func ReadDocument(path string) (*entity.Dashboard, error) {
	var r io.Reader
	if path == Stdin {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return DecodeDocument(r, path)
}

// DecodeDocument decodes a dashboard document. A wrapped {"dashboard": ...}
// payload, as returned by the store API, is unwrapped.
func DecodeDocument(r io.Reader, name string) (*entity.Dashboard, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var probe struct {
		Dashboard json.RawMessage `json:"dashboard"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(probe.Dashboard) > 0 && probe.Dashboard[0] == '{' {
		data = probe.Dashboard
	}

	var doc entity.Dashboard
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &doc, nil
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// WriteDocumentFile writes doc to path, or to w when path is empty or Stdin.
func WriteDocumentFile(w io.Writer, path string, doc *entity.Dashboard) error {
	if path == "" || path == Stdin {
		return WriteJSON(w, doc)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteJSON(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// DocumentSchema reflects the JSON schema of the dashboard document.
func DocumentSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Mapper:         documentTypeMapper,
	}
	schema := r.Reflect(&entity.Dashboard{})
	schema.Title = "Dashboard"
	schema.Description = "Declarative dashboard document"
	return schema
}

var variableValueType = reflect.TypeFor[entity.VariableValue]()

// documentTypeMapper describes types whose JSON form is custom encoded.
func documentTypeMapper(t reflect.Type) *jsonschema.Schema {
	if t != variableValueType {
		return nil
	}
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

// UsesLibraryPanels reports whether doc references stored library panels.
func UsesLibraryPanels(doc *entity.Dashboard) bool {
	for _, p := range doc.Panels {
		if p.IsLibraryReference() {
			return true
		}
		for _, nested := range p.Panels {
			if nested.IsLibraryReference() {
				return true
			}
		}
	}
	return false
}
