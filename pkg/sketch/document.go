package sketch

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Document is a snapshot of a design document: its top-level layers
// and the IDs of the currently selected layers.
type Document struct {
	Name      string   `json:"name" yaml:"name"`
	Layers    []Layer  `json:"layers" yaml:"layers" validate:"dive"`
	Selection []string `json:"selection,omitempty" yaml:"selection,omitempty"`
}

// Format is the encoding of a document snapshot.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf guesses the snapshot format from a file name.
// Everything that is not .yaml or .yml is treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var validate = validator.New()

// Decode parses a document snapshot and checks the attributes the data
// extraction depends on: every layer has a type and every override has
// a path and a property.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decode yaml document")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode json document")
		}
	default:
		return nil, errors.Errorf("unknown document format %q", format)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, errors.Wrap(err, "invalid document")
	}

	return &doc, nil
}

// Load reads and decodes the document snapshot at path.
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read document %q", path)
	}

	doc, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}

	return doc, nil
}

// Find returns the first layer with the given ID anywhere in the document.
func (d *Document) Find(id string) *Layer {
	for i := range d.Layers {
		if found := d.Layers[i].Find(id); found != nil {
			return found
		}
	}
	return nil
}

// SelectedLayers resolves the document selection to layers, in selection
// order. IDs that do not resolve are skipped.
func (d *Document) SelectedLayers() []*Layer {
	return d.resolve(d.Selection)
}

func (d *Document) resolve(ids []string) []*Layer {
	layers := make([]*Layer, 0, len(ids))
	for _, id := range deduplicateLayerIDs(ids) {
		if l := d.Find(id); l != nil {
			layers = append(layers, l)
		}
	}
	return layers
}

// Selection narrows a document to an explicit set of layer IDs,
// overriding whatever selection the snapshot recorded.
type Selection struct {
	Document *Document
	IDs      []string
}

// SelectedLayers resolves the explicit IDs against the document.
func (s Selection) SelectedLayers() []*Layer {
	return s.Document.resolve(s.IDs)
}

// ParseLayerIDs parses a comma-separated list of layer IDs.
// Blank entries are dropped and duplicates removed, keeping the first.
func ParseLayerIDs(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	return deduplicateLayerIDs(ids)
}

// deduplicateLayerIDs removes duplicate IDs while preserving order.
func deduplicateLayerIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}
