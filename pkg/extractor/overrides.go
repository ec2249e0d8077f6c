package extractor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kataras/sketch-data/pkg/sketch"
)

// ErrMalformedPath is matched by every *MalformedPathError.
var ErrMalformedPath = errors.New("malformed override path")

// MalformedPathError reports an override whose parent path was never
// established by a symbolID override.
type MalformedPathError struct {
	Path     string
	Property string
	Layer    string // affected layer name
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("%s %q (%s of %q): no symbol override at parent path", ErrMalformedPath, e.Path, e.Property, e.Layer)
}

// Is makes errors.Is(err, ErrMalformedPath) hold.
func (e *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}

var supportedProperties = map[string]bool{
	sketch.PropertySymbolID:    true,
	sketch.PropertyStringValue: true,
	sketch.PropertyImage:       true,
}

// NormalizeOverrides turns the flat override list of a symbol layer into
// a nested object keyed by affected layer name. Every symbolID override
// opens a nested object that its descendants write into; stringValue
// overrides write their value and image overrides write placeholder.
//
// hasValues reports whether at least one stringValue or image override
// was applied. Overrides with other properties are ignored.
func NormalizeOverrides(overrides []sketch.Override, placeholder string) (data *Object, hasValues bool, err error) {
	filtered := make([]sketch.Override, 0, len(overrides))
	for _, o := range overrides {
		if supportedProperties[o.Property] {
			filtered = append(filtered, o)
		}
	}

	// Ancestor paths are prefixes of their descendants and sort first.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Path < filtered[j].Path
	})

	data = NewObject()
	groups := map[string]*Object{"": data}

	for _, o := range filtered {
		parent, ok := groups[parentPath(o.Path)]
		if !ok || (o.Property == sketch.PropertySymbolID && o.Path == "") {
			return nil, false, &MalformedPathError{
				Path:     o.Path,
				Property: o.Property,
				Layer:    o.AffectedLayer.Name,
			}
		}

		switch o.Property {
		case sketch.PropertySymbolID:
			nested := NewObject()
			groups[o.Path] = nested
			parent.Set(o.AffectedLayer.Name, nested)
		case sketch.PropertyStringValue:
			parent.Set(o.AffectedLayer.Name, Leaf(o.StringValue()))
			hasValues = true
		case sketch.PropertyImage:
			parent.Set(o.AffectedLayer.Name, Leaf(placeholder))
			hasValues = true
		}
	}

	return data, hasValues, nil
}

// parentPath drops the last slash-delimited segment of path.
func parentPath(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}
