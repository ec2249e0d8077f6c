package sketch

import (
	"fmt"
	"strings"
)

// Version is the sketch-data release.
const Version = "0.1.0"

// Kind is the closed set of layer kinds the data extraction understands.
// Every layer type string that is not listed decodes to KindOther.
type Kind int

const (
	// KindOther covers shapes, images, artboards and every other layer
	// type that can only contribute through an image fill.
	KindOther Kind = iota
	// KindGroup is a layer that only contains other layers.
	KindGroup
	// KindText is a text layer; its value is the text content.
	KindText
	// KindSymbolInstance is a placed symbol with per-instance overrides.
	KindSymbolInstance
	// KindSymbolMaster is a symbol definition; it carries overrides too.
	KindSymbolMaster
)

var kindNames = map[Kind]string{
	KindOther:          "Other",
	KindGroup:          "Group",
	KindText:           "Text",
	KindSymbolInstance: "SymbolInstance",
	KindSymbolMaster:   "SymbolMaster",
}

// ParseKind maps a document layer type to its Kind.
func ParseKind(typ string) Kind {
	for k, name := range kindNames {
		if k != KindOther && name == typ {
			return k
		}
	}
	return KindOther
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsSymbol reports whether layers of this kind carry symbol overrides.
func (k Kind) IsSymbol() bool {
	return k == KindSymbolInstance || k == KindSymbolMaster
}

// Layer is a single node of the design document tree.
// Only the attributes the data extraction reads are decoded.
type Layer struct {
	ID        string     `json:"id,omitempty" yaml:"id,omitempty"`
	Type      string     `json:"type" yaml:"type" validate:"required"`
	Name      string     `json:"name" yaml:"name"`
	Text      string     `json:"text,omitempty" yaml:"text,omitempty"`
	Layers    []Layer    `json:"layers,omitempty" yaml:"layers,omitempty" validate:"dive"`
	Overrides []Override `json:"overrides,omitempty" yaml:"overrides,omitempty" validate:"dive"`
	Style     *Style     `json:"style,omitempty" yaml:"style,omitempty"`
}

// Kind returns the layer's kind, derived from its type string.
func (l *Layer) Kind() Kind {
	return ParseKind(l.Type)
}

// IsGroup reports whether the layer is a group.
func (l *Layer) IsGroup() bool {
	return l.Kind() == KindGroup
}

// Fills returns the layer's fills, or nil when it has no style.
func (l *Layer) Fills() []Fill {
	if l.Style == nil {
		return nil
	}
	return l.Style.Fills
}

// Find returns the first layer with the given ID in the subtree rooted
// at l, including l itself.
func (l *Layer) Find(id string) *Layer {
	if l.ID == id {
		return l
	}
	for i := range l.Layers {
		if found := l.Layers[i].Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Override property names.
const (
	PropertySymbolID    = "symbolID"
	PropertyStringValue = "stringValue"
	PropertyImage       = "image"
)

// Override is a path-addressed override record of a symbol layer.
//
// Path is a slash-delimited list of override IDs pointing into the
// nested symbol hierarchy, e.g. "3F2A/91C0".
type Override struct {
	Path          string        `json:"path" yaml:"path" validate:"required"`
	Property      string        `json:"property" yaml:"property" validate:"required"`
	Value         any           `json:"value,omitempty" yaml:"value,omitempty"`
	AffectedLayer AffectedLayer `json:"affectedLayer" yaml:"affectedLayer"`
}

// StringValue renders the decoded override value as text.
// A missing value renders as the empty string.
func (o Override) StringValue() string {
	switch v := o.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// AffectedLayer identifies the layer an override targets.
type AffectedLayer struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// Style holds the style attributes of a non-group layer.
type Style struct {
	Fills []Fill `json:"fills,omitempty" yaml:"fills,omitempty"`
}

// FillPattern is the fill type of image fills.
const FillPattern = "Pattern"

// Fill is a single fill of a layer style. Type is one of "Color",
// "Gradient" or "Pattern".
type Fill struct {
	Type    string `json:"type" yaml:"type"`
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// IsImage reports whether the fill displays an image.
func (f Fill) IsImage() bool {
	return f.Type == FillPattern
}
