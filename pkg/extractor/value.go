package extractor

import (
	"bytes"
	"encoding/json"
)

// Value is a node of an extracted data set: either a Leaf or an *Object.
// A nil Value means the layer contributes nothing.
type Value interface {
	isValue()
}

// Leaf is a scalar data value, e.g. a text or an image path.
type Leaf string

func (Leaf) isValue() {}

// MarshalJSON encodes the leaf as a JSON string without HTML escaping.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return encodeString(string(l))
}

// Object is a mapping from layer names to values which remembers the
// order in which keys were first inserted.
type Object struct {
	keys   []string
	fields map[string]Value
}

func (*Object) isValue() {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Set stores v under key. Overwriting an existing key keeps its
// original position and reports replaced as true.
func (o *Object) Set(key string, v Value) (replaced bool) {
	if _, replaced = o.fields[key]; !replaced {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
	return replaced
}

// Delete removes key, reporting whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.fields[key]; !ok {
		return false
	}
	delete(o.fields, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Map converts the object into plain Go maps and strings.
func (o *Object) Map() map[string]any {
	m := make(map[string]any, o.Len())
	for _, k := range o.keys {
		m[k] = Plain(o.fields[k])
	}
	return m
}

// Plain converts v into plain Go values: string, map[string]any or nil.
func Plain(v Value) any {
	switch v := v.(type) {
	case Leaf:
		return string(v)
	case *Object:
		return v.Map()
	default:
		return nil
	}
}

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValue encodes nested values directly; json.Marshal would
// HTML-escape the output of nested marshalers.
func writeValue(buf *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case Leaf:
		s, err := encodeString(string(v))
		if err != nil {
			return err
		}
		buf.Write(s)
	case *Object:
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := encodeString(k)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeValue(buf, v.fields[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Equal reports whether a and b hold the same data. Key order is ignored.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		bl, ok := b.(Leaf)
		return ok && a == bl
	case *Object:
		bo, ok := b.(*Object)
		if !ok || a.Len() != bo.Len() {
			return false
		}
		for _, k := range a.keys {
			bv, ok := bo.fields[k]
			if !ok || !Equal(a.fields[k], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
