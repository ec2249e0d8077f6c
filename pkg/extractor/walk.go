package extractor

import (
	"github.com/kataras/sketch-data/pkg/sketch"
)

// Walk derives the data value of layer. A non-group layer yields its
// own value (see ExtractValue). A group yields an object keyed by the
// names of its contributing children, visited from the last stored child
// to the first so that keys follow the top-to-bottom order of the layer
// list. Children without a value are skipped and a group without any
// contributing child yields nil.
func Walk(layer *sketch.Layer, cfg Config) (Value, error) {
	if !layer.IsGroup() {
		return ExtractValue(layer, cfg)
	}

	var data *Object
	for i := len(layer.Layers) - 1; i >= 0; i-- {
		child := &layer.Layers[i]

		v, err := Walk(child, cfg)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}

		if data == nil {
			data = NewObject()
		}
		if data.Set(child.Name, v) && cfg.OnDuplicate != nil {
			cfg.OnDuplicate(layer, child.Name)
		}
	}

	// Avoid returning a typed nil.
	if data == nil {
		return nil, nil
	}
	return data, nil
}
