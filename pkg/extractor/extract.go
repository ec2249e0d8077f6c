package extractor

import (
	"github.com/pkg/errors"

	"github.com/kataras/sketch-data/pkg/imager"
	"github.com/kataras/sketch-data/pkg/sketch"
)

// Config tunes the extraction. The zero value is ready to use.
type Config struct {
	// ImagePlaceholder replaces imager.Placeholder when not empty.
	ImagePlaceholder string
	// OnDuplicate, if set, is called when a group has more than one
	// contributing child named name. The child processed last wins.
	OnDuplicate func(group *sketch.Layer, name string)
}

func (c Config) placeholder() string {
	if c.ImagePlaceholder != "" {
		return c.ImagePlaceholder
	}
	return imager.Placeholder
}

// ExtractValue maps a single layer to its data value, or nil when the
// layer contributes nothing:
//
//   - text layers yield their text, including the empty string;
//   - symbol instances and masters yield their normalized overrides;
//   - any other layer yields the image placeholder if it has an image fill.
//
// Groups are walked with Walk.
func ExtractValue(layer *sketch.Layer, cfg Config) (Value, error) {
	switch kind := layer.Kind(); kind {
	case sketch.KindGroup:
		return Walk(layer, cfg)
	case sketch.KindText:
		return Leaf(layer.Text), nil
	case sketch.KindSymbolInstance, sketch.KindSymbolMaster:
		return symbolValue(layer, cfg)
	case sketch.KindOther:
		if imager.HasImageFill(layer.Fills()) {
			return Leaf(cfg.placeholder()), nil
		}
		return nil, nil
	default:
		return nil, errors.Errorf("layer %q: unsupported kind %s", layer.Name, kind)
	}
}

func symbolValue(layer *sketch.Layer, cfg Config) (Value, error) {
	data, hasValues, err := NormalizeOverrides(layer.Overrides, cfg.placeholder())
	if err != nil {
		return nil, errors.Wrapf(err, "symbol %q", layer.Name)
	}

	data = Prune(data)
	if !hasValues || data.Len() == 0 {
		return nil, nil
	}

	return data, nil
}
