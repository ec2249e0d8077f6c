package imager

import (
	"github.com/kataras/sketch-data/pkg/sketch"
)

// Placeholder is the image path emitted for image fills and image
// overrides. Image content is never exported.
const Placeholder = "/path/to/image.png"

// ImageFillLayer identifies a non-group layer that has an image fill.
type ImageFillLayer struct {
	LayerID   string
	LayerName string
}

// HasImageFill reports whether any of the fills is an image fill.
// Which one comes first does not matter.
func HasImageFill(fills []sketch.Fill) bool {
	for _, f := range fills {
		if f.IsImage() {
			return true
		}
	}
	return false
}

// CollectImageFillLayers walks the layer tree and returns, in stored
// order, every layer whose value will be an image placeholder because of
// an image fill. Groups, text and symbol layers never qualify: they take
// their value from elsewhere.
func CollectImageFillLayers(root *sketch.Layer) []ImageFillLayer {
	var layers []ImageFillLayer
	collectImageFills(root, &layers)
	return layers
}

func collectImageFills(layer *sketch.Layer, layers *[]ImageFillLayer) {
	if layer.Kind() == sketch.KindOther && HasImageFill(layer.Fills()) {
		*layers = append(*layers, ImageFillLayer{
			LayerID:   layer.ID,
			LayerName: layer.Name,
		})
	}
	if !layer.IsGroup() {
		return
	}
	for i := range layer.Layers {
		collectImageFills(&layer.Layers[i], layers)
	}
}
