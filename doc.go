// Package sketchdata turns a selected layer of a design document into a
// data set: a nested key/value structure, encoded as JSON, that design
// tools use to fill symbol overrides and text layers with data.
//
// The CLI lives in cmd/sketch-data; this root package exposes the same
// pipeline as a Go API so that plugins and other hosts can embed it.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named sketchdata:
//
//	import "github.com/kataras/sketch-data" // package sketchdata
//
// # Quick start
//
//	doc, err := sketch.Load(afero.NewOsFs(), "card.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := sketchdata.Run(sketchdata.Options{
//	    Selection: doc,
//	    Clipboard: &host.WriterClipboard{W: os.Stdout},
//	})
//
// # How layers become data
//
// Groups become objects keyed by the names of their children, in the
// top-to-bottom order of the layer list; children that yield nothing are
// left out. Text layers yield their text. Symbol instances and masters
// yield their stringValue and image overrides, nested along the symbols
// their override paths go through. Any other layer with an image fill
// yields a placeholder image path. Image content is never exported.
//
// When two children of a group share a name, the lowest one in the layer
// list wins and a warning is logged.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. [NewKitLogger] adapts a
// go-kit logger.
package sketchdata
