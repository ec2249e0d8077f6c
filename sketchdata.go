package sketchdata

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/kataras/sketch-data/pkg/extractor"
	"github.com/kataras/sketch-data/pkg/formatter"
	"github.com/kataras/sketch-data/pkg/host"
	"github.com/kataras/sketch-data/pkg/imager"
	"github.com/kataras/sketch-data/pkg/sketch"
)

// Messages shown through Options.Messenger.
const (
	MessageSelectionCount = "☝️ Select exactly one layer group to create data set."
	MessageNoData         = "☝️ No symbol overrides found."
	MessageMalformedPath  = "⚠️ Malformed symbol override path, no data copied."
	MessageFailed         = "⚠️ Could not create data set."
	MessageCopied         = "📋 Data copied to clipboard."
)

var (
	// ErrSelectionCount is returned when not exactly one layer is selected.
	ErrSelectionCount = errors.New("select exactly one layer group")
	// ErrNoData is returned when the selected layer yields no data.
	ErrNoData = errors.New("no symbol overrides found")
	// ErrMalformedPath is returned when a symbol override addresses a
	// parent path that no symbol override established.
	ErrMalformedPath = extractor.ErrMalformedPath
)

// Options configures a data set extraction.
type Options struct {
	Selection        host.SelectionProvider // required
	Clipboard        host.Clipboard         // required
	Messenger        host.Messenger         // nil = no messages
	ImagePlaceholder string                 // empty = imager.Placeholder
	Logger           Logger                 // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	Layer *sketch.Layer   // the selected layer
	Data  extractor.Value // never nil
	JSON  string          // the clipboard payload
	Stats extractor.Stats
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

func (o *Options) message(text string) {
	if o.Messenger != nil {
		o.Messenger.Message(text)
	}
}

// Run derives the data set of the single selected layer, copies it as
// JSON to the clipboard and reports the outcome through the messenger.
//
// Every failure is reported with one message and returned; the clipboard
// is written only on success.
func Run(opts Options) (*Result, error) {
	if opts.Selection == nil || opts.Clipboard == nil {
		return nil, errors.New("sketchdata: selection and clipboard are required")
	}

	placeholder := opts.ImagePlaceholder
	if placeholder == "" {
		placeholder = imager.Placeholder
	}

	selected := opts.Selection.SelectedLayers()
	if len(selected) != 1 {
		opts.logWarn("%d layer(s) selected", len(selected))
		opts.message(MessageSelectionCount)
		return nil, ErrSelectionCount
	}
	layer := selected[0]
	opts.logInfo("Extracting data from %s layer %q...", layer.Kind(), layer.Name)

	if fills := imager.CollectImageFillLayers(layer); len(fills) > 0 {
		opts.logInfo("Found %d image fill(s), using placeholder %s", len(fills), placeholder)
	}

	cfg := extractor.Config{
		ImagePlaceholder: placeholder,
		OnDuplicate: func(group *sketch.Layer, name string) {
			opts.logWarn("Group %q has more than one layer named %q, keeping the lowest one", group.Name, name)
		},
	}

	data, err := extractor.Walk(layer, cfg)
	if err != nil {
		opts.logError("%v", err)
		if errors.Is(err, ErrMalformedPath) {
			opts.message(MessageMalformedPath)
		} else {
			opts.message(MessageFailed)
		}
		return nil, pkgerrors.Wrapf(err, "extract layer %q", layer.Name)
	}
	if data == nil {
		opts.message(MessageNoData)
		return nil, ErrNoData
	}

	payload, err := formatter.ToJSON(data)
	if err != nil {
		opts.message(MessageFailed)
		return nil, err
	}

	opts.logInfo("Copying %d bytes of JSON...", len(payload))
	if err := opts.Clipboard.Write(payload, host.TypeString); err != nil {
		opts.logError("Copy failed: %v", err)
		opts.message(MessageFailed)
		return nil, pkgerrors.Wrap(err, "copy data set")
	}
	opts.message(MessageCopied)

	return &Result{
		Layer: layer,
		Data:  data,
		JSON:  payload,
		Stats: extractor.Summarize(data, placeholder),
	}, nil
}
