package sketchdata

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/sketch-data/pkg/extractor"
	"github.com/kataras/sketch-data/pkg/formatter"
	"github.com/kataras/sketch-data/pkg/host"
	"github.com/kataras/sketch-data/pkg/sketch"
)

type fakeSelection []*sketch.Layer

func (s fakeSelection) SelectedLayers() []*sketch.Layer { return s }

type fakeClipboard struct {
	writes []string
	types  []string
	err    error
}

func (c *fakeClipboard) Write(payload, typ string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, payload)
	c.types = append(c.types, typ)
	return nil
}

type recorder struct {
	messages []string
}

func (r *recorder) Message(text string) { r.messages = append(r.messages, text) }

type memLogger struct {
	infos, warns, errs int
}

func (l *memLogger) Infof(string, ...any)  { l.infos++ }
func (l *memLogger) Warnf(string, ...any)  { l.warns++ }
func (l *memLogger) Errorf(string, ...any) { l.errs++ }

func run(t *testing.T, selected ...*sketch.Layer) (*Result, *fakeClipboard, *recorder, error) {
	t.Helper()
	clip := &fakeClipboard{}
	msgs := &recorder{}
	res, err := Run(Options{
		Selection: fakeSelection(selected),
		Clipboard: clip,
		Messenger: msgs,
		Logger:    &memLogger{},
	})
	return res, clip, msgs, err
}

func TestRunTextLayer(t *testing.T) {
	res, clip, msgs, err := run(t, &sketch.Layer{Type: "Text", Name: "greeting", Text: "Hello"})
	require.NoError(t, err)

	require.Len(t, clip.writes, 1)
	assert.JSONEq(t, `["Hello"]`, clip.writes[0])
	assert.Equal(t, host.TypeString, clip.types[0])
	assert.Equal(t, res.JSON, clip.writes[0])
	assert.Equal(t, []string{MessageCopied}, msgs.messages)
	assert.Equal(t, extractor.Stats{Texts: 1}, res.Stats)
}

func TestRunGroupWithEmptyChild(t *testing.T) {
	layer := &sketch.Layer{
		Type: "Group",
		Name: "card",
		Layers: []sketch.Layer{
			{Type: "Text", Name: "title", Text: "Hi"},
			{Type: "Group", Name: "decoration"},
		},
	}

	res, clip, msgs, err := run(t, layer)
	require.NoError(t, err)

	require.Len(t, clip.writes, 1)
	assert.JSONEq(t, `[{"title":"Hi"}]`, clip.writes[0])
	assert.Equal(t, "[\n  {\n    \"title\": \"Hi\"\n  }\n]", clip.writes[0])
	assert.Equal(t, []string{MessageCopied}, msgs.messages)
	assert.Same(t, layer, res.Layer)
}

func TestRunSelectionCount(t *testing.T) {
	text := &sketch.Layer{Type: "Text", Name: "a", Text: "x"}

	tests := []struct {
		name     string
		selected []*sketch.Layer
	}{
		{"nothing selected", nil},
		{"two layers selected", []*sketch.Layer{text, text}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, clip, msgs, err := run(t, tt.selected...)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrSelectionCount))
			assert.Empty(t, clip.writes)
			assert.Equal(t, []string{MessageSelectionCount}, msgs.messages)
		})
	}
}

func TestRunNoData(t *testing.T) {
	tests := []struct {
		name  string
		layer *sketch.Layer
	}{
		{
			name: "symbol with unsupported overrides",
			layer: &sketch.Layer{Type: "SymbolInstance", Name: "badge", Overrides: []sketch.Override{
				{Path: "A", Property: "other", Value: "x", AffectedLayer: sketch.AffectedLayer{Name: "label"}},
				{Path: "B", Property: "textStyle", Value: "y", AffectedLayer: sketch.AffectedLayer{Name: "title"}},
			}},
		},
		{
			name:  "empty group",
			layer: &sketch.Layer{Type: "Group", Name: "g"},
		},
		{
			name:  "shape without image fill",
			layer: &sketch.Layer{Type: "Rectangle", Name: "bg", Style: &sketch.Style{Fills: []sketch.Fill{{Type: "Color"}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, clip, msgs, err := run(t, tt.layer)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, ErrNoData))
			assert.Empty(t, clip.writes)
			assert.Equal(t, []string{MessageNoData}, msgs.messages)
		})
	}
}

func TestRunMalformedPath(t *testing.T) {
	layer := &sketch.Layer{Type: "SymbolInstance", Name: "badge", Overrides: []sketch.Override{
		{Path: "A/B", Property: sketch.PropertyStringValue, Value: "x", AffectedLayer: sketch.AffectedLayer{Name: "label"}},
	}}

	res, clip, msgs, err := run(t, layer)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrMalformedPath))
	assert.Empty(t, clip.writes)
	assert.Equal(t, []string{MessageMalformedPath}, msgs.messages)
}

func TestRunClipboardFailure(t *testing.T) {
	msgs := &recorder{}
	_, err := Run(Options{
		Selection: fakeSelection{{Type: "Text", Name: "t", Text: "x"}},
		Clipboard: &fakeClipboard{err: errors.New("pasteboard unavailable")},
		Messenger: msgs,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pasteboard unavailable")
	assert.Equal(t, []string{MessageFailed}, msgs.messages)
}

func TestRunRequiresCollaborators(t *testing.T) {
	_, err := Run(Options{Clipboard: &fakeClipboard{}})
	assert.Error(t, err)
	_, err = Run(Options{Selection: fakeSelection{}})
	assert.Error(t, err)
}

func TestRunSymbolsAndImages(t *testing.T) {
	layer := &sketch.Layer{
		Type: "Group",
		Name: "list",
		Layers: []sketch.Layer{
			{Type: "Text", Name: "item", Text: "bottom"},
			{Type: "ShapePath", Name: "cover", Style: &sketch.Style{Fills: []sketch.Fill{{Type: sketch.FillPattern}}}},
			{Type: "SymbolInstance", Name: "author", Overrides: []sketch.Override{
				{Path: "A", Property: sketch.PropertySymbolID, Value: "s1", AffectedLayer: sketch.AffectedLayer{Name: "avatar"}},
				{Path: "A/B", Property: sketch.PropertyImage, AffectedLayer: sketch.AffectedLayer{Name: "photo"}},
				{Path: "C", Property: sketch.PropertyStringValue, Value: "Ada", AffectedLayer: sketch.AffectedLayer{Name: "name"}},
			}},
			{Type: "Text", Name: "item", Text: "top"},
		},
	}

	logger := &memLogger{}
	clip := &fakeClipboard{}
	res, err := Run(Options{
		Selection:        fakeSelection{layer},
		Clipboard:        clip,
		ImagePlaceholder: "images/placeholder.png",
		Logger:           logger,
	})
	require.NoError(t, err)

	want := `[{
		"item": "bottom",
		"author": {"avatar": {"photo": "images/placeholder.png"}, "name": "Ada"},
		"cover": "images/placeholder.png"
	}]`
	assert.JSONEq(t, want, res.JSON)
	assert.Equal(t, extractor.Stats{Objects: 3, Texts: 2, Images: 2}, res.Stats)
	assert.Equal(t, 1, logger.warns, "duplicate name warning")

	decoded, err := formatter.FromJSON([]byte(res.JSON))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.True(t, extractor.Equal(res.Data, decoded[0]))
	assert.Equal(t, []string{"item", "author", "cover"}, decoded[0].(*extractor.Object).Keys())
}

func TestRunWithDocument(t *testing.T) {
	doc, err := sketch.Decode([]byte(`{
		"selection": ["card"],
		"layers": [{"id": "card", "type": "Group", "name": "card", "layers": [
			{"id": "t", "type": "Text", "name": "title", "text": "Hi"}
		]}]
	}`), sketch.FormatJSON)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := Run(Options{Selection: doc, Clipboard: &host.WriterClipboard{W: &out}})
	require.NoError(t, err)
	assert.Equal(t, res.JSON+"\n", out.String())

	_, err = Run(Options{Selection: sketch.Selection{Document: doc, IDs: []string{"t"}}, Clipboard: &host.WriterClipboard{W: &out}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[\n  \"Hi\"\n]")
}

func TestKitLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewKitLogger(log.NewLogfmtLogger(&buf))

	logger.Infof("found %d layers", 3)
	logger.Warnf("careful")
	logger.Errorf("broken %s", "path")

	out := buf.String()
	assert.Contains(t, out, `level=info msg="found 3 layers"`)
	assert.Contains(t, out, `level=warn msg=careful`)
	assert.Contains(t, out, `level=error msg="broken path"`)
}
