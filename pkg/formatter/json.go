package formatter

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/kataras/sketch-data/pkg/extractor"
)

// ToJSON encodes a data value as the payload consumers of data sets
// expect: an array holding exactly one record, indented with two spaces.
// Keys keep the order in which the walk produced them and HTML
// characters are written as-is.
func ToJSON(v extractor.Value) (string, error) {
	if v == nil {
		return "", errors.New("encode data set: no value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode([]extractor.Value{v}); err != nil {
		return "", errors.Wrap(err, "encode data set")
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FromJSON decodes a payload produced by ToJSON, or any JSON array of
// strings and objects of strings, back into data values. Object keys
// keep their document order.
func FromJSON(data []byte) ([]extractor.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "decode data set")
	}
	if tok != json.Delim('[') {
		return nil, errors.Errorf("decode data set: expected array, got %v", tok)
	}

	var values []extractor.Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, errors.Wrap(err, "decode data set")
		}
		values = append(values, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "decode data set")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode data set: unexpected data after array")
	}

	return values, nil
}

func decodeValue(dec *json.Decoder) (extractor.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case string:
		return extractor.Leaf(tok), nil
	case json.Delim:
		if tok != '{' {
			return nil, errors.Errorf("unexpected %v", tok)
		}
		obj := extractor.NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.Errorf("unexpected object key %v", keyTok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key)
			}
			obj.Set(key, v)
		}
		// closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, errors.Errorf("unsupported value %v", tok)
	}
}
