package source

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeJSON reads a single JSON document from r, keeping object keys in the
// order they appear.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, ErrEmptyDocument
	}
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	v, err := decodeJSONValue(dec, tok)
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	if extra, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, fmt.Errorf("decode json: %w", err)
		}
		return Value{}, fmt.Errorf("decode json: %w: %v", ErrTrailingData, extra)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			if err := skipJSONArray(dec); err != nil {
				return Value{}, err
			}
			return Other(), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	default:
		return Other(), nil
	}
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	obj := Map()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected object key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := decodeJSONValue(dec, valTok)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func skipJSONArray(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if _, err := decodeJSONValue(dec, tok); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}
