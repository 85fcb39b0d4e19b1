package mirror

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// dictionary is a flat i18n file that keeps the key order it was read with,
// so rewriting it only changes the lines that were updated.
type dictionary struct {
	keys   []string
	values map[string]json.RawMessage
}

func newDictionary() *dictionary {
	return &dictionary{values: map[string]json.RawMessage{}}
}

func parseDictionary(raw []byte) (*dictionary, error) {
	d := newDictionary()
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("not a JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		if _, seen := d.values[key]; !seen {
			d.keys = append(d.keys, key)
		}
		d.values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

// set replaces key in place, or appends it when new.
func (d *dictionary) set(key, value string) error {
	v, err := marshalString(value)
	if err != nil {
		return err
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
	return nil
}

func (d *dictionary) remove(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// encode writes the dictionary with 2-space indentation and a trailing newline.
func (d *dictionary) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		kb, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteString(": ")
		if err := json.Indent(&buf, d.values[k], "  ", "  "); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
	}
	if len(d.keys) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// marshalString encodes s without HTML escaping; the frontend reads these
// files as plain JSON.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
