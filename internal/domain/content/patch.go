package content

import (
	"bytes"
	"encoding/json"
	"strings"
)

// A patch value of the wrong JSON type is treated as absent.

var jsonNull = []byte("null")

// Text is an optional string in a patch. Set is true only when the request
// carried a JSON string for the field.
type Text struct {
	Value string
	Set   bool
}

func (t *Text) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	t.Value, t.Set = s, true
	return nil
}

// Some returns a Text that is set to v.
func Some(v string) Text { return Text{Value: v, Set: true} }

// replace overwrites dst with any provided value, including "".
func (t Text) replace(dst *string) {
	if t.Set {
		*dst = t.Value
	}
}

// replaceNonBlank overwrites dst with the trimmed value, but never blanks it.
func (t Text) replaceNonBlank(dst *string) {
	if !t.Set {
		return
	}
	if v := strings.TrimSpace(t.Value); v != "" {
		*dst = v
	}
}

// Trimmed returns the trimmed value, "" when unset.
func (t Text) Trimmed() string {
	if !t.Set {
		return ""
	}
	return strings.TrimSpace(t.Value)
}

// TextList is an optional list of strings. It is only Set for a JSON array
// whose elements are all strings.
type TextList struct {
	Values []string
	Set    bool
}

func (l *TextList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return nil
	}
	var v []string
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	if v == nil {
		v = []string{}
	}
	l.Values, l.Set = v, true
	return nil
}

func (l TextList) replace(dst *[]string) {
	if l.Set {
		*dst = cloneStrings(l.Values)
	}
}

// Object wraps a nested patch section (en / fr). Anything other than a JSON
// object leaves the section empty.
type Object[T any] struct {
	Value T
}

func (o *Object[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	o.Value = v
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
