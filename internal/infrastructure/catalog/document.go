// Package catalog implements the document side of the editor: the
// untagged leaf-or-object JSON schema, the lossless flatten/unflatten
// transform, and the file repository behind the output.CatalogRepository
// port.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lingotree/internal/domain"
)

// Value is one node of a catalog document: either a string leaf or a
// nested object. This is the explicit tagged variant behind the
// "every value is a string or a nested object" schema; decoding tries
// string first, then object, and fails otherwise — an array, number,
// boolean or null is a load failure, never a silent skip.
type Value struct {
	Str    string
	Object map[string]Value
	IsStr  bool
}

// Document is the root object of a catalog file.
type Document map[string]Value

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Str = s
		v.IsStr = true
		return nil
	}
	// A bare null unmarshals into a map as a no-op, so it has to be
	// rejected explicitly.
	if string(bytes.TrimSpace(data)) != "null" {
		var obj map[string]Value
		if err := json.Unmarshal(data, &obj); err == nil {
			v.Object = obj
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedValue, truncate(data))
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsStr {
		return json.Marshal(v.Str)
	}
	return json.Marshal(v.Object)
}

func truncate(data []byte) []byte {
	const max = 40
	if len(data) > max {
		return append(data[:max:max], "..."...)
	}
	return data
}
