// Package strictjson decodes JSON with case-sensitive key matching.
//
// encoding/json matches object keys to fields case-insensitively, so a
// document written as {"quote": ...} fills a field tagged "Quote". The shared
// data formats read here are case-sensitive: a key that matches a field only
// when case is ignored is an unknown key and is skipped. A required field
// spelled in the wrong case therefore decodes as absent.
package strictjson

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Unmarshal decodes data into v like json.Unmarshal, except that object keys
// must match the json names of the target's fields exactly.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return err
	}

	if !prune(raw, reflect.TypeOf(v)) {
		return nil
	}

	exact, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	reflect.ValueOf(v).Elem().SetZero()

	return json.Unmarshal(exact, v)
}

// prune removes, in place, every object key that folds to a field name of t
// without equaling it. It reports whether anything was removed.
func prune(raw any, t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	changed := false

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return false
		}

		fields := jsonFields(t)

		for key, value := range obj {
			if ft, ok := fields[key]; ok {
				changed = prune(value, ft) || changed
				continue
			}

			for name := range fields {
				if strings.EqualFold(name, key) {
					delete(obj, key)
					changed = true

					break
				}
			}
		}

	case reflect.Slice, reflect.Array:
		items, ok := raw.([]any)
		if !ok {
			return false
		}

		for _, item := range items {
			changed = prune(item, t.Elem()) || changed
		}

	default:
	}

	return changed
}

// jsonFields maps the JSON name of each exported field to its type.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = f.Name
		}

		fields[name] = f.Type
	}

	return fields
}
