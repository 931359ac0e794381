package export

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Write serialises a slice of records to CSV. The header row is derived from
// the first record's field names (json tag names, declaration order); every
// cell, headers included, is wrapped in double quotes with internal quotes
// doubled. Records are separated by newlines with no trailing newline. Nil
// values serialise as the empty string. An empty collection writes nothing.
func Write(w io.Writer, rows any) error {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("export: expected a slice, got %T", rows)
	}
	if v.Len() == 0 {
		return nil
	}

	fields := csvFields(baseType(v.Index(0)))
	if len(fields) == 0 {
		return fmt.Errorf("export: %T has no exportable fields", rows)
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(f.name))
	}
	for i := 0; i < v.Len(); i++ {
		b.WriteByte('\n')
		rec := reflect.Indirect(v.Index(i))
		for j, f := range fields {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(cell(rec.Field(f.index))))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Marshal is Write into a string.
func Marshal(rows any) (string, error) {
	var b strings.Builder
	if err := Write(&b, rows); err != nil {
		return "", err
	}
	return b.String(), nil
}

type field struct {
	name  string
	index int
}

func baseType(v reflect.Value) reflect.Type {
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func csvFields(t reflect.Type) []field {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out = append(out, field{name: name, index: i})
	}
	return out
}

func cell(v reflect.Value) string {
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v.Interface())
	default:
		// Composite fields (item snapshots, image lists) flatten to JSON.
		raw, err := json.Marshal(v.Interface())
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
