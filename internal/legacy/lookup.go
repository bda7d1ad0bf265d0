package legacy

import (
	"strings"

	"github.com/tidwall/gjson"
)

// truthy mirrors how older payloads treated missing values: null, false,
// zero and the empty string all mean "not set".
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	}
	return v.Exists()
}

// str returns the first set value among keys, as a string.
func str(obj gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := obj.Get(k); truthy(v) {
			return v.String()
		}
	}
	return ""
}

// strOr is str with a fallback.
func strOr(obj gjson.Result, def string, keys ...string) string {
	if s := str(obj, keys...); s != "" {
		return s
	}
	return def
}

// num returns the first set numeric value among keys. Strings such as
// "$2.50" are accepted.
func num(obj gjson.Result, keys ...string) float64 {
	for _, k := range keys {
		v := obj.Get(k)
		switch v.Type {
		case gjson.Number:
			if v.Num != 0 {
				return v.Num
			}
		case gjson.String:
			if f, ok := parseAmount(v.Str); ok && f != 0 {
				return f
			}
		}
	}
	return 0
}

// array returns the first key holding a JSON array.
func array(obj gjson.Result, keys ...string) ([]gjson.Result, bool) {
	for _, k := range keys {
		if v := obj.Get(k); v.IsArray() {
			return v.Array(), true
		}
	}
	return nil, false
}

// stringList returns the non-empty string elements of the first array among keys.
// Object elements contribute their text or keyword field.
func stringList(obj gjson.Result, keys ...string) []string {
	items, _ := array(obj, keys...)
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if item.IsObject() {
			s = str(item, "text", "keyword")
		} else if truthy(item) {
			s = item.String()
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// joinedValues reads snippet values, which may be an array or a string.
func joinedValues(obj gjson.Result, keys ...string) string {
	for _, k := range keys {
		v := obj.Get(k)
		if v.IsArray() {
			parts := make([]string, 0, len(v.Array()))
			for _, p := range v.Array() {
				parts = append(parts, p.String())
			}
			return strings.Join(parts, "; ")
		}
		if truthy(v) {
			return v.String()
		}
	}
	return ""
}
