// Package value defines V, the immutable parsed-document node, and Parse,
// which builds a V tree from raw JSON while preserving object key order by
// scanning with github.com/buger/jsonparser (a callback-based tokenizer
// that never builds an intermediate map, so it never loses the source's
// member order) and collecting an object's members into a
// github.com/wk8/go-ordered-map/v2 as it goes.
package value

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	omap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the shape of a V's payload.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBool
	KindNull
	KindString
	KindArray
	KindObject
)

// String names a Kind the way internal/theme.ForKind expects it spelled.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// V is an immutable node in the parsed document, augmented with its
// position in a particular navigation: Key, Index, Parent, and Depth are
// all relative to where the node sits in its parent's children.
type V struct {
	Kind Kind

	Str   string
	Int   int64
	Float float64
	Bool  bool

	// Object holds ordered key -> *V members when Kind == KindObject.
	Object *omap.OrderedMap[string, *V]
	// Array holds elements in index order when Kind == KindArray.
	Array []*V

	Key    string
	Index  int
	Parent *V
	Depth  int
}

// NumChildren reports how many direct children this value has (0 for
// scalars).
func (v *V) NumChildren() int {
	switch v.Kind {
	case KindObject:
		return v.Object.Len()
	case KindArray:
		return len(v.Array)
	default:
		return 0
	}
}

// Child returns the i-th child in document order, or nil if i is out of
// range or v is a scalar.
func (v *V) Child(i int) *V {
	switch v.Kind {
	case KindObject:
		if i < 0 || i >= v.Object.Len() {
			return nil
		}
		pair := v.Object.Oldest()
		for n := 0; pair != nil && n < i; n, pair = n+1, pair.Next() {
		}
		if pair == nil {
			return nil
		}
		return pair.Value
	case KindArray:
		if i < 0 || i >= len(v.Array) {
			return nil
		}
		return v.Array[i]
	default:
		return nil
	}
}

// PathTo returns the sequence of child indices from the root down to v,
// used by isBefore's lexicographic comparison and by the document search.
func (v *V) PathTo() []int {
	var path []int
	for cur := v; cur != nil && cur.Parent != nil; cur = cur.Parent {
		path = append([]int{cur.Index}, path...)
	}
	return path
}

// PathString renders PathTo as a jq-like accessor, e.g. ".b[1]".
func (v *V) PathString() string {
	var out string
	for cur := v; cur != nil && cur.Parent != nil; cur = cur.Parent {
		if cur.Parent.Kind == KindArray {
			out = fmt.Sprintf("[%d]%s", cur.Index, out)
		} else {
			out = fmt.Sprintf(".%s%s", cur.Key, out)
		}
	}
	if out == "" {
		return "."
	}
	return out
}

// Parse builds a V tree from raw JSON, preserving object member order.
func Parse(data []byte) (*V, error) {
	return parseValue(data, jsonparser.NotExist, "", 0, nil)
}

func parseValue(data []byte, dataType jsonparser.ValueType, key string, index int, parent *V) (*V, error) {
	if dataType == jsonparser.NotExist {
		var err error
		data, dataType, _, err = jsonparser.Get(trimLeadingSpace(data))
		if err != nil {
			return nil, err
		}
	}

	v := &V{Key: key, Index: index, Parent: parent}
	if parent != nil {
		v.Depth = parent.Depth + 1
	}

	switch dataType {
	case jsonparser.Null:
		v.Kind = KindNull
	case jsonparser.Boolean:
		v.Kind = KindBool
		v.Bool = string(data) == "true"
	case jsonparser.Number:
		if isIntegerLiteral(data) {
			n, err := strconv.ParseInt(string(data), 10, 64)
			if err == nil {
				v.Kind = KindInteger
				v.Int = n
				break
			}
		}
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return nil, err
		}
		v.Kind = KindFloat
		v.Float = f
	case jsonparser.String:
		v.Kind = KindString
		s, err := jsonparser.ParseString(data)
		if err != nil {
			s = string(data)
		}
		v.Str = s
	case jsonparser.Array:
		v.Kind = KindArray
		idx := 0
		var perErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
			if perErr != nil {
				return
			}
			child, err := parseValue(value, dt, strconv.Itoa(idx), idx, v)
			if err != nil {
				perErr = err
				return
			}
			v.Array = append(v.Array, child)
			idx++
		})
		if err != nil {
			return nil, err
		}
		if perErr != nil {
			return nil, perErr
		}
	case jsonparser.Object:
		v.Kind = KindObject
		v.Object = omap.New[string, *V]()
		idx := 0
		var perErr error
		err := jsonparser.ObjectEach(data, func(k, value []byte, dt jsonparser.ValueType, _ int) error {
			if perErr != nil {
				return nil
			}
			key := string(k)
			child, err := parseValue(value, dt, key, idx, v)
			if err != nil {
				perErr = err
				return err
			}
			// A duplicate key would otherwise overwrite its earlier sibling
			// in the map; child.Key still carries the real JSON key for
			// display, so give the map a disambiguated key purely to keep
			// both entries addressable by position.
			mapKey := key
			if _, exists := v.Object.Get(mapKey); exists {
				mapKey = fmt.Sprintf("%s\x00%d", key, idx)
			}
			v.Object.Set(mapKey, child)
			idx++
			return nil
		})
		if err != nil {
			return nil, err
		}
		if perErr != nil {
			return nil, perErr
		}
	default:
		return nil, fmt.Errorf("value: unsupported JSON value type %v", dataType)
	}

	return v, nil
}

func isIntegerLiteral(data []byte) bool {
	for _, b := range data {
		if b == '.' || b == 'e' || b == 'E' {
			return false
		}
	}
	return true
}

func trimLeadingSpace(data []byte) []byte {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return data[i:]
}
