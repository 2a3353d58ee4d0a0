// Package snap holds the immutable JSON-like value tree the engine
// reconciles against live documents. Values are built once and never
// mutated; rebuilds copy only the containers on the changed path so
// untouched branches keep reference identity.
package snap

import (
	"fmt"
	"sort"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Value is one immutable snapshot node. A nil *Value is equivalent to
// Null(). Containers hold child pointers; sharing children between
// snapshots is the intended way to express "unchanged".
type Value struct {
	Type   Type
	Bool   bool
	Number float64
	String string
	Values []*Value          // ArrayType
	Map    map[string]*Value // ObjectType
}

var null = &Value{Type: NullType}

func Null() *Value { return null }

func FromBool(b bool) *Value { return &Value{Type: BoolType, Bool: b} }

func FromNumber(f float64) *Value { return &Value{Type: NumberType, Number: f} }

func FromInt(i int) *Value { return FromNumber(float64(i)) }

func FromString(s string) *Value { return &Value{Type: StringType, String: s} }

func FromSlice(vs []*Value) *Value { return &Value{Type: ArrayType, Values: vs} }

func FromMap(m map[string]*Value) *Value { return &Value{Type: ObjectType, Map: m} }

// FromAny converts a decoded JSON/YAML value into a snapshot.
func FromAny(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case string:
		return FromString(x), nil
	case []any:
		vs := make([]*Value, len(x))
		for i, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = c
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Value, len(x))
		for k, e := range x {
			c, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = c
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot snapshot value of type %T", v)
	}
}

// ToAny converts a snapshot back to the plain decoded-JSON form.
func (v *Value) ToAny() any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, c := range v.Values {
			res[i] = c.ToAny()
		}
		return res
	case ObjectType:
		m := make(map[string]any, len(v.Map))
		for k, c := range v.Map {
			m[k] = c.ToAny()
		}
		return m
	default:
		panic("type")
	}
}

// Keys returns the object keys in sorted order, nil for non-objects.
func (v *Value) Keys() []string {
	if v == nil || v.Type != ObjectType {
		return nil
	}
	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the child at key, nil when absent or not an object.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Type != ObjectType {
		return nil
	}
	return v.Map[key]
}

// Equal reports deep equality. nil compares equal to Null().
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	at, bt := NullType, NullType
	if a != nil {
		at = a.Type
	}
	if b != nil {
		bt = b.Type
	}
	if at != bt {
		return false
	}
	switch at {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for k, av := range a.Map {
			bv, ok := b.Map[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
