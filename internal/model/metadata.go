package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MetaKind tags the variant held by a MetaValue.
type MetaKind int

const (
	MetaNull MetaKind = iota
	MetaString
	MetaNumber
	MetaBool
	MetaMap
	MetaList
)

// MetaValue is one loosely-typed value of checklist metadata:
// string, number, bool, null, nested map or list.
type MetaValue struct {
	kind MetaKind
	str  string
	num  float64
	b    bool
	m    Metadata
	list []MetaValue
}

// Metadata is the free-form key-value bag attached to a checklist.
type Metadata map[string]MetaValue

func NullValue() MetaValue                { return MetaValue{kind: MetaNull} }
func StringValue(s string) MetaValue      { return MetaValue{kind: MetaString, str: s} }
func NumberValue(n float64) MetaValue     { return MetaValue{kind: MetaNumber, num: n} }
func BoolValue(b bool) MetaValue          { return MetaValue{kind: MetaBool, b: b} }
func MapValue(m Metadata) MetaValue       { return MetaValue{kind: MetaMap, m: m} }
func ListValue(vs ...MetaValue) MetaValue { return MetaValue{kind: MetaList, list: vs} }

func (v MetaValue) Kind() MetaKind { return v.kind }

func (v MetaValue) String() (string, bool) { return v.str, v.kind == MetaString }

func (v MetaValue) Number() (float64, bool) { return v.num, v.kind == MetaNumber }

func (v MetaValue) Bool() (bool, bool) { return v.b, v.kind == MetaBool }

func (v MetaValue) Map() (Metadata, bool) { return v.m, v.kind == MetaMap }

func (v MetaValue) List() ([]MetaValue, bool) { return v.list, v.kind == MetaList }

// Clone deep-copies nested maps and lists.
func (v MetaValue) Clone() MetaValue {
	out := v
	switch v.kind {
	case MetaMap:
		out.m = v.m.Clone()
	case MetaList:
		out.list = make([]MetaValue, len(v.list))
		for i, e := range v.list {
			out.list[i] = e.Clone()
		}
	}
	return out
}

// Clone deep-copies the metadata; nil stays nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MetaString:
		return json.Marshal(v.str)
	case MetaNumber:
		return json.Marshal(v.num)
	case MetaBool:
		return json.Marshal(v.b)
	case MetaMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(map[string]MetaValue(v.m))
	case MetaList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *MetaValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("metadata: empty value")
	}

	switch data[0] {
	case 'n':
		*v = NullValue()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		*v = StringValue(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		*v = BoolValue(b)
		return nil
	case '{':
		var m map[string]MetaValue
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		*v = MapValue(Metadata(m))
		return nil
	case '[':
		var list []MetaValue
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		*v = ListValue(list...)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
		*v = NumberValue(n)
		return nil
	}
}
