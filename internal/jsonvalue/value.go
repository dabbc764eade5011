// Package jsonvalue provides a generic, order-preserving JSON value tree —
// the "Node" the spec treats as an external collaborator feeding the
// Applier. Object key order is preserved exactly as it appears in the
// source document, which the Applier's schema validation depends on
// (spec invariant 3: field order is significant).
//
// Parsing is built on tidwall/gjson rather than encoding/json: gjson's
// Result.ForEach walks object members in source order for free, where
// encoding/json's map-based unmarshaling would discard it.
package jsonvalue

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Kind identifies the shape of a Value. The grug JSON schema (spec §6.2)
// only ever uses objects, arrays, and strings — there are no numeric or
// boolean JSON values, since I32/F32 literal payloads are strings
// (spec invariant 4) and there is no boolean JSON field in the schema.
type Kind uint8

const (
	KindString Kind = iota
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single node of the generic JSON tree.
type Value struct {
	kind Kind

	str string

	objKeys   []string
	objValues map[string]*Value

	arr []*Value
}

// Kind returns the value's shape. A nil Value (as returned by a missing
// ObjectGet lookup) reports KindString with an empty payload.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindString
	}
	return v.kind
}

// StringValue returns the string payload, or "" if this is not a string.
func (v *Value) StringValue() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// ObjectKeys returns the object's member names in document order.
func (v *Value) ObjectKeys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.objKeys
}

// ObjectGet returns the member named key, or nil if absent or not an object.
func (v *Value) ObjectGet(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.objValues[key]
}

// ArrayElements returns the array's elements in document order.
func (v *Value) ArrayElements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Parse parses a JSON document into a Value tree, preserving object field
// order. It reports a descriptive error if data is not well-formed JSON.
func Parse(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	result := gjson.ParseBytes(data)
	return fromResult(result), nil
}

func fromResult(r gjson.Result) *Value {
	switch {
	case r.IsObject():
		v := &Value{kind: KindObject, objValues: make(map[string]*Value)}
		r.ForEach(func(key, val gjson.Result) bool {
			k := key.String()
			if _, exists := v.objValues[k]; !exists {
				v.objKeys = append(v.objKeys, k)
			}
			v.objValues[k] = fromResult(val)
			return true
		})
		return v
	case r.IsArray():
		v := &Value{kind: KindArray}
		r.ForEach(func(_, val gjson.Result) bool {
			v.arr = append(v.arr, fromResult(val))
			return true
		})
		return v
	default:
		return &Value{kind: KindString, str: r.String()}
	}
}

// NewString builds a string Value, used by tests that construct trees
// without going through Parse.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewObject builds an empty object Value that can be populated with Set.
func NewObject() *Value {
	return &Value{kind: KindObject, objValues: make(map[string]*Value)}
}

// Set inserts or replaces a member, appending to ObjectKeys on first insert.
func (v *Value) Set(key string, child *Value) {
	if _, exists := v.objValues[key]; !exists {
		v.objKeys = append(v.objKeys, key)
	}
	v.objValues[key] = child
}

// NewArray builds an array Value from elements.
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}
