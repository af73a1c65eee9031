package soap

import (
	"reflect"
	"sync"
)

// Kind classifies a schema field.
type Kind int

const (
	// KindScalar is a single text element (string, int, bool, uuid, money,
	// timestamp).
	KindScalar Kind = iota
	// KindRecord is a nested record serialized as one wrapper element
	// containing the record's own fields.
	KindRecord
	// KindList is an ordered list of records: a wrapper element containing
	// one item element per entry.
	KindList
	// KindStringList is an ordered list of plain strings: a wrapper element
	// containing one item element per entry.
	KindStringList
)

// Field declares one serialized field of a message type.
type Field struct {
	// Elem is the XML element local-name.
	Elem string
	// Go is the Go struct field name.
	Go string
	// Kind selects the serialization shape.
	Kind Kind
	// Item is the per-entry element name for list kinds.
	Item string
}

// Schema is the compile-time field table for one message type. Fields are
// emitted in declaration order.
type Schema struct {
	// Root is the element name wrapping the message payload.
	Root string
	// Fields is the ordered field list.
	Fields []Field
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*Schema{}
)

// Register declares the schema for the message type of prototype. It is
// meant to be called from init; registering the same type twice replaces
// the earlier table.
func Register(prototype any, s *Schema) {
	t := structType(reflect.TypeOf(prototype))
	if t == nil {
		panic("soap: Register requires a struct or pointer-to-struct prototype")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = s
}

// schemaOf returns the registered schema for t, if any.
func schemaOf(t reflect.Type) (*Schema, bool) {
	st := structType(t)
	if st == nil {
		return nil, false
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[st]
	return s, ok
}

// structType normalizes t to its underlying struct type, unwrapping
// pointers. Returns nil when t is not a struct.
func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
