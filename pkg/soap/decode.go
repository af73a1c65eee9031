package soap

import (
	"encoding"
	"encoding/xml"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
)

// DecodeReply decodes a reply envelope for the given operation into out,
// which must be a non-nil pointer to a message struct.
//
// If the reply carries a ServiceFault, the fault is returned as the error.
// Otherwise the result node is located by local-name (the operation-specific
// response element when present, else the body), decoded directly, checked
// for coherence against the raw tree, and re-decoded tolerantly when the
// direct path cannot be trusted.
func DecodeReply(reply []byte, operation string, out any) error {
	root, err := ParseDocument(reply)
	if err != nil {
		return fmt.Errorf("soap: parse reply: %w", err)
	}

	if sf := root.Find("ServiceFault"); sf != nil {
		return faultFromNode(sf)
	}

	result := root.Find(operation + "Response")
	if result == nil {
		result = root.Find("Body")
	}
	if result == nil {
		result = root
	}

	return decodeValue(result, out)
}

// decodeValue runs the two-path decode of one result node into out.
func decodeValue(node *Node, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("soap: decode target must be a non-nil pointer")
	}

	directErr := xml.Unmarshal(node.XML(), out)
	if directErr == nil && coherent(node, rv.Elem()) {
		return nil
	}

	return tolerantStruct(node, rv.Elem())
}

// coherent is the sanity comparison between the direct decode's outcome and
// the raw node. Two signals mark the direct decode unreliable: a success
// flag that decoded false while the raw text says true, and a nested entity
// that decoded absent while the raw tree demonstrably carries its element.
func coherent(node *Node, v reflect.Value) bool {
	s, ok := schemaOf(v.Type())
	if !ok {
		return true
	}

	for _, f := range s.Fields {
		fv := v.FieldByName(f.Go)
		if !fv.IsValid() {
			continue
		}

		switch f.Kind {
		case KindScalar:
			if fv.Kind() == reflect.Bool && strings.EqualFold(f.Elem, "Success") && !fv.Bool() {
				if raw := node.FindText(f.Elem); strings.EqualFold(raw, "true") {
					return false
				}
			}
		case KindRecord:
			if fv.Kind() == reflect.Pointer && fv.IsNil() && node.Find(f.Elem) != nil {
				return false
			}
		}
	}
	return true
}

// tolerantStruct populates v field-by-field from the node tree, matching by
// element local-name and defaulting anything absent or unparseable.
func tolerantStruct(node *Node, v reflect.Value) error {
	s, ok := schemaOf(v.Type())
	if !ok {
		tolerantGeneric(node, v)
		return nil
	}

	for _, f := range s.Fields {
		fv := v.FieldByName(f.Go)
		if !fv.IsValid() || !fv.CanSet() {
			continue
		}

		switch f.Kind {
		case KindScalar:
			c := node.Find(f.Elem)
			if c == nil {
				fv.Set(reflect.Zero(fv.Type()))
				continue
			}
			setScalar(fv, strings.TrimSpace(c.Text))

		case KindRecord:
			c := node.Find(f.Elem)
			if fv.Kind() == reflect.Pointer {
				if c == nil {
					fv.Set(reflect.Zero(fv.Type()))
					continue
				}
				rec := reflect.New(fv.Type().Elem())
				if err := tolerantStruct(c, rec.Elem()); err != nil {
					return err
				}
				fv.Set(rec)
			} else {
				fv.Set(reflect.Zero(fv.Type()))
				if c != nil {
					if err := tolerantStruct(c, fv); err != nil {
						return err
					}
				}
			}

		case KindList:
			c := node.Find(f.Elem)
			slice := reflect.MakeSlice(fv.Type(), 0, 4)
			if c != nil {
				for _, item := range c.Children {
					if !strings.EqualFold(item.Name, f.Item) {
						continue
					}
					ev := reflect.New(fv.Type().Elem()).Elem()
					if err := tolerantStruct(item, ev); err != nil {
						return err
					}
					slice = reflect.Append(slice, ev)
				}
			}
			fv.Set(slice)

		case KindStringList:
			c := node.Find(f.Elem)
			slice := reflect.MakeSlice(fv.Type(), 0, 4)
			if c != nil {
				for _, item := range c.Children {
					if !strings.EqualFold(item.Name, f.Item) {
						continue
					}
					slice = reflect.Append(slice, reflect.ValueOf(strings.TrimSpace(item.Text)))
				}
			}
			fv.Set(slice)
		}
	}
	return nil
}

// tolerantGeneric recovers scalar fields of an undeclared type by matching
// element local-names against exported field names. Compatibility net only.
func tolerantGeneric(node *Node, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if !f.IsExported() || !fv.CanSet() {
			continue
		}
		c := node.Find(f.Name)
		if c == nil {
			continue
		}
		setScalar(fv, strings.TrimSpace(c.Text))
	}
}

// setScalar assigns text to a scalar field, falling back to the zero value
// when the text does not parse (empty string, bad uuid, bad decimal).
func setScalar(v reflect.Value, text string) {
	if um, ok := textUnmarshaler(v); ok {
		v.Set(reflect.Zero(v.Type()))
		if text != "" {
			if err := um.UnmarshalText([]byte(text)); err != nil {
				v.Set(reflect.Zero(v.Type()))
			}
		}
		return
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		v.SetBool(strings.EqualFold(text, "true") || text == "1")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			n = 0
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			n = 0
		}
		v.SetUint(n)
	}
}

func textUnmarshaler(v reflect.Value) (encoding.TextUnmarshaler, bool) {
	if !v.CanAddr() {
		return nil, false
	}
	um, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	return um, ok
}

// faultFromNode rebuilds a business fault from its wire element.
func faultFromNode(n *Node) *fault.Fault {
	f := &fault.Fault{
		Code:    n.FindText("Code"),
		Message: n.FindText("Message"),
		Details: n.FindText("Details"),
	}
	if f.Code == "" {
		f.Code = fault.CodeInvalidRequest
	}
	if ts, err := time.Parse(time.RFC3339, n.FindText("Timestamp")); err == nil {
		f.Timestamp = ts
	} else {
		f.Timestamp = time.Now().UTC()
	}
	return f
}
