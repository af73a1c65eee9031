package soap

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

	// NamespacePrefix is the URN prefix shared by every service namespace.
	NamespacePrefix = "urn:soa-ecommerce:v1:"

	authNS    = NamespacePrefix + "auth"
	headersNS = NamespacePrefix + "headers"
	faultsNS  = NamespacePrefix + "faults"
)

// NamespaceURI expands a short service namespace ("catalog", "customers",
// "sales", "process") to its full URN.
func NamespaceURI(ns string) string {
	return NamespacePrefix + ns
}

// Codec encodes outbound requests into wire envelopes. The API key rides in
// the envelope header of every call.
type Codec struct {
	APIKey string
}

// Encode builds the request envelope for one outbound call: header with the
// API key and optional correlation id, body wrapping the operation element
// around the serialized request payload.
func (c *Codec) Encode(namespace, operation string, req any, correlationID string) (string, error) {
	payload, err := marshalMessage(req)
	if err != nil {
		return "", fmt.Errorf("soap: encode %s: %w", operation, err)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<soap:Envelope xmlns:soap="` + envelopeNS + `">` + "\n")
	b.WriteString("  <soap:Header>\n")
	b.WriteString(`    <AuthHeader xmlns="` + authNS + `"><ApiKey>` + escape(c.APIKey) + `</ApiKey></AuthHeader>` + "\n")
	if correlationID != "" {
		b.WriteString(`    <CorrelationId xmlns="` + headersNS + `">` + escape(correlationID) + `</CorrelationId>` + "\n")
	}
	b.WriteString("  </soap:Header>\n")
	b.WriteString("  <soap:Body>\n")
	b.WriteString(`    <` + operation + ` xmlns="` + NamespaceURI(namespace) + `">`)
	b.WriteString(payload)
	b.WriteString(`</` + operation + ">\n")
	b.WriteString("  </soap:Body>\n")
	b.WriteString("</soap:Envelope>")

	return b.String(), nil
}

// marshalMessage serializes a message including its root element.
func marshalMessage(msg any) (string, error) {
	v := reflect.ValueOf(msg)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", fmt.Errorf("nil message")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("message must be a struct, got %s", v.Kind())
	}

	var b strings.Builder
	s, ok := schemaOf(v.Type())
	if !ok {
		// Undeclared type: best-effort compatibility net, not the primary
		// mechanism.
		marshalGeneric(&b, v)
		return b.String(), nil
	}

	b.WriteString("<" + s.Root + ">")
	if err := marshalFields(&b, v, s); err != nil {
		return "", err
	}
	b.WriteString("</" + s.Root + ">")
	return b.String(), nil
}

// marshalFields emits the declared fields of v, in declaration order,
// without a surrounding root element.
func marshalFields(b *strings.Builder, v reflect.Value, s *Schema) error {
	for _, f := range s.Fields {
		fv := v.FieldByName(f.Go)
		if !fv.IsValid() {
			return fmt.Errorf("schema for %s names unknown field %s", v.Type(), f.Go)
		}

		switch f.Kind {
		case KindScalar:
			text, err := scalarText(fv)
			if err != nil {
				return fmt.Errorf("field %s: %w", f.Go, err)
			}
			b.WriteString("<" + f.Elem + ">" + escape(text) + "</" + f.Elem + ">")

		case KindRecord:
			rv := fv
			if rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					continue
				}
				rv = rv.Elem()
			}
			rs, ok := schemaOf(rv.Type())
			if !ok {
				return fmt.Errorf("field %s: no schema for record type %s", f.Go, rv.Type())
			}
			b.WriteString("<" + f.Elem + ">")
			if err := marshalFields(b, rv, rs); err != nil {
				return err
			}
			b.WriteString("</" + f.Elem + ">")

		case KindList:
			b.WriteString("<" + f.Elem + ">")
			for i := 0; i < fv.Len(); i++ {
				iv := fv.Index(i)
				if iv.Kind() == reflect.Pointer {
					if iv.IsNil() {
						continue
					}
					iv = iv.Elem()
				}
				is, ok := schemaOf(iv.Type())
				if !ok {
					return fmt.Errorf("field %s: no schema for item type %s", f.Go, iv.Type())
				}
				b.WriteString("<" + f.Item + ">")
				if err := marshalFields(b, iv, is); err != nil {
					return err
				}
				b.WriteString("</" + f.Item + ">")
			}
			b.WriteString("</" + f.Elem + ">")

		case KindStringList:
			b.WriteString("<" + f.Elem + ">")
			for i := 0; i < fv.Len(); i++ {
				b.WriteString("<" + f.Item + ">" + escape(fv.Index(i).String()) + "</" + f.Item + ">")
			}
			b.WriteString("</" + f.Elem + ">")
		}
	}
	return nil
}

// marshalGeneric emits one element per exported field with a stringified
// value. Reserved for types without a declared schema.
func marshalGeneric(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	b.WriteString("<" + t.Name() + ">")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		b.WriteString("<" + f.Name + ">" + escape(fmt.Sprintf("%v", v.Field(i).Interface())) + "</" + f.Name + ">")
	}
	b.WriteString("</" + t.Name() + ">")
}

// scalarText renders one scalar field value as element text.
func scalarText(v reflect.Value) (string, error) {
	if m, ok := textMarshaler(v); ok {
		data, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return "", fmt.Errorf("unsupported scalar kind %s", v.Kind())
	}
}

func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		return m, true
	}
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
			return m, true
		}
	}
	return nil, false
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
