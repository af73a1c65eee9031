package soap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
)

// Request is one parsed inbound envelope on the receiving side.
type Request struct {
	// Operation is the local-name of the body's operation element.
	Operation string
	// APIKey is the key carried in the envelope's auth header.
	APIKey string
	// CorrelationID is the optional correlation header, "" when absent.
	CorrelationID string

	payload *Node
}

// ParseRequest parses an inbound request envelope: auth and correlation
// headers plus the operation element wrapping the payload.
func ParseRequest(body []byte) (*Request, error) {
	root, err := ParseDocument(body)
	if err != nil {
		return nil, fmt.Errorf("soap: parse request: %w", err)
	}

	req := &Request{
		APIKey:        root.FindText("ApiKey"),
		CorrelationID: root.FindText("CorrelationId"),
	}

	b := root.Find("Body")
	if b == nil {
		return nil, errors.New("soap: request envelope has no body")
	}
	if len(b.Children) == 0 {
		return nil, errors.New("soap: request body is empty")
	}

	req.Operation = b.Children[0].Name
	req.payload = b.Children[0]
	return req, nil
}

// Decode decodes the request payload into out using the same two-path
// strategy as reply decoding. The payload's own root element (one level
// below the operation wrapper) is preferred when present.
func (r *Request) Decode(out any) error {
	node := r.payload
	if s, ok := schemaOf(reflect.TypeOf(out)); ok {
		if c := node.Find(s.Root); c != nil {
			node = c
		}
	}
	return decodeValue(node, out)
}

// EncodeResponse builds the reply envelope for one operation: the
// operation-response element, namespaced per service, with the response
// fields inline.
func EncodeResponse(namespace, operation string, resp any) (string, error) {
	payload, err := marshalMessage(resp)
	if err != nil {
		return "", fmt.Errorf("soap: encode %s response: %w", operation, err)
	}

	// The message root and the operation wrapper carry the same name by
	// convention; strip the root so the fields sit directly inside the
	// namespaced wrapper.
	wrapper := operation + "Response"
	inner := payload
	if strings.HasPrefix(payload, "<"+wrapper+">") && strings.HasSuffix(payload, "</"+wrapper+">") {
		inner = payload[len(wrapper)+2 : len(payload)-len(wrapper)-3]
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<soap:Envelope xmlns:soap="` + envelopeNS + `">` + "\n")
	b.WriteString("  <soap:Body>\n")
	b.WriteString(`    <` + wrapper + ` xmlns="` + NamespaceURI(namespace) + `">`)
	b.WriteString(inner)
	b.WriteString(`</` + wrapper + ">\n")
	b.WriteString("  </soap:Body>\n")
	b.WriteString("</soap:Envelope>")

	return b.String(), nil
}

// EncodeFault builds the reply envelope carrying a business fault.
func EncodeFault(f *fault.Fault) string {
	ts := f.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	b.WriteString(`<soap:Envelope xmlns:soap="` + envelopeNS + `">` + "\n")
	b.WriteString("  <soap:Body>\n")
	b.WriteString("    <soap:Fault>\n")
	b.WriteString("      <faultcode>soap:Client</faultcode>\n")
	b.WriteString("      <faultstring>" + escape(f.Message) + "</faultstring>\n")
	b.WriteString("      <detail>\n")
	b.WriteString(`        <ServiceFault xmlns="` + faultsNS + `">`)
	b.WriteString("<Code>" + escape(f.Code) + "</Code>")
	b.WriteString("<Message>" + escape(f.Message) + "</Message>")
	b.WriteString("<Details>" + escape(f.Details) + "</Details>")
	b.WriteString("<Timestamp>" + ts.Format(time.RFC3339) + "</Timestamp>")
	b.WriteString("</ServiceFault>\n")
	b.WriteString("      </detail>\n")
	b.WriteString("    </soap:Fault>\n")
	b.WriteString("  </soap:Body>\n")
	b.WriteString("</soap:Envelope>")

	return b.String()
}
