// Package clients holds the typed service proxies used by the composition
// layer. Each proxy serializes the request envelope, POSTs it through the
// resilient HTTP layer and decodes the reply, surfacing business faults as
// *fault.Fault errors and transport problems as plain errors.
package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/soap"
)

// Doer is the transport under a proxy, satisfied by
// httpclient.CircuitBreakerClient.
type Doer interface {
	Post(ctx context.Context, url, contentType string, body []byte, headers http.Header) (*http.Response, error)
}

const maxReplySize = 1 << 20

type base struct {
	doer        Doer
	codec       *soap.Codec
	endpoint    string
	namespace   string
	serviceName string
}

func newBase(doer Doer, apiKey, endpoint, namespace, serviceName string) base {
	return base{
		doer:        doer,
		codec:       &soap.Codec{APIKey: apiKey},
		endpoint:    endpoint,
		namespace:   namespace,
		serviceName: serviceName,
	}
}

// call runs one operation end to end. The correlation id is taken from ctx
// and rides in the envelope header.
func (b *base) call(ctx context.Context, operation string, req, out any) error {
	env, err := b.codec.Encode(b.namespace, operation, req, logger.CorrelationIDFromContext(ctx))
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("SOAPAction", fmt.Sprintf("%q", soap.NamespaceURI(b.namespace)+"/I"+b.serviceName+"Service/"+operation))

	resp, err := b.doer.Post(ctx, b.endpoint, "text/xml; charset=utf-8", []byte(env), headers)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return fmt.Errorf("%s.%s: %w", b.serviceName, operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return fmt.Errorf("%s.%s: read reply: %w", b.serviceName, operation, err)
	}

	return soap.DecodeReply(reply, operation, out)
}
