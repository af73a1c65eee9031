package soap_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/soap"
)

func TestParseRequest(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}
	env, err := codec.Encode(contracts.NamespaceCustomers, "CreateCustomer", &contracts.CreateCustomerRequest{
		Name:  "Joao Souza",
		Email: "joao@example.com",
	}, "corr-42")
	require.NoError(t, err)

	req, err := soap.ParseRequest([]byte(env))
	require.NoError(t, err)

	assert.Equal(t, "CreateCustomer", req.Operation)
	assert.Equal(t, "dev", req.APIKey)
	assert.Equal(t, "corr-42", req.CorrelationID)

	var payload contracts.CreateCustomerRequest
	require.NoError(t, req.Decode(&payload))
	assert.Equal(t, "Joao Souza", payload.Name)
	assert.Equal(t, "joao@example.com", payload.Email)
}

func TestParseRequestListPayload(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}
	p1 := uuid.New()
	env, err := codec.Encode(contracts.NamespaceCatalog, "ReserveInventory", &contracts.ReserveInventoryRequest{
		Lines: []contracts.ReserveLine{{ProductID: p1, Quantity: 3}},
	}, "")
	require.NoError(t, err)

	req, err := soap.ParseRequest([]byte(env))
	require.NoError(t, err)
	assert.Equal(t, "ReserveInventory", req.Operation)
	assert.Empty(t, req.CorrelationID)

	var payload contracts.ReserveInventoryRequest
	require.NoError(t, req.Decode(&payload))
	require.Len(t, payload.Lines, 1)
	assert.Equal(t, p1, payload.Lines[0].ProductID)
	assert.Equal(t, 3, payload.Lines[0].Quantity)
}

// Clients that inline the request fields directly under the operation
// element, without the payload's own root, must still decode.
func TestParseRequestInlineFields(t *testing.T) {
	env := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Header>
    <AuthHeader xmlns="urn:soa-ecommerce:v1:auth"><ApiKey>dev</ApiKey></AuthHeader>
  </soap:Header>
  <soap:Body>
    <GetCustomerByEmail xmlns="urn:soa-ecommerce:v1:customers">
      <Email>maria@example.com</Email>
    </GetCustomerByEmail>
  </soap:Body>
</soap:Envelope>`

	req, err := soap.ParseRequest([]byte(env))
	require.NoError(t, err)
	assert.Equal(t, "GetCustomerByEmail", req.Operation)

	var payload contracts.GetCustomerByEmailRequest
	require.NoError(t, req.Decode(&payload))
	assert.Equal(t, "maria@example.com", payload.Email)
}

func TestParseRequestRejectsEmptyBody(t *testing.T) {
	env := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body></soap:Body>
</soap:Envelope>`

	_, err := soap.ParseRequest([]byte(env))
	assert.Error(t, err)
}

func TestParseRequestRejectsGarbage(t *testing.T) {
	_, err := soap.ParseRequest([]byte("this is not xml"))
	assert.Error(t, err)
}
