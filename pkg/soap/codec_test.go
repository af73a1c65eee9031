package soap_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/soap"
)

func TestEncodeRequestEnvelope(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}

	env, err := codec.Encode(contracts.NamespaceCustomers, "CreateCustomer", &contracts.CreateCustomerRequest{
		Name:  "Maria Silva",
		Email: "maria@example.com",
	}, "corr-123")
	require.NoError(t, err)

	assert.Contains(t, env, `xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`)
	assert.Contains(t, env, `<AuthHeader xmlns="urn:soa-ecommerce:v1:auth"><ApiKey>dev</ApiKey></AuthHeader>`)
	assert.Contains(t, env, `<CorrelationId xmlns="urn:soa-ecommerce:v1:headers">corr-123</CorrelationId>`)
	assert.Contains(t, env, `<CreateCustomer xmlns="urn:soa-ecommerce:v1:customers">`)
	assert.Contains(t, env, `<CreateCustomerRequest><Name>Maria Silva</Name><Email>maria@example.com</Email></CreateCustomerRequest>`)
}

func TestEncodeOmitsCorrelationWhenEmpty(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}

	env, err := codec.Encode(contracts.NamespaceSales, "GetOrder", &contracts.GetOrderRequest{OrderID: uuid.New()}, "")
	require.NoError(t, err)

	assert.NotContains(t, env, "CorrelationId")
}

func TestEncodeEscapesText(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}

	env, err := codec.Encode(contracts.NamespaceCustomers, "CreateCustomer", &contracts.CreateCustomerRequest{
		Name:  `Ata & Filhos <Ltda>`,
		Email: "ata@example.com",
	}, "")
	require.NoError(t, err)

	assert.Contains(t, env, "Ata &amp; Filhos &lt;Ltda&gt;")
}

func TestEncodeListPayload(t *testing.T) {
	codec := &soap.Codec{APIKey: "dev"}
	p1 := uuid.New()
	p2 := uuid.New()

	env, err := codec.Encode(contracts.NamespaceCatalog, "ReserveInventory", &contracts.ReserveInventoryRequest{
		Lines: []contracts.ReserveLine{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 1},
		},
	}, "")
	require.NoError(t, err)

	assert.Contains(t, env, "<Lines><Line><ProductId>"+p1.String()+"</ProductId><Quantity>2</Quantity></Line>")
	assert.Contains(t, env, "<Line><ProductId>"+p2.String()+"</ProductId><Quantity>1</Quantity></Line></Lines>")
}

func TestDecodeReplyDirectPath(t *testing.T) {
	id := uuid.New()
	reply := `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <GetProductResponse xmlns="urn:soa-ecommerce:v1:catalog">
      <Product>
        <Id>` + id.String() + `</Id>
        <Name>Teclado Mecanico</Name>
        <Price>349.90</Price>
        <Stock>12</Stock>
        <IsActive>true</IsActive>
      </Product>
      <Success>true</Success>
    </GetProductResponse>
  </s:Body>
</s:Envelope>`

	var out contracts.GetProductResponse
	require.NoError(t, soap.DecodeReply([]byte(reply), "GetProduct", &out))

	assert.True(t, out.Success)
	require.NotNil(t, out.Product)
	assert.Equal(t, id, out.Product.ID)
	assert.Equal(t, "Teclado Mecanico", out.Product.Name)
	assert.Equal(t, contracts.Money(34990), out.Product.Price)
	assert.Equal(t, 12, out.Product.Stock)
	assert.True(t, out.Product.IsActive)
}

// Some serializer stacks wrap the payload root inside the operation response
// element instead of inlining the fields. The direct decode then comes back
// empty while the raw tree plainly carries the data, and the tolerant walk
// recovers it.
func TestDecodeReplyRecoversNestedPayload(t *testing.T) {
	orderID := uuid.New()
	custID := uuid.New()
	reply := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <PlaceOrderResponse xmlns="urn:soa-ecommerce:v1:process">
      <PlaceOrderResponse>
        <Order>
          <Id>` + orderID.String() + `</Id>
          <CustomerId>` + custID.String() + `</CustomerId>
          <Status>Confirmed</Status>
          <Total>99.80</Total>
          <CreatedAt>2026-08-01T10:30:00Z</CreatedAt>
          <Items>
            <Item>
              <ProductId>` + custID.String() + `</ProductId>
              <Quantity>2</Quantity>
              <UnitPrice>49.90</UnitPrice>
              <Subtotal>99.80</Subtotal>
            </Item>
          </Items>
        </Order>
        <Success>true</Success>
        <Message>Pedido confirmado</Message>
      </PlaceOrderResponse>
    </PlaceOrderResponse>
  </soap:Body>
</soap:Envelope>`

	var out contracts.PlaceOrderResponse
	require.NoError(t, soap.DecodeReply([]byte(reply), "PlaceOrder", &out))

	assert.True(t, out.Success)
	assert.Equal(t, "Pedido confirmado", out.Message)
	require.NotNil(t, out.Order)
	assert.Equal(t, orderID, out.Order.ID)
	assert.Equal(t, contracts.OrderConfirmed, out.Order.Status)
	assert.Equal(t, contracts.Money(9980), out.Order.Total)
	require.Len(t, out.Order.Items, 1)
	assert.Equal(t, 2, out.Order.Items[0].Quantity)
	assert.Equal(t, contracts.Money(4990), out.Order.Items[0].UnitPrice)
}

func TestDecodeReplyDefaultsUnparseableScalars(t *testing.T) {
	reply := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetProductResponse xmlns="urn:soa-ecommerce:v1:catalog">
      <Product>
        <Id>not-a-uuid</Id>
        <Name>Mouse</Name>
        <Price>abc</Price>
        <Stock></Stock>
        <IsActive>true</IsActive>
      </Product>
      <Success>true</Success>
    </GetProductResponse>
  </soap:Body>
</soap:Envelope>`

	var out contracts.GetProductResponse
	require.NoError(t, soap.DecodeReply([]byte(reply), "GetProduct", &out))

	assert.True(t, out.Success)
	require.NotNil(t, out.Product)
	assert.Equal(t, uuid.Nil, out.Product.ID)
	assert.Equal(t, "Mouse", out.Product.Name)
	assert.Equal(t, contracts.Money(0), out.Product.Price)
	assert.Equal(t, 0, out.Product.Stock)
	assert.True(t, out.Product.IsActive)
}

func TestDecodeReplyStringList(t *testing.T) {
	reply := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ReserveInventoryResponse xmlns="urn:soa-ecommerce:v1:catalog">
      <Success>false</Success>
      <PricedLines></PricedLines>
      <Issues>
        <Issue>Produto sem estoque: Teclado</Issue>
        <Issue>Produto inativo: Mouse</Issue>
      </Issues>
    </ReserveInventoryResponse>
  </soap:Body>
</soap:Envelope>`

	var out contracts.ReserveInventoryResponse
	require.NoError(t, soap.DecodeReply([]byte(reply), "ReserveInventory", &out))

	assert.False(t, out.Success)
	assert.Empty(t, out.PricedLines)
	assert.Equal(t, []string{"Produto sem estoque: Teclado", "Produto inativo: Mouse"}, out.Issues)
}

func TestDecodeReplyServiceFault(t *testing.T) {
	reply := `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Estoque insuficiente</faultstring>
      <detail>
        <ServiceFault xmlns="urn:soa-ecommerce:v1:faults">
          <Code>INSUFFICIENT_STOCK</Code>
          <Message>Estoque insuficiente para um ou mais produtos</Message>
          <Details>Produto sem estoque: Teclado</Details>
          <Timestamp>2026-08-01T10:30:00Z</Timestamp>
        </ServiceFault>
      </detail>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

	var out contracts.ReserveInventoryResponse
	err := soap.DecodeReply([]byte(reply), "ReserveInventory", &out)
	require.Error(t, err)

	f, ok := fault.As(err)
	require.True(t, ok)
	assert.Equal(t, fault.CodeInsufficientStock, f.Code)
	assert.Equal(t, "Produto sem estoque: Teclado", f.Details)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), f.Timestamp)
}

func TestEncodeFaultDecodesBack(t *testing.T) {
	env := soap.EncodeFault(fault.ProductNotFound(uuid.Nil))

	var out contracts.GetProductResponse
	err := soap.DecodeReply([]byte(env), "GetProduct", &out)
	require.Error(t, err)

	f, ok := fault.As(err)
	require.True(t, ok)
	assert.Equal(t, fault.CodeProductNotFound, f.Code)
	assert.False(t, f.Timestamp.IsZero())
}

func TestEncodeResponseInlinesFields(t *testing.T) {
	env, err := soap.EncodeResponse(contracts.NamespaceCustomers, "GetCustomerStatus", &contracts.GetCustomerStatusResponse{
		IsActive: true,
		Score:    100,
		Success:  true,
	})
	require.NoError(t, err)

	assert.Contains(t, env, `<GetCustomerStatusResponse xmlns="urn:soa-ecommerce:v1:customers">`)
	assert.Contains(t, env, "<IsActive>true</IsActive><Score>100</Score><Success>true</Success>")
	// The payload root must not be duplicated inside the wrapper.
	assert.Equal(t, 1, strings.Count(env, "<GetCustomerStatusResponse"))

	var out contracts.GetCustomerStatusResponse
	require.NoError(t, soap.DecodeReply([]byte(env), "GetCustomerStatus", &out))
	assert.True(t, out.IsActive)
	assert.Equal(t, 100, out.Score)
	assert.True(t, out.Success)
}

func TestEncodeResponseRoundTripWithRecord(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC)

	env, err := soap.EncodeResponse(contracts.NamespaceCustomers, "GetCustomerByEmail", &contracts.GetCustomerByEmailResponse{
		Customer: &contracts.Customer{
			ID:        id,
			Name:      "Maria Silva",
			Email:     "maria@example.com",
			Status:    contracts.CustomerActive,
			CreatedAt: created,
		},
		Success: true,
		Message: "Cliente encontrado",
	})
	require.NoError(t, err)

	var out contracts.GetCustomerByEmailResponse
	require.NoError(t, soap.DecodeReply([]byte(env), "GetCustomerByEmail", &out))

	assert.True(t, out.Success)
	require.NotNil(t, out.Customer)
	assert.Equal(t, id, out.Customer.ID)
	assert.Equal(t, contracts.CustomerActive, out.Customer.Status)
	assert.True(t, created.Equal(out.Customer.CreatedAt))
}
