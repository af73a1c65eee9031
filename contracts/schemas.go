package contracts

import "github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/soap"

// The serialization tables below mirror the struct definitions exactly.
// They drive both the encoder's element ordering and the decoder's tolerant
// fallback path.
func init() {
	// Customers.
	soap.Register(Customer{}, &soap.Schema{
		Root: "Customer",
		Fields: []soap.Field{
			{Elem: "Id", Go: "ID", Kind: soap.KindScalar},
			{Elem: "Name", Go: "Name", Kind: soap.KindScalar},
			{Elem: "Email", Go: "Email", Kind: soap.KindScalar},
			{Elem: "Status", Go: "Status", Kind: soap.KindScalar},
			{Elem: "CreatedAt", Go: "CreatedAt", Kind: soap.KindScalar},
		},
	})
	soap.Register(CreateCustomerRequest{}, &soap.Schema{
		Root: "CreateCustomerRequest",
		Fields: []soap.Field{
			{Elem: "Name", Go: "Name", Kind: soap.KindScalar},
			{Elem: "Email", Go: "Email", Kind: soap.KindScalar},
		},
	})
	soap.Register(CreateCustomerResponse{}, &soap.Schema{
		Root: "CreateCustomerResponse",
		Fields: []soap.Field{
			{Elem: "CustomerId", Go: "CustomerID", Kind: soap.KindScalar},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
			{Elem: "Customer", Go: "Customer", Kind: soap.KindRecord},
		},
	})
	soap.Register(GetCustomerRequest{}, &soap.Schema{
		Root: "GetCustomerRequest",
		Fields: []soap.Field{
			{Elem: "CustomerId", Go: "CustomerID", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetCustomerResponse{}, &soap.Schema{
		Root: "GetCustomerResponse",
		Fields: []soap.Field{
			{Elem: "Customer", Go: "Customer", Kind: soap.KindRecord},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetCustomerByEmailRequest{}, &soap.Schema{
		Root: "GetCustomerByEmailRequest",
		Fields: []soap.Field{
			{Elem: "Email", Go: "Email", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetCustomerByEmailResponse{}, &soap.Schema{
		Root: "GetCustomerByEmailResponse",
		Fields: []soap.Field{
			{Elem: "Customer", Go: "Customer", Kind: soap.KindRecord},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetCustomerStatusRequest{}, &soap.Schema{
		Root: "GetCustomerStatusRequest",
		Fields: []soap.Field{
			{Elem: "CustomerId", Go: "CustomerID", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetCustomerStatusResponse{}, &soap.Schema{
		Root: "GetCustomerStatusResponse",
		Fields: []soap.Field{
			{Elem: "IsActive", Go: "IsActive", Kind: soap.KindScalar},
			{Elem: "Score", Go: "Score", Kind: soap.KindScalar},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
		},
	})

	// Catalog.
	soap.Register(Product{}, &soap.Schema{
		Root: "Product",
		Fields: []soap.Field{
			{Elem: "Id", Go: "ID", Kind: soap.KindScalar},
			{Elem: "Name", Go: "Name", Kind: soap.KindScalar},
			{Elem: "Price", Go: "Price", Kind: soap.KindScalar},
			{Elem: "Stock", Go: "Stock", Kind: soap.KindScalar},
			{Elem: "IsActive", Go: "IsActive", Kind: soap.KindScalar},
		},
	})
	soap.Register(CreateProductRequest{}, &soap.Schema{
		Root: "CreateProductRequest",
		Fields: []soap.Field{
			{Elem: "Name", Go: "Name", Kind: soap.KindScalar},
			{Elem: "Price", Go: "Price", Kind: soap.KindScalar},
			{Elem: "Stock", Go: "Stock", Kind: soap.KindScalar},
		},
	})
	soap.Register(CreateProductResponse{}, &soap.Schema{
		Root: "CreateProductResponse",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetProductRequest{}, &soap.Schema{
		Root: "GetProductRequest",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetProductResponse{}, &soap.Schema{
		Root: "GetProductResponse",
		Fields: []soap.Field{
			{Elem: "Product", Go: "Product", Kind: soap.KindRecord},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
		},
	})
	soap.Register(ReserveLine{}, &soap.Schema{
		Root: "ReserveLine",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Quantity", Go: "Quantity", Kind: soap.KindScalar},
		},
	})
	soap.Register(PricedLine{}, &soap.Schema{
		Root: "PricedLine",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Quantity", Go: "Quantity", Kind: soap.KindScalar},
			{Elem: "UnitPrice", Go: "UnitPrice", Kind: soap.KindScalar},
		},
	})
	soap.Register(ReserveInventoryRequest{}, &soap.Schema{
		Root: "ReserveInventoryRequest",
		Fields: []soap.Field{
			{Elem: "Lines", Go: "Lines", Kind: soap.KindList, Item: "Line"},
		},
	})
	soap.Register(ReserveInventoryResponse{}, &soap.Schema{
		Root: "ReserveInventoryResponse",
		Fields: []soap.Field{
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "PricedLines", Go: "PricedLines", Kind: soap.KindList, Item: "Line"},
			{Elem: "Issues", Go: "Issues", Kind: soap.KindStringList, Item: "Issue"},
		},
	})
	soap.Register(ReleaseInventoryRequest{}, &soap.Schema{
		Root: "ReleaseInventoryRequest",
		Fields: []soap.Field{
			{Elem: "Lines", Go: "Lines", Kind: soap.KindList, Item: "Line"},
		},
	})
	soap.Register(ReleaseInventoryResponse{}, &soap.Schema{
		Root: "ReleaseInventoryResponse",
		Fields: []soap.Field{
			{Elem: "ReleasedCount", Go: "ReleasedCount", Kind: soap.KindScalar},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
		},
	})

	// Sales.
	soap.Register(OrderItem{}, &soap.Schema{
		Root: "OrderItem",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Quantity", Go: "Quantity", Kind: soap.KindScalar},
			{Elem: "UnitPrice", Go: "UnitPrice", Kind: soap.KindScalar},
			{Elem: "Subtotal", Go: "Subtotal", Kind: soap.KindScalar},
		},
	})
	soap.Register(Order{}, &soap.Schema{
		Root: "Order",
		Fields: []soap.Field{
			{Elem: "Id", Go: "ID", Kind: soap.KindScalar},
			{Elem: "CustomerId", Go: "CustomerID", Kind: soap.KindScalar},
			{Elem: "Status", Go: "Status", Kind: soap.KindScalar},
			{Elem: "Total", Go: "Total", Kind: soap.KindScalar},
			{Elem: "CreatedAt", Go: "CreatedAt", Kind: soap.KindScalar},
			{Elem: "Items", Go: "Items", Kind: soap.KindList, Item: "Item"},
		},
	})
	soap.Register(OrderItemInput{}, &soap.Schema{
		Root: "OrderItemInput",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Quantity", Go: "Quantity", Kind: soap.KindScalar},
			{Elem: "UnitPrice", Go: "UnitPrice", Kind: soap.KindScalar},
		},
	})
	soap.Register(CreateOrderRequest{}, &soap.Schema{
		Root: "CreateOrderRequest",
		Fields: []soap.Field{
			{Elem: "CustomerId", Go: "CustomerID", Kind: soap.KindScalar},
			{Elem: "Items", Go: "Items", Kind: soap.KindList, Item: "Item"},
		},
	})
	soap.Register(CreateOrderResponse{}, &soap.Schema{
		Root: "CreateOrderResponse",
		Fields: []soap.Field{
			{Elem: "OrderId", Go: "OrderID", Kind: soap.KindScalar},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
	soap.Register(ConfirmOrderRequest{}, &soap.Schema{
		Root: "ConfirmOrderRequest",
		Fields: []soap.Field{
			{Elem: "OrderId", Go: "OrderID", Kind: soap.KindScalar},
		},
	})
	soap.Register(ConfirmOrderResponse{}, &soap.Schema{
		Root: "ConfirmOrderResponse",
		Fields: []soap.Field{
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
	soap.Register(CancelOrderRequest{}, &soap.Schema{
		Root: "CancelOrderRequest",
		Fields: []soap.Field{
			{Elem: "OrderId", Go: "OrderID", Kind: soap.KindScalar},
			{Elem: "Reason", Go: "Reason", Kind: soap.KindScalar},
		},
	})
	soap.Register(CancelOrderResponse{}, &soap.Schema{
		Root: "CancelOrderResponse",
		Fields: []soap.Field{
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetOrderRequest{}, &soap.Schema{
		Root: "GetOrderRequest",
		Fields: []soap.Field{
			{Elem: "OrderId", Go: "OrderID", Kind: soap.KindScalar},
		},
	})
	soap.Register(GetOrderResponse{}, &soap.Schema{
		Root: "GetOrderResponse",
		Fields: []soap.Field{
			{Elem: "Order", Go: "Order", Kind: soap.KindRecord},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
		},
	})

	// Process.
	soap.Register(PlaceOrderItem{}, &soap.Schema{
		Root: "PlaceOrderItem",
		Fields: []soap.Field{
			{Elem: "ProductId", Go: "ProductID", Kind: soap.KindScalar},
			{Elem: "Quantity", Go: "Quantity", Kind: soap.KindScalar},
		},
	})
	soap.Register(PlaceOrderRequest{}, &soap.Schema{
		Root: "PlaceOrderRequest",
		Fields: []soap.Field{
			{Elem: "CustomerEmail", Go: "CustomerEmail", Kind: soap.KindScalar},
			{Elem: "Items", Go: "Items", Kind: soap.KindList, Item: "Item"},
		},
	})
	soap.Register(PlaceOrderResponse{}, &soap.Schema{
		Root: "PlaceOrderResponse",
		Fields: []soap.Field{
			{Elem: "Order", Go: "Order", Kind: soap.KindRecord},
			{Elem: "Success", Go: "Success", Kind: soap.KindScalar},
			{Elem: "Message", Go: "Message", Kind: soap.KindScalar},
		},
	})
}
