// Package contracts holds the wire messages exchanged by the services:
// requests, responses, record types and their serialization tables. Field
// order inside each message is part of the wire contract.
package contracts

import (
	"time"

	"github.com/google/uuid"
)

// NamespaceCustomers is the customer service's short namespace.
const NamespaceCustomers = "customers"

// CustomerStatus is the lifecycle state of a customer account.
type CustomerStatus string

const (
	CustomerActive  CustomerStatus = "Active"
	CustomerBlocked CustomerStatus = "Blocked"
)

// Customer is the customer record as it travels on the wire.
type Customer struct {
	ID        uuid.UUID      `xml:"Id"`
	Name      string         `xml:"Name"`
	Email     string         `xml:"Email"`
	Status    CustomerStatus `xml:"Status"`
	CreatedAt time.Time      `xml:"CreatedAt"`
}

type CreateCustomerRequest struct {
	Name  string `xml:"Name"`
	Email string `xml:"Email"`
}

// CreateCustomerResponse reports the created (or pre-existing) customer.
// Registering an email that already exists succeeds and returns the
// existing record.
type CreateCustomerResponse struct {
	CustomerID uuid.UUID `xml:"CustomerId"`
	Success    bool      `xml:"Success"`
	Message    string    `xml:"Message"`
	Customer   *Customer `xml:"Customer"`
}

type GetCustomerRequest struct {
	CustomerID uuid.UUID `xml:"CustomerId"`
}

type GetCustomerResponse struct {
	Customer *Customer `xml:"Customer"`
	Success  bool      `xml:"Success"`
}

type GetCustomerByEmailRequest struct {
	Email string `xml:"Email"`
}

// GetCustomerByEmailResponse signals a miss in-band: Success false and a
// nil Customer, never a fault.
type GetCustomerByEmailResponse struct {
	Customer *Customer `xml:"Customer"`
	Success  bool      `xml:"Success"`
	Message  string    `xml:"Message"`
}

type GetCustomerStatusRequest struct {
	CustomerID uuid.UUID `xml:"CustomerId"`
}

type GetCustomerStatusResponse struct {
	IsActive bool `xml:"IsActive"`
	Score    int  `xml:"Score"`
	Success  bool `xml:"Success"`
}
