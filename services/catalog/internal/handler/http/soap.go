// Package http exposes the catalog operations over the wire protocol.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/contracts"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/fault"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/logger"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/pkg/soap"
	"github.com/torneseumprogramador/soa-Service-Oriented-Architecture/services/catalog/internal/service"
)

const maxRequestSize = 1 << 20

// SoapHandler dispatches envelope operations to the catalog service.
type SoapHandler struct {
	svc    *service.CatalogService
	log    *slog.Logger
	apiKey string
}

func NewSoapHandler(svc *service.CatalogService, log *slog.Logger, apiKey string) *SoapHandler {
	return &SoapHandler{svc: svc, log: log, apiKey: apiKey}
}

// ServeHTTP handles one envelope request. Business faults are returned as
// fault envelopes with status 200; only malformed HTTP-level input gets a
// non-2xx status.
func (h *SoapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		http.Error(w, "read request", http.StatusBadRequest)
		return
	}

	req, err := soap.ParseRequest(body)
	if err != nil {
		h.log.Warn("malformed envelope", slog.String("error", err.Error()))
		writeFault(w, fault.InvalidRequest("malformed request envelope"))
		return
	}

	if req.CorrelationID == "" {
		req.CorrelationID = uuid.New().String()
	}
	ctx := logger.WithCorrelationID(r.Context(), req.CorrelationID)
	log := logger.WithContext(ctx, h.log).With(slog.String("operation", req.Operation))

	if req.APIKey != h.apiKey {
		log.Warn("invalid api key")
		writeFault(w, fault.Unauthorized("invalid or missing ApiKey header"))
		return
	}

	log.Info("operation received")

	resp, err := h.dispatch(ctx, req)
	if err != nil {
		if f, ok := fault.As(err); ok {
			log.Warn("operation faulted", slog.String("code", f.Code), slog.String("details", f.Details))
			writeFault(w, f)
			return
		}
		log.Error("operation failed", slog.String("error", err.Error()))
		writeFault(w, fault.InvalidRequest("internal error processing "+req.Operation))
		return
	}

	env, err := soap.EncodeResponse(contracts.NamespaceCatalog, req.Operation, resp)
	if err != nil {
		log.Error("encode response failed", slog.String("error", err.Error()))
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, env)
}

func (h *SoapHandler) dispatch(ctx context.Context, req *soap.Request) (any, error) {
	switch req.Operation {
	case "CreateProduct":
		var payload contracts.CreateProductRequest
		if err := req.Decode(&payload); err != nil {
			return nil, fault.InvalidRequest("malformed CreateProduct payload")
		}
		return h.svc.CreateProduct(ctx, &payload)

	case "GetProduct":
		var payload contracts.GetProductRequest
		if err := req.Decode(&payload); err != nil {
			return nil, fault.InvalidRequest("malformed GetProduct payload")
		}
		return h.svc.GetProduct(ctx, &payload)

	case "ReserveInventory":
		var payload contracts.ReserveInventoryRequest
		if err := req.Decode(&payload); err != nil {
			return nil, fault.InvalidRequest("malformed ReserveInventory payload")
		}
		return h.svc.ReserveInventory(ctx, &payload)

	case "ReleaseInventory":
		var payload contracts.ReleaseInventoryRequest
		if err := req.Decode(&payload); err != nil {
			return nil, fault.InvalidRequest("malformed ReleaseInventory payload")
		}
		return h.svc.ReleaseInventory(ctx, &payload)

	default:
		return nil, fault.InvalidRequest("unknown operation " + req.Operation)
	}
}

func writeFault(w http.ResponseWriter, f *fault.Fault) {
	writeEnvelope(w, soap.EncodeFault(f))
}

func writeEnvelope(w http.ResponseWriter, env string) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, env)
}
