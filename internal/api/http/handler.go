package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"
	"prokat-rental/internal/service"
)

type Handler struct {
	catalog service.CatalogService
	orders  service.OrderService
	clients service.ClientService
}

func NewHandler(catalog service.CatalogService, orders service.OrderService, clients service.ClientService) *Handler {
	return &Handler{catalog: catalog, orders: orders, clients: clients}
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{
		Category: domain.EquipmentCategory(q.Get("category")),
		Search:   q.Get("search"),
	}

	items, err := h.catalog.ListEquipment(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.GetClient(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if client.IsEmpty() {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) SaveClient(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeError(w, r, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	if err := h.clients.SaveClient(r.Context(), &client); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}

// writeError maps service errors to status codes. Internal errors are logged
// and answered without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.Is(err, domain.ErrEquipmentUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(r.Context(), "Request failed", "error", err, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
