package http

import (
	"net/http"

	"prokat-rental/internal/service"

	"github.com/gorilla/mux"
)

// API paths, selected by the "path" query parameter on the base route
const (
	PathEquipment = "equipment"
	PathOrders    = "orders"
	PathClient    = "client"
	PathOrder     = "order"
)

// NewRouter mounts the rental API on basePath. Requests for an unknown path,
// or a known path with the wrong method, get 404 {"error":"Not found"}.
func NewRouter(basePath string, catalog service.CatalogService, orders service.OrderService, clients service.ClientService) http.Handler {
	h := NewHandler(catalog, orders, clients)

	router := mux.NewRouter()
	router.HandleFunc(basePath, h.ListEquipment).Methods(http.MethodGet).Queries("path", PathEquipment)
	router.HandleFunc(basePath, h.ListOrders).Methods(http.MethodGet).Queries("path", PathOrders)
	router.HandleFunc(basePath, h.GetClient).Methods(http.MethodGet).Queries("path", PathClient)
	router.HandleFunc(basePath, h.SaveClient).Methods(http.MethodPost, http.MethodPut).Queries("path", PathClient)
	router.HandleFunc(basePath, h.CreateOrder).Methods(http.MethodPost).Queries("path", PathOrder)

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return withRequestID(withLogging(withCORS(router)))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
}
