package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/logger"

	"github.com/google/uuid"
)

// Remote is the rental API as seen by a client session
type Remote interface {
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	LoadClient(ctx context.Context) (domain.Client, error)
	SaveClient(ctx context.Context, client domain.Client) error
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*CreatedOrder, error)
}

// CreatedOrder is the create-order answer. Only ContractNumber is required;
// nil fields were omitted by the service.
type CreatedOrder struct {
	ContractNumber string              `json:"contractNumber"`
	ID             *int64              `json:"id"`
	Equipment      *string             `json:"equipment"`
	StartDate      *string             `json:"startDate"`
	EndDate        *string             `json:"endDate"`
	Status         *domain.OrderStatus `json:"status"`
	Total          *int64              `json:"total"`
}

const (
	pathEquipment = "equipment"
	pathOrders    = "orders"
	pathClient    = "client"
	pathOrder     = "order"

	requestIDHeader = "X-Request-ID"
)

// HTTPRemote talks to the path-keyed rental API over HTTP
type HTTPRemote struct {
	baseURL *url.URL
	client  *http.Client
}

// NewHTTPRemote creates a remote for the API at baseURL. A zero timeout keeps
// the transport default.
func NewHTTPRemote(baseURL string, timeout time.Duration) (*HTTPRemote, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rental api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid rental api url: %q", baseURL)
	}
	return &HTTPRemote{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (r *HTTPRemote) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	query := url.Values{}
	if filter.HasCategory() {
		query.Set("category", string(filter.Category))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var items []domain.Equipment
	if err := r.do(ctx, http.MethodGet, pathEquipment, query, nil, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		if item.ID == 0 || item.Name == "" {
			return nil, &MalformedResponseError{What: fmt.Sprintf("equipment[%d] lacks id or name", i)}
		}
		if !item.Status.Valid() {
			return nil, &MalformedResponseError{What: fmt.Sprintf("equipment %d has unknown status %q", item.ID, item.Status)}
		}
	}
	return items, nil
}

// ListOrders returns orders as sent. Status values are not checked here:
// an unknown status is reported when it is mapped to display text.
func (r *HTTPRemote) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.do(ctx, http.MethodGet, pathOrders, nil, nil, &orders); err != nil {
		return nil, err
	}
	for i, order := range orders {
		if order.ID == 0 {
			return nil, &MalformedResponseError{What: fmt.Sprintf("orders[%d] lacks id", i)}
		}
	}
	return orders, nil
}

func (r *HTTPRemote) LoadClient(ctx context.Context) (domain.Client, error) {
	var client domain.Client
	if err := r.do(ctx, http.MethodGet, pathClient, nil, nil, &client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (r *HTTPRemote) SaveClient(ctx context.Context, client domain.Client) error {
	return r.do(ctx, http.MethodPost, pathClient, nil, client, nil)
}

func (r *HTTPRemote) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*CreatedOrder, error) {
	var created CreatedOrder
	if err := r.do(ctx, http.MethodPost, pathOrder, nil, req, &created); err != nil {
		return nil, err
	}
	if created.ContractNumber == "" {
		return nil, &MalformedResponseError{What: "order response lacks contractNumber"}
	}
	return &created, nil
}

func (r *HTTPRemote) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path

	u := *r.baseURL
	q := u.Query()
	q.Set("path", path)
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	logger.RemoteCall(method, path, "request_id", requestID)
	resp, err := r.client.Do(req)
	if err != nil {
		nerr := &NetworkError{Op: op, Err: err}
		logger.RemoteResult(method, path, 0, nerr, "request_id", requestID)
		return nerr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		nerr := &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errorFromBody(resp.Body)}
		logger.RemoteResult(method, path, resp.StatusCode, nerr, "request_id", requestID)
		return nerr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			merr := &MalformedResponseError{What: op, Err: err}
			logger.RemoteResult(method, path, resp.StatusCode, merr, "request_id", requestID)
			return merr
		}
	}
	logger.RemoteResult(method, path, resp.StatusCode, nil, "request_id", requestID)
	return nil
}

// errorFromBody extracts the service's {"error": "..."} message when present
func errorFromBody(body io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return errors.New(payload.Error)
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return errors.New(text)
	}
	return errors.New("empty response body")
}
