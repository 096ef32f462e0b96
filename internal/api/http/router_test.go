package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "prokat-rental/internal/api/http"
	"prokat-rental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	catalog *MockCatalogService
	orders  *MockOrderService
	clients *MockClientService
	handler http.Handler
}

func newAPIFixture() *apiFixture {
	f := &apiFixture{
		catalog: new(MockCatalogService),
		orders:  new(MockOrderService),
		clients: new(MockClientService),
	}
	f.handler = httpapi.NewRouter("/api", f.catalog, f.orders, f.clients)
	return f
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestListEquipment(t *testing.T) {
	f := newAPIFixture()
	items := []domain.Equipment{{ID: 1, Name: "Дрель Bosch", Category: domain.CategoryPowerTools, Price: 500, Period: "сутки", Status: domain.EquipmentStatusAvailable, Specs: []string{}}}
	f.catalog.On("ListEquipment", mock.Anything, domain.EquipmentFilter{Category: domain.CategoryPowerTools, Search: "дрель"}).Return(items, nil)

	rec := f.do(http.MethodGet, "/api?path=equipment&category=%D0%AD%D0%BB%D0%B5%D0%BA%D1%82%D1%80%D0%BE%D0%B8%D0%BD%D1%81%D1%82%D1%80%D1%83%D0%BC%D0%B5%D0%BD%D1%82&search=%D0%B4%D1%80%D0%B5%D0%BB%D1%8C", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var got []domain.Equipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, items, got)
}

func TestListOrders(t *testing.T) {
	f := newAPIFixture()
	f.orders.On("ListOrders", mock.Anything).Return([]domain.Order{{ID: 2, Status: domain.OrderStatusActive, StartDate: "2024-03-01", EndDate: "2024-03-08"}}, nil)

	rec := f.do(http.MethodGet, "/api?path=orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"startDate":"2024-03-01"`)
}

func TestGetClient(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		f := newAPIFixture()
		f.clients.On("GetClient", mock.Anything).Return(&domain.Client{}, nil)

		rec := f.do(http.MethodGet, "/api?path=client", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("Saved", func(t *testing.T) {
		f := newAPIFixture()
		f.clients.On("GetClient", mock.Anything).Return(&domain.Client{CompanyName: "Ромашка", INN: "7701234567"}, nil)

		rec := f.do(http.MethodGet, "/api?path=client", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"companyName":"Ромашка"`)
	})
}

func TestSaveClient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newAPIFixture()
		f.clients.On("SaveClient", mock.Anything, &domain.Client{CompanyName: "Ромашка", Email: "buh@romashka.ru"}).Return(nil)

		rec := f.do(http.MethodPost, "/api?path=client", `{"companyName":"Ромашка","email":"buh@romashka.ru"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("Validation", func(t *testing.T) {
		f := newAPIFixture()
		f.clients.On("SaveClient", mock.Anything, mock.Anything).Return(domain.NewValidationError("email", "invalid email address"))

		rec := f.do(http.MethodPost, "/api?path=client", `{"email":"nope"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email: invalid email address", decodeError(t, rec))
	})

	t.Run("BadJSON", func(t *testing.T) {
		f := newAPIFixture()
		rec := f.do(http.MethodPost, "/api?path=client", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.clients.AssertNotCalled(t, "SaveClient", mock.Anything, mock.Anything)
	})
}

func TestCreateOrder(t *testing.T) {
	req := domain.CreateOrderRequest{EquipmentIDs: []int64{1, 2}, StartDate: "2024-03-01", EndDate: "2024-03-08"}
	body := `{"equipmentIds":[1,2],"startDate":"2024-03-01","endDate":"2024-03-08"}`

	t.Run("Created", func(t *testing.T) {
		f := newAPIFixture()
		f.orders.On("CreateOrder", mock.Anything, req).Return(&domain.Order{
			ID: 42, Equipment: "Дрель Bosch, Бетономешалка", StartDate: "2024-03-01", EndDate: "2024-03-08",
			Status: domain.OrderStatusPending, Total: 1700, ContractNumber: "А-2024-000042",
		}, nil)

		rec := f.do(http.MethodPost, "/api?path=order", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "А-2024-000042", got.ContractNumber)
		assert.Equal(t, int64(1700), got.Total)
	})

	t.Run("Unavailable", func(t *testing.T) {
		f := newAPIFixture()
		f.orders.On("CreateOrder", mock.Anything, req).Return(nil, domain.ErrEquipmentUnavailable)

		rec := f.do(http.MethodPost, "/api?path=order", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InternalErrorHidesDetail", func(t *testing.T) {
		f := newAPIFixture()
		f.orders.On("CreateOrder", mock.Anything, req).Return(nil, errors.New("pq: connection refused"))

		rec := f.do(http.MethodPost, "/api?path=order", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeError(t, rec))
	})
}

func TestRouting(t *testing.T) {
	f := newAPIFixture()

	t.Run("Preflight", func(t *testing.T) {
		rec := f.do(http.MethodOptions, "/api?path=order", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	cases := []struct {
		name   string
		method string
		target string
	}{
		{"UnknownPath", http.MethodGet, "/api?path=invoices"},
		{"MissingPath", http.MethodGet, "/api"},
		{"WrongMethod", http.MethodGet, "/api?path=order"},
		{"OtherRoute", http.MethodGet, "/health"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not found", decodeError(t, rec))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	t.Run("KeepsCallerRequestID", func(t *testing.T) {
		f.orders.On("ListOrders", mock.Anything).Return([]domain.Order{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/api?path=orders", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})
}
