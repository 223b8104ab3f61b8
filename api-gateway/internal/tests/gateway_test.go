package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-ordering/api-gateway/internal/gateway"
	"food-ordering/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	OrderSvcURL:     "http://order-svc",
	AnalyticsSvcURL: "http://analytics-svc/",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		expectedURL string
	}{
		{
			name:        "analytics ranking",
			method:      http.MethodGet,
			target:      "/api/analytics/top-today",
			expectedURL: "http://analytics-svc/api/analytics/top-today",
		},
		{
			name:        "food detail keeps query",
			method:      http.MethodGet,
			target:      "/api/foods/3?format=text",
			expectedURL: "http://order-svc/api/foods/3?format=text",
		},
		{
			name:        "draft submit",
			method:      http.MethodPost,
			target:      "/api/draft/submit",
			expectedURL: "http://order-svc/api/draft/submit",
		},
		{
			name:        "order qrcode",
			method:      http.MethodGet,
			target:      "/api/orders/7/qrcode",
			expectedURL: "http://order-svc/api/orders/7/qrcode",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(testConfig, mockClient)

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method &&
					req.URL.String() == testCase.expectedURL &&
					req.Header.Get("Authorization") == "Bearer token"
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.target, nil)
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_NonAPI(t *testing.T) {
	gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t))

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ProxiesToBackend(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"path":"` + r.URL.Path + `","body":` + string(body) + `}`))
	}))
	defer backend.Close()

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:     backend.URL,
		AnalyticsSvcURL: "http://unused",
	}, backend.Client())

	req := httptest.NewRequest(http.MethodPost, "/api/draft/items", strings.NewReader(`{"food_id":1,"quantity":2}`))
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"path":"/api/draft/items","body":{"food_id":1,"quantity":2}}`, rr.Body.String())
}
