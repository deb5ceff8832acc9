package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	adapthttp "github.com/rafaelleal24/fastfood-express/internal/adapters/http"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/controllers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/handlers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/middleware"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/port/mock"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryCache keeps values in a map so cart state survives across requests.
type memoryCache[T any] struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache[T any]() *memoryCache[T] {
	return &memoryCache[T]{values: map[string][]byte{}}
}

func (m *memoryCache[T]) Get(_ context.Context, key string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

func (m *memoryCache[T]) Set(_ context.Context, key string, value *T, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = data
	return nil
}

func (m *memoryCache[T]) SetNX(ctx context.Context, key string, value *T, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	_, exists := m.values[key]
	m.mu.Unlock()
	if exists {
		return false, nil
	}
	return true, m.Set(ctx, key, value, ttl)
}

func (m *memoryCache[T]) Expire(context.Context, string, time.Duration) error { return nil }

func (m *memoryCache[T]) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string, int, time.Duration) (bool, error) { return true, nil }

type testServer struct {
	engine    *gin.Engine
	broker    *mock.MockBrokerPort
	sessionID string
}

func newTestServer(t *testing.T, checkers ...controllers.HealthChecker) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	menuRepo := mock.NewMockMenuPort(ctrl)
	menuItems := []domain.MenuItem{
		domain.NewMenuItem("Zinger Burger", 300, "images/zinger-burger.jpg"),
		domain.NewMenuItem("Fries", 150, "images/fries.jpg"),
		domain.NewMenuItem("Pizza Slice", 250, "images/pizza-slice.jpg"),
		domain.NewMenuItem("Drink", 80, "images/drink.jpg"),
	}
	menuRepo.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(nil)
	menuRepo.EXPECT().GetAll(gomock.Any()).Return(menuItems, nil)

	menuService := service.NewMenuService(menuRepo)
	_, err := menuService.Load(context.Background(), menuItems)
	require.NoError(t, err)

	sessionCfg := config.SessionConfig{TTL: time.Hour, CookieName: "session_id"}
	broker := mock.NewMockBrokerPort(ctrl)
	cartService := service.NewCartService(newMemoryCache[domain.Cart](), menuService, sessionCfg.TTL)
	idempotency := service.NewIdempotencyService[domain.OrderMessage](
		newMemoryCache[service.IdempotencyEntry[domain.OrderMessage]](), time.Minute, 10*time.Millisecond, 100*time.Millisecond,
	)
	composer := domain.NewOrderComposer("https://wa.me/", "923133850871", domain.LinkEncodingMinimal)
	orderService := service.NewOrderService(cartService, composer, broker, idempotency)

	router := adapthttp.NewRouter(
		controllers.NewHealthController(checkers),
		controllers.NewMenuController(menuService),
		controllers.NewCartController(cartService),
		controllers.NewOrderController(orderService),
		controllers.NewSessionController(cartService, sessionCfg),
		allowAll{},
		config.HTTPConfig{CORSAllowedOrigins: []string{"http://localhost:5173"}, RateLimit: 100, RateLimitWindow: time.Minute},
		sessionCfg,
	)

	engine := gin.New()
	router.SetupRoutes(engine)
	return &testServer{engine: engine, broker: broker}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, s.sessionID)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	if id := w.Header().Get(middleware.SessionHeader); id != "" {
		s.sessionID = id
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &value))
	return value
}

func itemPath(name, suffix string) string {
	return "/api/v1/cart/items/" + url.PathEscape(name) + suffix
}

func TestRouter_Menu(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/menu", nil)

	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]controllers.MenuItemResponse](t, w)
	require.Len(t, items, 4)
	assert.Equal(t, controllers.MenuItemResponse{
		Name: "Zinger Burger", Price: 300, PriceLabel: "Rs. 300", Image: "images/zinger-burger.jpg",
	}, items[0])
	assert.Empty(t, w.Header().Get(middleware.SessionHeader))
}

func TestRouter_CartFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, s.sessionID)
	assert.True(t, decode[controllers.CartResponse](t, w).IsEmpty)

	for _, name := range []string{"Zinger Burger", "Fries", "Zinger Burger"} {
		w = s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": name})
		require.Equal(t, http.StatusOK, w.Code)
	}

	cart := decode[controllers.CartResponse](t, s.do(t, http.MethodGet, "/api/v1/cart", nil))
	assert.Equal(t, []controllers.CartLineResponse{
		{Name: "Zinger Burger", UnitPrice: 300, Quantity: 2, LineTotal: 600},
		{Name: "Fries", UnitPrice: 150, Quantity: 1, LineTotal: 150},
	}, cart.Items)
	assert.Equal(t, 750, cart.GrandTotal)
	assert.Equal(t, 3, cart.ItemCount)
	assert.False(t, cart.IsEmpty)

	w = s.do(t, http.MethodPost, itemPath("Fries", "/increment"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 900, decode[controllers.CartResponse](t, w).GrandTotal)

	w = s.do(t, http.MethodPost, itemPath("Zinger Burger", "/decrement"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 600, decode[controllers.CartResponse](t, w).GrandTotal)

	w = s.do(t, http.MethodDelete, itemPath("Fries", ""), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode[controllers.CartResponse](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Zinger Burger", cart.Items[0].Name)

	w = s.do(t, http.MethodPost, itemPath("Drink", "/decrement"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 300, decode[controllers.CartResponse](t, w).GrandTotal)
}

func TestRouter_CartErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Shawarma"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, itemPath("Shawarma", "/increment"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SessionsAreIsolated(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Fries"})
	first := s.sessionID

	s.sessionID = ""
	cart := decode[controllers.CartResponse](t, s.do(t, http.MethodGet, "/api/v1/cart", nil))
	assert.NotEqual(t, first, s.sessionID)
	assert.True(t, cart.IsEmpty)
}

func TestRouter_SubmitOrder(t *testing.T) {
	t.Run("validation errors carry their code", func(t *testing.T) {
		s := newTestServer(t)

		testCases := map[string]struct {
			body map[string]string
			code string
		}{
			"missing contact": {body: map[string]string{"customer_name": "Ali"}, code: "missing_contact_info"},
			"bad phone":       {body: map[string]string{"customer_name": "Ali", "phone_number": "03001234567"}, code: "invalid_phone_number"},
			"empty cart":      {body: map[string]string{"customer_name": "Ali", "phone_number": "923001234567"}, code: "empty_cart"},
		}
		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				w := s.do(t, http.MethodPost, "/api/v1/orders", tc.body)
				require.Equal(t, http.StatusUnprocessableEntity, w.Code)
				assert.Equal(t, tc.code, decode[handlers.ErrorResponse](t, w).Code)
			})
		}
	})

	t.Run("returns the composed link", func(t *testing.T) {
		s := newTestServer(t)
		for _, name := range []string{"Zinger Burger", "Fries", "Zinger Burger"} {
			s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": name})
		}
		s.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		w := s.do(t, http.MethodPost, "/api/v1/orders", map[string]string{
			"customer_name": "Ali",
			"phone_number":  "923001234567",
		})

		require.Equal(t, http.StatusOK, w.Code)
		order := decode[controllers.OrderResponse](t, w)
		assert.Equal(t, []string{
			"Order Summary:",
			"- Zinger Burger × 2 = Rs. 600",
			"- Fries × 1 = Rs. 150",
			"",
			"Total: Rs. 750",
			"Customer: Ali",
			"Contact: 923001234567",
		}, order.Lines)
		assert.Equal(t, 750, order.GrandTotal)
		assert.Equal(t, "https://wa.me/923133850871?text="+order.EncodedText, order.Link)

		cart := decode[controllers.CartResponse](t, s.do(t, http.MethodGet, "/api/v1/cart", nil))
		assert.Equal(t, 3, cart.ItemCount, "composing must not clear the cart")
	})

	t.Run("broker failure still returns the link", func(t *testing.T) {
		s := newTestServer(t)
		s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Drink"})
		s.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("rabbitmq down"))

		w := s.do(t, http.MethodPost, "/api/v1/orders", map[string]string{
			"customer_name": "Sara",
			"phone_number":  "923211234567",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("redirects when asked", func(t *testing.T) {
		s := newTestServer(t)
		s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Fries"})
		s.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		w := s.do(t, http.MethodPost, "/api/v1/orders?redirect=true", map[string]string{
			"customer_name": "Ali",
			"phone_number":  "923001234567",
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "https://wa.me/923133850871?text=Order%20Summary:")
	})

	t.Run("same idempotency key publishes once", func(t *testing.T) {
		s := newTestServer(t)
		s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Pizza Slice"})
		s.broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		body := map[string]string{"customer_name": "Ali", "phone_number": "923001234567"}
		first := s.do(t, http.MethodPost, "/api/v1/orders", body, "Idempotency-Key", "click-1")
		second := s.do(t, http.MethodPost, "/api/v1/orders", body, "Idempotency-Key", "click-1")

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_EndSession(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/v1/cart/items", map[string]string{"name": "Fries"})
	session := s.sessionID

	w := s.do(t, http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	s.sessionID = session
	cart := decode[controllers.CartResponse](t, s.do(t, http.MethodGet, "/api/v1/cart", nil))
	assert.True(t, cart.IsEmpty)
}

func TestRouter_Health(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		s := newTestServer(t,
			controllers.HealthChecker{Name: "mongodb", Check: func(context.Context) error { return nil }},
			controllers.HealthChecker{Name: "redis", Check: func(context.Context) error { return nil }},
		)

		w := s.do(t, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		health := decode[controllers.HealthResponse](t, w)
		assert.Equal(t, "ok", health.Status)
		assert.Equal(t, map[string]string{"mongodb": "ok", "redis": "ok"}, health.Services)
	})

	t.Run("one dependency down", func(t *testing.T) {
		s := newTestServer(t,
			controllers.HealthChecker{Name: "mongodb", Check: func(context.Context) error { return nil }},
			controllers.HealthChecker{Name: "rabbitmq", Check: func(context.Context) error { return errors.New("connection is closed") }},
		)

		w := s.do(t, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		health := decode[controllers.HealthResponse](t, w)
		assert.Equal(t, "degraded", health.Status)
		assert.Equal(t, "ok", health.Services["mongodb"])
		assert.Equal(t, "connection is closed", health.Services["rabbitmq"])
	})
}

func TestRouter_MetricsAndCORS(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/v1/menu", nil)

	w := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w = s.do(t, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "docs are registered by the binary, not the router")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cart", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
