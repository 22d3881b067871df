package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booze/internal/adapter/http/handlers"
	"booze/internal/adapter/http/handlers/mocks"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionUseCase(ctrl)
	history := mocks.NewMockIOrderHistoryUseCase(ctrl)
	catalog := mocks.NewMockICatalogUseCase(ctrl)

	r := gin.New()
	registerRoutes(r.Group("/v1"), storeHandlers{
		products: handlers.NewProductHandler(catalog),
		cart:     handlers.NewCartHandler(sessions),
		address:  handlers.NewAddressHandler(sessions),
		checkout: handlers.NewCheckoutHandler(sessions),
		orders:   handlers.NewOrderHandler(history),
		session:  handlers.NewSessionHandler(sessions),
	})

	want := map[string]bool{
		"GET /v1/ping":                              true,
		"GET /v1/products":                          true,
		"GET /v1/products/:id":                      true,
		"GET /v1/cart":                              true,
		"DELETE /v1/cart":                           true,
		"POST /v1/cart/items":                       true,
		"POST /v1/cart/items/:product_id/decrement": true,
		"DELETE /v1/cart/items/:product_id":         true,
		"GET /v1/address":                           true,
		"PUT /v1/address":                           true,
		"DELETE /v1/address":                        true,
		"POST /v1/checkout":                         true,
		"GET /v1/orders":                            true,
		"DELETE /v1/session":                        true,
	}
	for _, ri := range r.Routes() {
		delete(want, ri.Method+" "+ri.Path)
	}
	if len(want) != 0 {
		t.Fatalf("missing routes: %v", want)
	}

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(handlers.HeaderSessionID) != "" {
			t.Fatalf("ping must not start a session")
		}
	})

	t.Run("cart gets a session", func(t *testing.T) {
		sessions.EXPECT().GetCart(gomock.Any(), gomock.Any()).Return(usecase.CartView{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cart", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get(handlers.HeaderSessionID) == "" {
			t.Fatalf("expected a minted session id")
		}
	})
}
