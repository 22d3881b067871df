package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	response "booze/internal/adapter/http/dto/response"
	"booze/internal/adapter/http/handlers/mocks"
	"booze/internal/domain/entities"
	"booze/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestOrderHandler_ListOrders(t *testing.T) {
	setup := func(t *testing.T) (*mocks.MockIOrderHistoryUseCase, http.Handler) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderHistoryUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := newTestRouter()
		r.GET("/v1/orders", h.ListOrders)
		return uc, r
	}

	t.Run("customer header", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().ListByCustomer(gomock.Any(), "c1").Return([]usecase.OrderHistoryEntry{
			{
				Summary: entities.OrderSummary{OrderID: "o1", CustomerID: "c1", PaymentMode: entities.PaymentModePix, TotalAmountCents: 2800},
				Lines: []usecase.OrderHistoryLine{
					{ProductID: "p1", Quantity: 2, Name: "Cerveja"},
					{ProductID: "p2", Quantity: 1, NamePending: true},
				},
			},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders", "", map[string]string{HeaderCustomerID: "c1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []response.OrderHistoryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(res) != 1 || len(res[0].Items) != 2 || !res[0].Items[1].NamePending {
			t.Fatalf("unexpected history: %+v", res)
		}
	})

	t.Run("guest falls back to session", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().ListByCustomer(gomock.Any(), "session:s1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders", "", map[string]string{HeaderSessionID: "s1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().ListByCustomer(gomock.Any(), "c1").Return(nil, errors.New("dynamo down"))

		w := doRequest(r, http.MethodGet, "/v1/orders", "", map[string]string{HeaderCustomerID: "c1"})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
