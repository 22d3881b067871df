package request

import (
	"errors"
	"testing"

	"booze/internal/domain/entities"
)

func TestAddCartItemRequest_ResolveProductID(t *testing.T) {
	if got := (AddCartItemRequest{ProductID: "  p1 "}).ResolveProductID(); got != "p1" {
		t.Fatalf("expected p1, got %q", got)
	}
	if got := (AddCartItemRequest{ProductID: "   "}).ResolveProductID(); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}

func TestAddressRequest_ToEntity(t *testing.T) {
	r := AddressRequest{
		Street:       " Rua das Flores ",
		Number:       "10",
		Complement:   " apto 2 ",
		Neighborhood: "Centro",
		City:         "Curitiba",
		State:        " pr",
		ZipCode:      "80000-000",
	}

	addr := r.ToEntity()
	if addr.Street != "Rua das Flores" || addr.Complement != "apto 2" {
		t.Fatalf("expected trimmed fields, got %+v", addr)
	}
	if addr.State != "PR" {
		t.Fatalf("expected upper-cased state, got %q", addr.State)
	}
	if err := addr.Validate(); err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}
}

func TestCheckoutRequest_ResolvePaymentMode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    entities.PaymentMode
		wantErr error
	}{
		{name: "empty means not selected", raw: "", want: ""},
		{name: "blank means not selected", raw: "   ", want: ""},
		{name: "pix", raw: "pix", want: entities.PaymentModePix},
		{name: "case and spaces", raw: " CREDITO ", want: entities.PaymentModeCredito},
		{name: "debito", raw: "debito", want: entities.PaymentModeDebito},
		{name: "unknown", raw: "boleto", wantErr: entities.ErrUnknownPaymentMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckoutRequest{PaymentMode: tt.raw}.ResolvePaymentMode()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
