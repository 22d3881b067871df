package handlers

import (
	"errors"
	"net/http"

	"booze/internal/domain/entities"
	"booze/internal/domain/store"
	"booze/internal/usecase"
	"booze/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapStoreError translates session, catalog and checkout errors into the API
// error envelope.
func mapStoreError(err error) *pkg.AppError {
	var persistErr *usecase.PersistenceFailure

	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainError("EMPTY_CART", "Cart is empty", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAddressNotConfirmed):
		return pkg.NewDomainError("ADDRESS_NOT_CONFIRMED", "Delivery address not confirmed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentModeNotSelected):
		return pkg.NewDomainError("PAYMENT_MODE_REQUIRED", "Payment mode not selected", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmitInProgress):
		return pkg.NewDomainError("SUBMIT_IN_PROGRESS", "Order submission already in progress", err, http.StatusConflict)
	case errors.As(err, &persistErr):
		return pkg.NewDomainError("ORDER_PERSISTENCE_FAILED", "Order could not be saved, try again", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", "Product not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidPaymentMode),
		errors.Is(err, entities.ErrInvalidAddress),
		errors.Is(err, entities.ErrUnknownPaymentMode),
		errors.Is(err, store.ErrInvalidProductID),
		errors.Is(err, store.ErrInvalidUnitPrice):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
