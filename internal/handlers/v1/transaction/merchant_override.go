package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/service"
)

// SetMerchantOverrideBody carries the new override. Null or blank clears it.
type SetMerchantOverrideBody struct {
	MerchantOverride *string `json:"merchantOverride,omitempty" maxLength:"200" doc:"Display name to show instead of the parsed merchant"`
}

// SetMerchantOverrideInput is the Huma input for setting a merchant override.
type SetMerchantOverrideInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Transaction id"`
	Body SetMerchantOverrideBody
}

// SetMerchantOverrideOutput is the Huma output for setting a merchant override.
type SetMerchantOverrideOutput struct {
	Body Transaction
}

// merchantOverrider is the interface for setting merchant overrides.
type merchantOverrider interface {
	SetMerchantOverride(ctx context.Context, id int64, override *string) (*ledger.Transaction, error)
}

// SetMerchantOverrideHandler handles PUT /v1/transaction/{id}/merchant-override.
type SetMerchantOverrideHandler struct {
	IntegrityService merchantOverrider
}

// NewSetMerchantOverrideHandler creates a new SetMerchantOverrideHandler.
func NewSetMerchantOverrideHandler(svc merchantOverrider) *SetMerchantOverrideHandler {
	return &SetMerchantOverrideHandler{IntegrityService: svc}
}

// Register registers the merchant override endpoint with the Huma API.
func (h *SetMerchantOverrideHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-merchant-override",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}/merchant-override",
		Summary:     "Set merchant override",
		Description: "Sets or clears the user's display name for one transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SetMerchantOverrideHandler) handle(ctx context.Context, input *SetMerchantOverrideInput) (*SetMerchantOverrideOutput, error) {
	tx, err := h.IntegrityService.SetMerchantOverride(ctx, input.ID, input.Body.MerchantOverride)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set merchant override", err)
	}

	displayName := ""
	if tx.MerchantOverride != nil {
		displayName = *tx.MerchantOverride
	}
	return &SetMerchantOverrideOutput{Body: toAPITransaction(tx, displayName)}, nil
}
