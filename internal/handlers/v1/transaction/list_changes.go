package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/service"
)

// ListChangesInput is the Huma input for reading a change log.
type ListChangesInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction id"`
}

// ListChangesResponseBody is the response body for reading a change log.
type ListChangesResponseBody struct {
	Changes []ChangeEntry `json:"changes" doc:"Retained change entries, oldest first"`
}

// ListChangesOutput is the Huma output for reading a change log.
type ListChangesOutput struct {
	Body ListChangesResponseBody
}

// historyReader is the interface for reading change logs.
type historyReader interface {
	History(ctx context.Context, id int64) ([]ledger.ChangeEntry, error)
}

// ListChangesHandler handles GET /v1/transaction/{id}/changes.
type ListChangesHandler struct {
	TransactionService historyReader
}

// NewListChangesHandler creates a new ListChangesHandler.
func NewListChangesHandler(svc historyReader) *ListChangesHandler {
	return &ListChangesHandler{TransactionService: svc}
}

// Register registers the change log endpoint with the Huma API.
func (h *ListChangesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transaction-changes",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}/changes",
		Summary:     "List transaction changes",
		Description: "Returns the field-level audit trail of one transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListChangesHandler) handle(ctx context.Context, input *ListChangesInput) (*ListChangesOutput, error) {
	entries, err := h.TransactionService.History(ctx, input.ID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read changes", err)
	}

	resp := ListChangesResponseBody{Changes: make([]ChangeEntry, len(entries))}
	for i, e := range entries {
		resp.Changes[i] = toAPIChangeEntry(e)
	}
	return &ListChangesOutput{Body: resp}, nil
}
