package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/service"
)

const defaultPageLimit = 100

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
type ListTransactionsCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"500" doc:"Page size used for this cursor"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions with resolved display names"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListWithDisplayNames(ctx context.Context) ([]service.TransactionView, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns transactions in id order with merchant display names resolved.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns the page bounds. Without a cursor the first page of
// the default size is returned.
func parseListTransactionsInput(input *ListTransactionsInput) (position int, limit int) {
	if input.Body.Cursor == nil {
		return 0, defaultPageLimit
	}
	limit = input.Body.Cursor.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	return input.Body.Cursor.Position, limit
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	position, limit := parseListTransactionsInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	views, err := h.TransactionService.ListWithDisplayNames(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(views))
	}

	start := min(position, len(views))
	end := min(start+limit, len(views))
	page := views[start:end]

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page)),
	}
	for i, v := range page {
		resp.Transactions[i] = toAPITransaction(v.Transaction, v.DisplayName)
	}

	if end < len(views) {
		resp.NextCursor = &ListTransactionsCursor{Position: end, Limit: limit}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
