package transaction

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/service"
)

// SubmitCandidateBody is a capture produced by a parser or typed in by the user.
// Enum fields are passed through as text so that unknown values come back as
// validation errors on a REJECTED outcome.
type SubmitCandidateBody struct {
	Timestamp        int64    `json:"timestamp" doc:"Epoch milliseconds of the underlying event"`
	Amount           float64  `json:"amount" doc:"Amount, must be non-negative"`
	Merchant         string   `json:"merchant,omitempty" doc:"Raw parsed merchant"`
	Category         *string  `json:"category,omitempty" doc:"Legacy free-text category"`
	CategoryID       *string  `json:"categoryId,omitempty" doc:"Stable category UUID"`
	CategoryName     *string  `json:"categoryName,omitempty" doc:"Category name snapshot, required with categoryId"`
	AccountType      *string  `json:"accountType,omitempty"`
	TransactionType  string   `json:"transactionType" doc:"DEBIT or CREDIT"`
	PaymentMode      string   `json:"paymentMode" doc:"UPI, CARD, CASH or BANK"`
	SourceType       string   `json:"sourceType" doc:"SMS, NOTIFICATION, MANUAL or EMAIL"`
	EntryType        string   `json:"entryType" doc:"AUTO_CAPTURED, USER_ENTERED or USER_MODIFIED"`
	ConfidenceScore  float64  `json:"confidenceScore" doc:"Parser confidence in [0, 1]"`
	ContentHash      *string  `json:"contentHash,omitempty" doc:"Fingerprint of the raw source text"`
	RawText          *string  `json:"rawText,omitempty" doc:"Raw source text, fingerprinted when contentHash is absent"`
	ParserVersion    int      `json:"parserVersion,omitempty" doc:"Defaults to 1"`
	SenderID         *string  `json:"senderId,omitempty"`
	SenderTrustScore *float64 `json:"senderTrustScore,omitempty" doc:"Sender trust in [0, 1]"`
	Notes            *string  `json:"notes,omitempty"`
	TripID           *int64   `json:"tripId,omitempty"`
}

// SubmitCandidateInput is the Huma input for submitting a candidate.
type SubmitCandidateInput struct {
	Body SubmitCandidateBody
}

// SubmitCandidateResponseBody reports what happened to the candidate.
type SubmitCandidateResponseBody struct {
	Outcome     string       `json:"outcome" enum:"ACCEPTED,DUPLICATE,REJECTED"`
	Transaction *Transaction `json:"transaction,omitempty" doc:"Stored record, present when accepted"`
	Errors      []string     `json:"errors" doc:"Invariant violations"`
	Warnings    []string     `json:"warnings" doc:"Policy warnings"`
}

// SubmitCandidateOutput is the Huma output for submitting a candidate.
type SubmitCandidateOutput struct {
	Status int
	Body   SubmitCandidateResponseBody
}

// candidateAccepter is the interface for accepting candidates.
type candidateAccepter interface {
	AcceptCandidate(ctx context.Context, candidate *ledger.Transaction) (service.AcceptResult, error)
}

// SubmitCandidateHandler handles POST /v1/transaction/candidate.
type SubmitCandidateHandler struct {
	IntegrityService candidateAccepter
}

// NewSubmitCandidateHandler creates a new SubmitCandidateHandler.
func NewSubmitCandidateHandler(svc candidateAccepter) *SubmitCandidateHandler {
	return &SubmitCandidateHandler{IntegrityService: svc}
}

// Register registers the submit candidate endpoint with the Huma API.
func (h *SubmitCandidateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-candidate",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/candidate",
		Summary:     "Submit candidate transaction",
		Description: "Deduplicates, validates and stores a captured transaction as pending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseSubmitCandidateInput builds the candidate record. Only the category id is checked
// here; everything else is left to the validator.
func parseSubmitCandidateInput(input *SubmitCandidateInput) (*ledger.Transaction, error) {
	body := input.Body
	tx := &ledger.Transaction{
		Timestamp:        body.Timestamp,
		Amount:           body.Amount,
		Merchant:         body.Merchant,
		AccountType:      body.AccountType,
		TransactionType:  ledger.TransactionType(strings.ToUpper(body.TransactionType)),
		PaymentMode:      ledger.PaymentMode(strings.ToUpper(body.PaymentMode)),
		SourceType:       ledger.SourceType(strings.ToUpper(body.SourceType)),
		EntryType:        ledger.EntryType(strings.ToUpper(body.EntryType)),
		ConfidenceScore:  body.ConfidenceScore,
		ContentHash:      body.ContentHash,
		ParserVersion:    body.ParserVersion,
		SenderID:         body.SenderID,
		SenderTrustScore: body.SenderTrustScore,
		Notes:            body.Notes,
		TripID:           body.TripID,
		Category: ledger.CategoryRef{
			Legacy:       body.Category,
			NameSnapshot: body.CategoryName,
		},
	}

	if body.CategoryID != nil {
		id, err := uuid.FromString(*body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		tx.Category.ID = &id
	}

	if ledger.IsBlank(tx.ContentHash) && !ledger.IsBlank(body.RawText) {
		hash := ledger.Fingerprint(*body.RawText)
		tx.ContentHash = &hash
	}

	return tx, nil
}

func (h *SubmitCandidateHandler) handle(ctx context.Context, input *SubmitCandidateInput) (*SubmitCandidateOutput, error) {
	logData := logging.GetLogData(ctx)
	candidate, err := parseSubmitCandidateInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("acceptCandidateMs")
	}
	result, err := h.IntegrityService.AcceptCandidate(ctx, candidate)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to accept candidate", err)
	}

	if logData != nil {
		logData.AddData("outcome", result.Outcome)
	}

	resp := SubmitCandidateResponseBody{
		Outcome:  string(result.Outcome),
		Errors:   nonNil(result.Validation.Errors),
		Warnings: nonNil(result.Validation.Warnings),
	}
	status := http.StatusOK
	if result.Transaction != nil {
		tx := toAPITransaction(result.Transaction, "")
		resp.Transaction = &tx
		status = http.StatusCreated
	}

	return &SubmitCandidateOutput{Status: status, Body: resp}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
