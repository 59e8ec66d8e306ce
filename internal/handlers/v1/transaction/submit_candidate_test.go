package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/service"
	"github.com/carson-networks/txn-integrity/internal/validator"
)

type mockCandidateAccepter struct {
	mock.Mock
}

func (m *mockCandidateAccepter) AcceptCandidate(ctx context.Context, candidate *ledger.Transaction) (service.AcceptResult, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(service.AcceptResult), args.Error(1)
}

func newSubmitTestAPI(t *testing.T, svc candidateAccepter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSubmitCandidateHandler(svc).Register(api)
	return api
}

func validBody() SubmitCandidateBody {
	return SubmitCandidateBody{
		Timestamp:       1717000000000,
		Amount:          250.75,
		Merchant:        "SWGY",
		TransactionType: "debit",
		PaymentMode:     "upi",
		SourceType:      "sms",
		EntryType:       "auto_captured",
		ConfidenceScore: 0.9,
		ContentHash:     ledger.StringPtr("hash-1"),
	}
}

// -- parseSubmitCandidateInput unit tests --

func TestParseSubmitCandidateInput_UpperCasesEnums(t *testing.T) {
	tx, err := parseSubmitCandidateInput(&SubmitCandidateInput{Body: validBody()})
	require.NoError(t, err)

	assert.Equal(t, ledger.TransactionType("DEBIT"), tx.TransactionType)
	assert.Equal(t, ledger.PaymentMode("UPI"), tx.PaymentMode)
	assert.Equal(t, ledger.SourceType("SMS"), tx.SourceType)
	assert.Equal(t, ledger.EntryType("AUTO_CAPTURED"), tx.EntryType)
	assert.Equal(t, "hash-1", *tx.ContentHash)
}

func TestParseSubmitCandidateInput_FingerprintsRawText(t *testing.T) {
	body := validBody()
	body.ContentHash = nil
	body.RawText = ledger.StringPtr("Rs 250.75 debited  via UPI")

	tx, err := parseSubmitCandidateInput(&SubmitCandidateInput{Body: body})
	require.NoError(t, err)

	require.NotNil(t, tx.ContentHash)
	assert.Equal(t, ledger.Fingerprint("Rs 250.75 debited via UPI"), *tx.ContentHash)
}

func TestParseSubmitCandidateInput_ExplicitHashWins(t *testing.T) {
	body := validBody()
	body.RawText = ledger.StringPtr("Rs 250.75 debited")

	tx, err := parseSubmitCandidateInput(&SubmitCandidateInput{Body: body})
	require.NoError(t, err)
	assert.Equal(t, "hash-1", *tx.ContentHash)
}

func TestParseSubmitCandidateInput_CategoryID(t *testing.T) {
	body := validBody()
	body.CategoryID = ledger.StringPtr("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")
	body.CategoryName = ledger.StringPtr("Food")

	tx, err := parseSubmitCandidateInput(&SubmitCandidateInput{Body: body})
	require.NoError(t, err)
	require.NotNil(t, tx.Category.ID)
	assert.Equal(t, "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", tx.Category.ID.String())
	assert.Equal(t, "Food", *tx.Category.NameSnapshot)
}

func TestParseSubmitCandidateInput_InvalidCategoryID(t *testing.T) {
	body := validBody()
	body.CategoryID = ledger.StringPtr("not-a-uuid")

	_, err := parseSubmitCandidateInput(&SubmitCandidateInput{Body: body})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_SubmitCandidate_Accepted(t *testing.T) {
	stored := &ledger.Transaction{
		ID:              7,
		Amount:          250.75,
		Merchant:        "SWGY",
		TransactionType: ledger.TransactionType("DEBIT"),
		PaymentMode:     ledger.PaymentMode("UPI"),
		SourceType:      ledger.SourceType("SMS"),
		EntryType:       ledger.EntryType("AUTO_CAPTURED"),
		Status:          ledger.Status("DETECTED"),
		ContentHash:     ledger.StringPtr("hash-1"),
	}

	mockSvc := new(mockCandidateAccepter)
	mockSvc.On("AcceptCandidate", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
		return tx.Merchant == "SWGY" && *tx.ContentHash == "hash-1"
	})).Return(service.AcceptResult{
		Outcome:     service.OutcomeAccepted,
		Transaction: stored,
		Validation:  validator.Result{Valid: true, Warnings: []string{"low confidence"}},
	}, nil)

	resp := newSubmitTestAPI(t, mockSvc).Post("/v1/transaction/candidate", validBody())

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body SubmitCandidateResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ACCEPTED", body.Outcome)
	require.NotNil(t, body.Transaction)
	assert.Equal(t, int64(7), body.Transaction.ID)
	assert.Equal(t, "DETECTED", body.Transaction.Status)
	assert.Empty(t, body.Errors)
	assert.Equal(t, []string{"low confidence"}, body.Warnings)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SubmitCandidate_Duplicate(t *testing.T) {
	mockSvc := new(mockCandidateAccepter)
	mockSvc.On("AcceptCandidate", mock.Anything, mock.Anything).
		Return(service.AcceptResult{Outcome: service.OutcomeDuplicate}, nil)

	resp := newSubmitTestAPI(t, mockSvc).Post("/v1/transaction/candidate", validBody())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SubmitCandidateResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DUPLICATE", body.Outcome)
	assert.Nil(t, body.Transaction)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SubmitCandidate_Rejected(t *testing.T) {
	mockSvc := new(mockCandidateAccepter)
	mockSvc.On("AcceptCandidate", mock.Anything, mock.Anything).
		Return(service.AcceptResult{
			Outcome:    service.OutcomeRejected,
			Validation: validator.Result{Errors: []string{"amount must be non-negative, got -5"}},
		}, nil)

	body := validBody()
	body.Amount = -5
	resp := newSubmitTestAPI(t, mockSvc).Post("/v1/transaction/candidate", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	var out SubmitCandidateResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "REJECTED", out.Outcome)
	assert.Equal(t, []string{"amount must be non-negative, got -5"}, out.Errors)
	assert.Equal(t, []string{}, out.Warnings)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SubmitCandidate_InvalidCategoryID(t *testing.T) {
	mockSvc := new(mockCandidateAccepter)

	body := validBody()
	body.CategoryID = ledger.StringPtr("not-a-uuid")
	resp := newSubmitTestAPI(t, mockSvc).Post("/v1/transaction/candidate", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "AcceptCandidate")
}

func TestHTTP_SubmitCandidate_ServiceError(t *testing.T) {
	mockSvc := new(mockCandidateAccepter)
	mockSvc.On("AcceptCandidate", mock.Anything, mock.Anything).
		Return(service.AcceptResult{}, errors.New("database unavailable"))

	resp := newSubmitTestAPI(t, mockSvc).Post("/v1/transaction/candidate", validBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
