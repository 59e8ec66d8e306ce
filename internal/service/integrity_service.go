package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/txn-integrity/internal/audit"
	"github.com/carson-networks/txn-integrity/internal/dedup"
	"github.com/carson-networks/txn-integrity/internal/ledger"
	"github.com/carson-networks/txn-integrity/internal/metrics"
	"github.com/carson-networks/txn-integrity/internal/storage"
	"github.com/carson-networks/txn-integrity/internal/validator"
)

// IntegrityService sequences the detector, validator and audit logger around every write.
// Duplicate checks always precede persistence and audit logging always follows it.
type IntegrityService struct {
	transactions storage.TransactionStore
	detector     *dedup.Detector
	locks        *dedup.KeyedMutex
	validator    *validator.Validator
	audit        *audit.Logger
	log          *logrus.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewIntegrityService(store *storage.Storage, auditLogger *audit.Logger, log *logrus.Logger, m *metrics.Metrics) *IntegrityService {
	if m == nil {
		m = metrics.NewNop()
	}
	return &IntegrityService{
		transactions: store.Transactions,
		detector:     dedup.NewDetector(store.Transactions),
		locks:        dedup.NewKeyedMutex(),
		validator:    validator.New(),
		audit:        auditLogger,
		log:          log,
		metrics:      m,
		now:          time.Now,
	}
}

// AcceptCandidate runs the accept workflow for one capture. Duplicates and invalid
// candidates are reported through the outcome, not as errors; only store failures
// produce an error.
func (s *IntegrityService) AcceptCandidate(ctx context.Context, candidate *ledger.Transaction) (AcceptResult, error) {
	if candidate == nil {
		return AcceptResult{}, errors.New("service: candidate is nil")
	}

	tx := candidate.Clone()
	tx.ID = 0

	if !ledger.IsBlank(tx.ContentHash) {
		unlock := s.locks.Lock(*tx.ContentHash)
		defer unlock()
	}

	duplicate, err := s.detector.IsDuplicate(ctx, tx.ContentHash)
	if err != nil {
		return AcceptResult{}, err
	}
	if duplicate {
		return s.finish(AcceptResult{Outcome: OutcomeDuplicate}, tx), nil
	}

	s.normalizePending(tx)

	result := s.validator.Validate(tx)
	if !result.Valid {
		return s.finish(AcceptResult{Outcome: OutcomeRejected, Validation: result}, tx), nil
	}

	id, err := s.transactions.Insert(ctx, tx)
	if errors.Is(err, ledger.ErrDuplicateFingerprint) {
		return s.finish(AcceptResult{Outcome: OutcomeDuplicate}, tx), nil
	}
	if err != nil {
		return AcceptResult{}, fmt.Errorf("service: insert candidate: %w", err)
	}
	tx.ID = id

	s.audit.LogChanges(ctx, nil, tx, creationSource(tx))

	return s.finish(AcceptResult{Outcome: OutcomeAccepted, Transaction: tx, Validation: result}, tx), nil
}

func (s *IntegrityService) finish(res AcceptResult, tx *ledger.Transaction) AcceptResult {
	s.metrics.CandidateOutcome(res.Outcome.metricLabel())

	entry := s.log.WithFields(logrus.Fields{
		"outcome":    res.Outcome,
		"sourceType": tx.SourceType,
	})
	switch res.Outcome {
	case OutcomeAccepted:
		entry.WithField("transactionId", tx.ID).Info("IntegrityService.AcceptCandidate.accepted")
	case OutcomeDuplicate:
		entry.Debug("IntegrityService.AcceptCandidate.duplicate")
	case OutcomeRejected:
		entry.WithField("errors", res.Validation.Errors).Warn("IntegrityService.AcceptCandidate.rejected")
	}
	return res
}

// normalizePending marks a candidate as an unapproved, freshly detected record and fills
// in bookkeeping fields the capture layer may leave empty.
func (s *IntegrityService) normalizePending(tx *ledger.Transaction) {
	tx.IsApproved = false
	tx.Status = ledger.StatusDetected
	if tx.SchemaVersion == 0 {
		tx.SchemaVersion = 1
	}
	if tx.ParserVersion == 0 {
		tx.ParserVersion = 1
	}

	now := s.now().UnixMilli()
	if tx.CreatedAt == 0 {
		tx.CreatedAt = now
	}
	if tx.UpdatedAt == 0 {
		tx.UpdatedAt = max(now, tx.CreatedAt)
	}
}

// creationSource attributes a new record to the user when they typed it in.
func creationSource(tx *ledger.Transaction) ledger.ChangeSource {
	if tx.EntryType == ledger.EntryTypeUserEntered {
		return ledger.ChangeSourceUserEdit
	}
	return ledger.ChangeSourceParserUpdate
}

// UpdateTransaction stores an edited record and logs the tracked fields that changed.
// The creation time is carried over from the stored record and the update time is bumped.
func (s *IntegrityService) UpdateTransaction(ctx context.Context, next *ledger.Transaction, source ledger.ChangeSource) (*ledger.Transaction, validator.Result, error) {
	if next == nil {
		return nil, validator.Result{}, errors.New("service: transaction is nil")
	}
	if !source.Valid() {
		return nil, validator.Result{}, &ledger.UnknownValueError{Enum: "ChangeSource", Value: string(source)}
	}

	prior, err := s.transactions.FindByID(ctx, next.ID)
	if err != nil {
		return nil, validator.Result{}, err
	}

	tx := next.Clone()
	tx.CreatedAt = prior.CreatedAt
	tx.UpdatedAt = max(s.now().UnixMilli(), prior.UpdatedAt, prior.CreatedAt)

	result := s.validator.Validate(tx)
	if !result.Valid {
		s.log.WithFields(logrus.Fields{
			"transactionId": tx.ID,
			"errors":        result.Errors,
		}).Warn("IntegrityService.UpdateTransaction.rejected")
		return nil, result, ErrInvalidTransaction
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, result, err
	}

	logged := s.audit.LogChanges(ctx, prior, tx, source)
	s.log.WithFields(logrus.Fields{
		"transactionId": tx.ID,
		"changes":       logged,
		"source":        source,
	}).Info("IntegrityService.UpdateTransaction.updated")

	return tx, result, nil
}

// SetMerchantOverride sets or clears the user's display name for a record. A blank
// override clears it. Setting the current value is a no-op and logs nothing.
func (s *IntegrityService) SetMerchantOverride(ctx context.Context, id int64, override *string) (*ledger.Transaction, error) {
	if ledger.IsBlank(override) {
		override = nil
	}

	prior, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equalOptional(prior.MerchantOverride, override) {
		return prior, nil
	}

	tx := prior.Clone()
	tx.MerchantOverride = override
	tx.UpdatedAt = max(s.now().UnixMilli(), prior.UpdatedAt, prior.CreatedAt)

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.audit.LogFieldChange(ctx, id, ledger.FieldMerchantOverride, prior.MerchantOverride, override, ledger.ChangeSourceUserEdit)
	return tx, nil
}

// RunIntegrityCheck validates every stored record, typically after a migration or bulk
// edit, and logs a pass or fail report.
func (s *IntegrityService) RunIntegrityCheck(ctx context.Context, reason string) (*IntegrityReport, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list for integrity check: %w", err)
	}

	batch := s.validator.ValidateAll(txs)
	report := &IntegrityReport{
		Reason:    reason,
		Passed:    batch.Valid,
		Total:     batch.Total,
		Invalid:   batch.Invalid,
		Errors:    batch.Errors,
		Warnings:  batch.Warnings,
		CheckedAt: s.now().UTC(),
	}
	s.metrics.IntegrityVerdict(report.Passed, report.Invalid)

	entry := s.log.WithFields(logrus.Fields{
		"reason":   reason,
		"total":    report.Total,
		"invalid":  report.Invalid,
		"warnings": len(report.Warnings),
	})
	if report.Passed {
		entry.Info("IntegrityService.RunIntegrityCheck.passed")
	} else {
		entry.Error("IntegrityService.RunIntegrityCheck.failed")
		for _, line := range report.Errors {
			s.log.WithField("reason", reason).Error(line)
		}
	}
	for _, line := range report.Warnings {
		s.log.WithField("reason", reason).Warn(line)
	}

	if s.log.IsLevelEnabled(logrus.DebugLevel) {
		byID := make(map[int64]*ledger.Transaction, len(txs))
		for _, tx := range txs {
			if tx != nil {
				byID[tx.ID] = tx
			}
		}
		for _, rec := range batch.InvalidRecords() {
			s.log.WithField("transactionId", rec.TransactionID).
				Debugf("IntegrityService.RunIntegrityCheck.invalidRecord %s", spew.Sdump(byID[rec.TransactionID]))
		}
	}

	return report, nil
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
