package integrity

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/txn-integrity/internal/logging"
	"github.com/carson-networks/txn-integrity/internal/service"
)

// RunCheckBody is the request body for an integrity check.
type RunCheckBody struct {
	Reason string `json:"reason,omitempty" maxLength:"200" doc:"Why the check is being run, e.g. post-migration"`
}

// RunCheckInput is the Huma input for an integrity check.
type RunCheckInput struct {
	Body RunCheckBody
}

// RunCheckOutput is the Huma output for an integrity check.
type RunCheckOutput struct {
	Body service.IntegrityReport
}

// integrityChecker is the interface for running integrity checks.
type integrityChecker interface {
	RunIntegrityCheck(ctx context.Context, reason string) (*service.IntegrityReport, error)
}

// RunCheckHandler handles POST /v1/integrity/check.
type RunCheckHandler struct {
	IntegrityService integrityChecker
}

// NewRunCheckHandler creates a new RunCheckHandler.
func NewRunCheckHandler(svc integrityChecker) *RunCheckHandler {
	return &RunCheckHandler{IntegrityService: svc}
}

// Register registers the integrity check endpoint with the Huma API.
func (h *RunCheckHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "run-integrity-check",
		Method:      http.MethodPost,
		Path:        "/v1/integrity/check",
		Summary:     "Run integrity check",
		Description: "Validates every stored transaction and returns a pass or fail report. A failing report is still a 200.",
		Tags:        []string{"Integrity"},
	}, h.handle)
}

func (h *RunCheckHandler) handle(ctx context.Context, input *RunCheckInput) (*RunCheckOutput, error) {
	reason := input.Body.Reason
	if reason == "" {
		reason = "manual"
	}

	report, err := h.IntegrityService.RunIntegrityCheck(ctx, reason)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to run integrity check", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("passed", report.Passed)
		logData.AddData("invalid", report.Invalid)
	}

	return &RunCheckOutput{Body: *report}, nil
}
