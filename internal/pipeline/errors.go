package pipeline

import (
	"errors"
	"fmt"

	"github.com/jonathan/leadscout/internal/enrich"
)

// ErrKind classifies a pipeline failure.
type ErrKind string

// Error kinds. Validation covers malformed or missing step input, Enrichment
// covers semantically negative capability responses (not-found, incomplete
// record), API covers transport and status failures.
const (
	KindValidation ErrKind = "validation"
	KindEnrichment ErrKind = "enrichment"
	KindAPI        ErrKind = "api"
)

// Stable short error codes surfaced in the result envelope.
const (
	CodeEmptyQuery           = "EMPTY_QUERY"
	CodeCompanyNotIdentified = "COMPANY_NOT_IDENTIFIED"
	CodeInvalidDomain        = "INVALID_DOMAIN"
	CodeDomainNotFound       = "DOMAIN_NOT_FOUND"
	CodeCompanyNotFound      = "COMPANY_NOT_FOUND"
	CodeIncompleteRecord     = "COMPANY_RECORD_INCOMPLETE"
	CodeMissingInput         = "MISSING_INPUT"
	CodeSearchAPIError       = "SEARCH_API_ERROR"
	CodeEnrichAPIError       = "ENRICH_API_ERROR"
	CodeLLMAPIError          = "LLM_API_ERROR"
	CodeUnknownStep          = "UNKNOWN_STEP"
)

// StepError is the closed error value steps store in the state instead of
// propagating faults. It never crosses the executor boundary as a panic or
// returned error.
type StepError struct {
	Kind    ErrKind `json:"kind"`
	Code    string  `json:"code"`
	Message string  `json:"message"`
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
}

func validationErr(code, format string, args ...any) *StepError {
	return &StepError{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func enrichmentErr(code, format string, args ...any) *StepError {
	return &StepError{Kind: KindEnrichment, Code: code, Message: fmt.Sprintf(format, args...)}
}

func apiErr(code, format string, args ...any) *StepError {
	return &StepError{Kind: KindAPI, Code: code, Message: fmt.Sprintf(format, args...)}
}

// fromEnrichError maps the enrichment client's typed errors onto the
// pipeline's taxonomy, distinguishing transport failures from not-found.
func fromEnrichError(err error) *StepError {
	var notFound *enrich.NotFoundError
	if errors.As(err, &notFound) {
		return enrichmentErr(CodeCompanyNotFound, "no company record for domain %s", notFound.Domain)
	}

	var invalid *enrich.InvalidRecordError
	if errors.As(err, &invalid) {
		return enrichmentErr(CodeIncompleteRecord, "company record for %s is missing required fields %v", invalid.Domain, invalid.Missing)
	}

	return apiErr(CodeEnrichAPIError, "enrichment call failed: %v", err)
}
