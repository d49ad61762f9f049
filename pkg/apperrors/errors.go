// Package apperrors contains helper functions and types to work with errors
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError in case an operation returns no error.
	CategoryNoError Category = iota
	// CategoryValidation The caller sent invalid data, for example a malformed
	// transaction hash or an unknown job type. Never retried.
	CategoryValidation
	// CategoryResourceNotFound The caller is referencing a record that does not exist
	CategoryResourceNotFound
	// CategoryStateConflict The requested transition is not allowed in the record's
	// current state, for example mutating a nation with a pending transaction
	CategoryStateConflict
	// CategoryStoreFailure The local store rejected a read or write
	CategoryStoreFailure
	// CategoryNetworkFailure The chain binding failed during submission
	CategoryNetworkFailure
	// CategoryDataIntegrity Persisted data violates an assumption of the code,
	// for example a job that requires a linked nation but has none
	CategoryDataIntegrity
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "CategoryValidation"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryStateConflict:
		return "CategoryStateConflict"
	case CategoryStoreFailure:
		return "CategoryStoreFailure"
	case CategoryNetworkFailure:
		return "CategoryNetworkFailure"
	case CategoryDataIntegrity:
		return "CategoryDataIntegrity"
	default:
		return "CategoryGeneralError"
	}
}

// Translation keys carried by service errors. The presentation layer renders
// these without inspecting the wrapped error.
const (
	KeyInvalidJobType       = "system_error.tx_queue.invalid_type"
	KeyInvalidTxHash        = "system_error.tx_hash_invalid"
	KeyNoProcessor          = "system_error.tx_queue.no_processor"
	KeyNationNotFound       = "system_error.nation.does_not_exist"
	KeyAlreadySubmitted     = "system_error.nation.already_submitted"
	KeyStateMutateBlocked   = "system_error.nation.state_mutate_not_possible"
	KeyDraftSaveFailed      = "nation.draft.saved_failed"
	KeyWriteFailed          = "system_error.db_write_failed"
	KeyChainSubmitFailed    = "system_error.eth.submit_failed"
	KeyJobMissingNationLink = "system_error.tx_queue.job_without_nation"
	KeyBadRequest           = "system_error.bad_request"
)

// ServiceError represents service specific error type that is used all over
// the services. TransKey is a localization key, Params its structured payload.
type ServiceError struct {
	Category Category
	TransKey string
	Params   map[string]any
	Err      error
}

// Error method to comply with error interface
func (err *ServiceError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %v", err.TransKey, err.Err)
	}
	return err.TransKey
}

// Unwrap returns the underlying error
func (err *ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err *ServiceError) Is(target error) bool {
	var svcErr *ServiceError
	if errors.As(target, &svcErr) {
		return err.TransKey == svcErr.TransKey
	}
	return err.TransKey == target.Error()
}

// IsCategory checks that provided error is a ServiceError with desired Category
func IsCategory(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// TransKey extracts the localization key from err, or "" if err carries none.
func TransKey(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.TransKey
	}
	return ""
}

// InvalidJobType rejects an unknown transaction job type
func InvalidJobType(jobType string) error {
	return &ServiceError{
		Category: CategoryValidation,
		TransKey: KeyInvalidJobType,
		Params:   map[string]any{"type": jobType},
	}
}

// InvalidTxHash rejects a malformed transaction hash
func InvalidTxHash(txHash string) error {
	return &ServiceError{
		Category: CategoryValidation,
		TransKey: KeyInvalidTxHash,
		Params:   map[string]any{"txHash": txHash},
	}
}

// BadRequest rejects a request the API layer could not parse
func BadRequest(err error) error {
	return &ServiceError{
		Category: CategoryValidation,
		TransKey: KeyBadRequest,
		Err:      err,
	}
}

// NoProcessorForType reports a job type with no registered result handler.
// The job stays pending and is retried, so the category is data integrity
// rather than validation.
func NoProcessorForType(jobType string) error {
	return &ServiceError{
		Category: CategoryDataIntegrity,
		TransKey: KeyNoProcessor,
		Params:   map[string]any{"type": jobType},
	}
}

// JobMissingNationLink reports a nation-typed job without a linked nation
func JobMissingNationLink(txHash string) error {
	return &ServiceError{
		Category: CategoryDataIntegrity,
		TransKey: KeyJobMissingNationLink,
		Params:   map[string]any{"txHash": txHash},
	}
}

// NationNotFound reports a reference to a nation id that is not in the store
func NationNotFound(id int64) error {
	return &ServiceError{
		Category: CategoryResourceNotFound,
		TransKey: KeyNationNotFound,
		Params:   map[string]any{"id": id},
	}
}

// AlreadySubmitted rejects draft operations on a nation that is on chain
func AlreadySubmitted(id int64) error {
	return &ServiceError{
		Category: CategoryStateConflict,
		TransKey: KeyAlreadySubmitted,
		Params:   map[string]any{"id": id},
	}
}

// StateMutateNotPossible rejects a mutation while a transaction is in flight
func StateMutateNotPossible(id int64) error {
	return &ServiceError{
		Category: CategoryStateConflict,
		TransKey: KeyStateMutateBlocked,
		Params:   map[string]any{"id": id},
	}
}

// DraftSaveFailed wraps a store failure while persisting a draft
func DraftSaveFailed(err error) error {
	return &ServiceError{
		Category: CategoryStoreFailure,
		TransKey: KeyDraftSaveFailed,
		Err:      err,
	}
}

// WriteFailed wraps an arbitrary store write failure
func WriteFailed(err error) error {
	return &ServiceError{
		Category: CategoryStoreFailure,
		TransKey: KeyWriteFailed,
		Err:      err,
	}
}

// ChainSubmitFailed wraps a network error during transaction submission
func ChainSubmitFailed(err error) error {
	return &ServiceError{
		Category: CategoryNetworkFailure,
		TransKey: KeyChainSubmitFailed,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err *ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryStateConflict:
		return http.StatusConflict
	case CategoryNetworkFailure:
		return http.StatusBadGateway
	case CategoryStoreFailure, CategoryDataIntegrity, CategoryGeneralError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
