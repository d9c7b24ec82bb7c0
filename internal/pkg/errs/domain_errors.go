package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Batch ledger errors
	ErrBatchNotFound           = errors.New("batch not found")
	ErrDuplicateBatchNumber    = errors.New("duplicate batch number")
	ErrInvalidStatusTransition = errors.New("invalid batch status transition")

	// Load tracking errors
	ErrLoadNotFound        = errors.New("load not found")
	ErrSnapshotNotFound    = errors.New("drawer status not found")
	ErrLoadAlreadyDepleted = errors.New("load already depleted")
	ErrBatchAlreadyLoaded  = errors.New("batch already active in drawer")

	// Reference data errors
	ErrDrawerNotFound        = errors.New("drawer not found")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrDuplicateDrawerCode   = errors.New("duplicate drawer code")
	ErrDuplicateEmployeeCode = errors.New("duplicate employee code")

	// Restock history errors
	ErrHistoryEntryNotFound = errors.New("restock history entry not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
