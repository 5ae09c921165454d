package errors

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeAlreadyExists  Code = "already_exists"
	CodeInvalidRequest Code = "invalid_request"
	CodeInternal       Code = "internal_error"
	CodeUnavailable    Code = "unavailable"
)

// ============================================================================
// Distribution Errors
// ============================================================================

var (
	// ErrDistributionNotFound is returned when no installed distribution
	// matches the requested name patterns
	ErrDistributionNotFound = New(DomainDistribution, CodeNotFound, 1,
		"Distribution not found")

	// ErrDistributionExists is returned when registering a distribution whose
	// name is already taken
	ErrDistributionExists = New(DomainDistribution, CodeAlreadyExists, 1,
		"Distribution already exists")
)

// ============================================================================
// Tool Errors
// ============================================================================

var (
	// ErrToolExec is returned when wsl.exe exits with a non-zero status
	ErrToolExec = New(DomainTool, "exec_failed", 1,
		"wsl.exe reported an error")

	// ErrToolNotFound is returned when wsl.exe cannot be located
	ErrToolNotFound = New(DomainTool, CodeNotFound, 1,
		"wsl.exe not found")

	// ErrToolOutput is returned when wsl.exe output does not have the
	// expected shape
	ErrToolOutput = New(DomainTool, "bad_output", 1,
		"Unexpected wsl.exe output")
)

// ============================================================================
// Store Errors
// ============================================================================

var (
	// ErrStoreUnavailable is returned when the distribution configuration
	// store cannot be opened
	ErrStoreUnavailable = New(DomainStore, CodeUnavailable, 1,
		"Configuration store unavailable")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	// ErrDestinationExists is returned when an export target already exists
	ErrDestinationExists = New(DomainValidation, "destination_exists", 1,
		"Destination already exists")

	// ErrInvalidPattern is returned when a name pattern fails to compile
	ErrInvalidPattern = New(DomainValidation, "invalid_pattern", 1,
		"Invalid name pattern")

	// ErrInvalidFieldValue is returned when a parameter value is invalid
	ErrInvalidFieldValue = New(DomainValidation, "invalid_value", 1,
		"Invalid field value")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrInternal is a generic internal error
	ErrInternal = New(DomainInternal, CodeInternal, 1,
		"Internal error")
)
