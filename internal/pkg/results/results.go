package results

// Kind discriminates the populated variant of a Result.
type Kind int

const (
	// KindSuccess indicates the operation completed and Value holds the payload.
	KindSuccess Kind = iota

	// KindValidationFailure indicates user input or a business rule was violated.
	KindValidationFailure

	// KindNotFound indicates a referenced entity is absent.
	KindNotFound

	// KindUnauthorized indicates the caller lacks a required role.
	KindUnauthorized

	// KindUnexpectedError indicates a storage or unforeseen fault.
	KindUnexpectedError

	// KindAlreadyExists indicates a uniqueness conflict on creation.
	KindAlreadyExists

	// KindInUse indicates a deletion blocked by referencing entities.
	KindInUse
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindValidationFailure:
		return "ValidationFailure"
	case KindNotFound:
		return "NotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindUnexpectedError:
		return "UnexpectedError"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindInUse:
		return "InUse"
	default:
		return "Unknown"
	}
}

// ValidationError describes a single violated rule and the fields that caused it.
type ValidationError struct {
	Message    string
	FieldNames []string
}

// Result is a tagged union over the operation outcome variants.
// Exactly one variant is populated; Kind reports which.
type Result[T any] struct {
	kind                Kind
	value               T
	validationErrors    []ValidationError
	message             string
	requiredRole        string
	cause               error
	referencingEntities []string
}

// Ok creates a Success result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{kind: KindSuccess, value: value}
}

// Invalid creates a ValidationFailure result carrying all violated rules.
func Invalid[T any](validationErrors ...ValidationError) Result[T] {
	return Result[T]{kind: KindValidationFailure, validationErrors: validationErrors}
}

// NotFound creates a NotFound result with a message naming the absent entity.
func NotFound[T any](message string) Result[T] {
	return Result[T]{kind: KindNotFound, message: message}
}

// Unauthorized creates an Unauthorized result. requiredRole may be empty.
func Unauthorized[T any](message, requiredRole string) Result[T] {
	return Result[T]{kind: KindUnauthorized, message: message, requiredRole: requiredRole}
}

// Unexpected creates an UnexpectedError result retaining the original fault.
func Unexpected[T any](message string, cause error) Result[T] {
	return Result[T]{kind: KindUnexpectedError, message: message, cause: cause}
}

// AlreadyExists creates an AlreadyExists result.
func AlreadyExists[T any](message string) Result[T] {
	return Result[T]{kind: KindAlreadyExists, message: message}
}

// InUse creates an InUse result listing the referencing entities, if known.
func InUse[T any](message string, referencingEntities ...string) Result[T] {
	return Result[T]{kind: KindInUse, message: message, referencingEntities: referencingEntities}
}

// Kind reports which variant is populated.
func (r Result[T]) Kind() Kind {
	return r.kind
}

// IsSuccess reports whether the result is a Success.
func (r Result[T]) IsSuccess() bool {
	return r.kind == KindSuccess
}

// Value returns the Success payload. It is the zero value for any other kind.
func (r Result[T]) Value() T {
	return r.value
}

// ValidationErrors returns the violated rules of a ValidationFailure.
func (r Result[T]) ValidationErrors() []ValidationError {
	return r.validationErrors
}

// Message returns the descriptive message of a non-success, non-validation variant.
func (r Result[T]) Message() string {
	return r.message
}

// RequiredRole returns the role an Unauthorized result demands, if any.
func (r Result[T]) RequiredRole() string {
	return r.requiredRole
}

// Cause returns the retained fault of an UnexpectedError, for diagnostics.
func (r Result[T]) Cause() error {
	return r.cause
}

// ReferencingEntities returns the entities blocking an InUse deletion.
func (r Result[T]) ReferencingEntities() []string {
	return r.referencingEntities
}
