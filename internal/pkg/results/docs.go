// Package results defines the closed set of outcome variants returned by every
// service operation. It is the application's alternative to signalling business
// outcomes with errors: a Result carries exactly one populated variant, and the
// boundary layer switches exhaustively on Kind to translate it.
//
// The variant set is fixed:
//   - Success: the operation completed and carries a payload
//   - ValidationFailure: user input or a business rule was violated (field-level detail)
//   - NotFound: a referenced entity is absent
//   - Unauthorized: the caller lacks a required role
//   - UnexpectedError: a storage or unforeseen fault, with the retained cause
//   - AlreadyExists: a uniqueness conflict on creation
//   - InUse: a deletion blocked by referencing entities
//
// Unauthorized, AlreadyExists, and InUse are part of the taxonomy but not yet
// produced by any operation.
//
// Callers must handle every kind declared for an operation's signature; a switch
// with a default branch mapping to an internal error keeps unknown kinds from
// passing silently.
package results
