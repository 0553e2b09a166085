package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthenticated indicates that no valid session accompanied the request.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden indicates the caller is authenticated but lacks the role or
// ownership required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConstraintViolation indicates a foreign-key or similar referential
// integrity violation surfaced by the store.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrInvalidEnumValue indicates a value outside a closed enumeration was
// supplied. Values are rejected, never coerced.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// ErrPersistence indicates a transient or unknown storage failure. The root
// cause is logged server-side, never exposed to callers.
var ErrPersistence = errors.New("persistence failure")
