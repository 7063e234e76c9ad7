package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadyVoided indicates that a void was attempted on a journal whose
// voided flag is already set. It is raised before any mutation.
var ErrAlreadyVoided = errors.New("journal already voided")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
