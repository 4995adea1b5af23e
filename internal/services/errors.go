package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/course-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Course specific errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrPayloadNotFound = errors.New("generative provider output was not valid JSON")
)

// ===== CUSTOM ERROR TYPES =====

type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// InputError reports a malformed course request. It is raised before any external call.
type InputError struct {
	Errors ValidationErrors `json:"errors"`
}

func (ie *InputError) Error() string {
	return "invalid input: " + ie.Errors.Error()
}

func (ie *InputError) Unwrap() error {
	return ErrValidationFailed
}

// GenerationError covers provider transport failures, extraction misses and validation failures alike.
type GenerationError struct {
	Cause string `json:"cause"`
	Err   error  `json:"-"`
}

func (ge *GenerationError) Error() string {
	return ge.Cause
}

func (ge *GenerationError) Unwrap() error {
	return ge.Err
}

// RenderError reports a course that cannot be exported. No output bytes exist when it is returned.
type RenderError struct {
	Reason string `json:"reason"`
}

func (re *RenderError) Error() string {
	return fmt.Sprintf("render failed: %s", re.Reason)
}

// PersistenceError wraps a store failure unchanged.
type PersistenceError struct {
	Op  string `json:"op"`
	Err error  `json:"-"`
}

func (pe *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", pe.Op, pe.Err)
}

func (pe *PersistenceError) Unwrap() error {
	return pe.Err
}

// ===== ERROR HELPERS =====

func NewInputError(errs ...ValidationError) *InputError {
	return &InputError{Errors: errs}
}

func NewGenerationError(cause string, err error) *GenerationError {
	return &GenerationError{Cause: cause, Err: err}
}

func NewRenderError(reason string) *RenderError {
	return &RenderError{Reason: reason}
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrCourseNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

func IsRender(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
