package services

import (
	"github.com/dmitrijs2005/tierforum/internal/common"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
)

// ValidationError reports unusable input. It matches common.ErrorValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

// ConflictError reports a uniqueness clash. It matches common.ErrorAlreadyExists.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == common.ErrorAlreadyExists
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// notFound reports a missing resource the same way the gate does.
func notFound(kind gate.ResourceKind) error {
	return &gate.DeniedError{Kind: gate.DenialNotFound, Message: kind.String() + " not found"}
}
