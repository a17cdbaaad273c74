package mcp

import (
	"errors"
	"fmt"

	"github.com/cozypet/nestd/internal/domain/growth"
	"github.com/cozypet/nestd/internal/domain/nest"
	"github.com/cozypet/nestd/internal/domain/pet"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to MCP error codes. Unrecognized errors
// pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, nest.ErrPetNotFound):
		return &APIError{Code: "PET_NOT_FOUND", Message: "pet not found", RecoveryHint: "Call get_nest to list pet IDs"}
	case errors.Is(err, nest.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid input", RecoveryHint: "Provide a non-empty name"}
	case errors.Is(err, pet.ErrNegativeElapsed):
		return &APIError{Code: "INVALID_ELAPSED", Message: "elapsed duration must be non-negative", RecoveryHint: "Pass a non-negative duration"}
	case errors.Is(err, growth.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid growth entry"}
	default:
		return err
	}
}
