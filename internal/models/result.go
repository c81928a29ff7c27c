package models

// Outcome classifies a mutation result for transports that need more than success/failure
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

// MutationResult is returned by every create, update and delete
type MutationResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	ID      int64   `json:"id,omitempty"`
	Outcome Outcome `json:"-"`
	// Field names the rejected input when Outcome is OutcomeInvalid
	Field string `json:"-"`
}

// Succeeded builds a successful result
func Succeeded(message string) *MutationResult {
	return &MutationResult{Success: true, Message: message, Outcome: OutcomeOK}
}

// Failed builds an unsuccessful result with the given outcome
func Failed(outcome Outcome, message string) *MutationResult {
	return &MutationResult{Success: false, Message: message, Outcome: outcome}
}
