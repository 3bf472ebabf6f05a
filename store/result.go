package store

import (
	"errors"
	"fmt"
)

var (
	ErrSessionFull     = errors.New("session is already full")
	ErrSessionNotFound = errors.New("session not found")
)

// Outcome classifies how a mutation landed.
type Outcome int

const (
	// Applied means the local write happened and the mirror (if any) accepted it.
	Applied Outcome = iota
	// AppliedLocalOnly means the local write happened without a mirror write,
	// either because no mirror is configured or because the mutation tolerates
	// mirror failure.
	AppliedLocalOnly
	// Rejected means no local write happened. Reason carries why.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AppliedLocalOnly:
		return "applied-local-only"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MutationResult is the shared outcome type every mutation returns, making the
// per-operation mirror failure policy explicit instead of implicit per call
// site.
type MutationResult struct {
	Outcome Outcome
	// Reason is set when Outcome is Rejected, and may carry the swallowed
	// mirror error when Outcome is AppliedLocalOnly.
	Reason error
}

func applied() MutationResult {
	return MutationResult{Outcome: Applied}
}

func appliedLocalOnly(err error) MutationResult {
	return MutationResult{Outcome: AppliedLocalOnly, Reason: err}
}

func rejected(err error) MutationResult {
	return MutationResult{Outcome: Rejected, Reason: err}
}
