// Package submission owns the résumé submission lifecycle.
package submission

import (
	"time"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// Phase is the step of the current submission cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseUploading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseUploading:
		return "uploading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User-facing failure messages. Transport details never reach the UI.
const (
	MsgTimeout  = "Request timed out. Try again."
	MsgFailed   = "Upload failed. Check backend is running."
	MsgCanceled = "Upload canceled."
)

// State is a snapshot of the controller. It is a value; mutating a copy has
// no effect on the controller.
type State struct {
	Phase Phase

	// Seq is the sequence number of the cycle this state belongs to.
	Seq uint64

	// Candidate describes what is being or was last submitted.
	Candidate string

	// Result is set only in PhaseSucceeded.
	Result *models.Result

	// Message is the error banner text. It is set in PhaseFailed, and in
	// PhaseIdle after a rejected validation.
	Message string

	// StartedAt is when the upload of the current cycle began.
	StartedAt time.Time
}

// Busy reports whether a request is in flight.
func (s State) Busy() bool {
	return s.Phase == PhaseUploading
}
