// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"

	"github.com/danielhkuo/election/store"
)

// Reason identifies why a ballot was rejected
type Reason string

const (
	ReasonInvalidPersonalInfo Reason = "invalid_personal_information"
	ReasonQuotaExceeded       Reason = "vote_quota_exceeded"
	ReasonCandidateRequired   Reason = "candidate_name_required"
	ReasonCandidateInvalid    Reason = "candidate_name_invalid"
	ReasonKeywordRequired     Reason = "reason_required"
)

// Messages shown to the voter
const (
	MessageInvalidPersonalInfo = "invalid personal information."
	MessageQuotaExceeded       = "vote quota exceeded."
	MessageCandidateRequired   = "candidate name required."
	MessageCandidateInvalid    = "candidate name invalid."
	MessageKeywordRequired     = "reason required."
	MessageVoteRecorded        = "vote recorded."
)

var reasonMessages = map[Reason]string{
	ReasonInvalidPersonalInfo: MessageInvalidPersonalInfo,
	ReasonQuotaExceeded:       MessageQuotaExceeded,
	ReasonCandidateRequired:   MessageCandidateRequired,
	ReasonCandidateInvalid:    MessageCandidateInvalid,
	ReasonKeywordRequired:     MessageKeywordRequired,
}

// Rejection is returned by Cast when a ballot fails validation. It is an
// expected outcome, not an operational failure: nothing was written.
type Rejection struct {
	Reason Reason
}

func (r *Rejection) Error() string {
	return reasonMessages[r.Reason]
}

func reject(reason Reason) error {
	return &Rejection{Reason: reason}
}

// AsRejection reports whether err is a ballot rejection.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsNotFound reports whether err marks a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
