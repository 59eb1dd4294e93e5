package models

import (
	"fmt"
	"strings"
	"time"
)

// Draft ids are generated client-side before the upstream booking exists. The
// prefixes are load-bearing: result pages use them to decide whether a record
// lives in the draft store or upstream.
const (
	DraftBookingPrefix   = "temp-"
	DraftAgreementPrefix = "temp-agreement-"
)

// RefKind says which namespace an id belongs to.
type RefKind int

const (
	RefServer RefKind = iota
	RefDraft
)

// Ref is an id resolved once, at the boundary, into its namespace.
type Ref struct {
	Kind RefKind
	ID   string
}

// IsDraft reports whether the ref addresses an unpersisted draft record.
func (r Ref) IsDraft() bool { return r.Kind == RefDraft }

// ParseBookingRef classifies a booking id from a URL.
func ParseBookingRef(raw string) Ref {
	if strings.HasPrefix(raw, DraftBookingPrefix) {
		return Ref{Kind: RefDraft, ID: raw}
	}
	return Ref{Kind: RefServer, ID: raw}
}

// ParseAgreementRef classifies an agreement id from a URL.
func ParseAgreementRef(raw string) Ref {
	if strings.HasPrefix(raw, DraftAgreementPrefix) {
		return Ref{Kind: RefDraft, ID: raw}
	}
	return Ref{Kind: RefServer, ID: raw}
}

// NewDraftBookingID generates a time-based draft booking id. Uniqueness only
// needs to hold within one client session.
func NewDraftBookingID(now time.Time) string {
	return fmt.Sprintf("%s%d", DraftBookingPrefix, now.UnixMilli())
}

// NewDraftAgreementID generates a time-based draft agreement id.
func NewDraftAgreementID(now time.Time) string {
	return fmt.Sprintf("%s%d", DraftAgreementPrefix, now.UnixMilli())
}
