// File: utils/constants.go
package utils

import "time"

// DraftBookingKeyPrefix is the prefix for Redis keys holding draft bookings.
const DraftBookingKeyPrefix = "pending:booking:"

// DraftAgreementKeyPrefix is the prefix for Redis keys holding draft agreements.
const DraftAgreementKeyPrefix = "pending:agreement:"

// TermsAcceptedKeyPrefix is the prefix for the session-scoped policy-acceptance flag.
const TermsAcceptedKeyPrefix = "terms:accepted:"

// DraftTTL is how long unconfirmed drafts are kept around. Drafts are never
// deleted on booking confirmation, so they expire passively instead.
const DraftTTL = 30 * 24 * time.Hour

// TermsAcceptedTTL bounds the policy-acceptance flag to the browsing session.
const TermsAcceptedTTL = 30 * time.Minute
