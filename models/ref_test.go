package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingRef(t *testing.T) {
	t.Run("draft id", func(t *testing.T) {
		ref := ParseBookingRef("temp-1700000000000")
		assert.True(t, ref.IsDraft())
		assert.Equal(t, "temp-1700000000000", ref.ID)
	})

	t.Run("server id", func(t *testing.T) {
		ref := ParseBookingRef("4821")
		assert.False(t, ref.IsDraft())
	})
}

func TestParseAgreementRef(t *testing.T) {
	assert.True(t, ParseAgreementRef("temp-agreement-1700000000000").IsDraft())
	assert.False(t, ParseAgreementRef("42").IsDraft())
}

func TestDraftIDGeneration(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	bookingID := NewDraftBookingID(now)
	agreementID := NewDraftAgreementID(now)

	assert.True(t, strings.HasPrefix(bookingID, DraftBookingPrefix))
	assert.True(t, strings.HasPrefix(agreementID, DraftAgreementPrefix))

	// An agreement draft id parses as a draft booking ref too, since the
	// booking prefix is a prefix of the agreement one. Only the agreement
	// parser distinguishes them.
	assert.True(t, ParseBookingRef(agreementID).IsDraft())
}
