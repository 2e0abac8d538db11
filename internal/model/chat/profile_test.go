package chat

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNewProfileAcceptsBoundaryValues(t *testing.T) {
	profile, err := NewProfile("Al", "1234567890", "0123456789", submittedAt)
	require.NoError(t, err)

	assert.Equal(t, "Al", profile.Name)
	assert.Equal(t, "1234567890", profile.Contact)
	assert.Equal(t, "0123456789", profile.Reason)
	assert.Equal(t, submittedAt, profile.CreatedAt)
}

func TestNewProfileTrimsFields(t *testing.T) {
	profile, err := NewProfile("  Mary  ", " +1 (555) 010-2030 ", "  clock-in missing today  ", submittedAt)
	require.NoError(t, err)

	assert.Equal(t, "Mary", profile.Name)
	assert.Equal(t, "+1 (555) 010-2030", profile.Contact)
	assert.Equal(t, "clock-in missing today", profile.Reason)
}

func TestNewProfileRejections(t *testing.T) {
	cases := []struct {
		name    string
		visitor string
		contact string
		reason  string
		field   string
		notice  string
	}{
		{"short name", "A", "1234567890", "0123456789", "name", NoticeName},
		{"blank name", "   ", "1234567890", "0123456789", "name", NoticeName},
		{"short contact", "Al", "123456789", "0123456789", "contact", NoticeContact},
		{"letters in contact", "Al", "12345abc90", "0123456789", "contact", NoticeContact},
		{"leading zero", "Al", "0123456789", "0123456789", "contact", NoticeContact},
		{"short reason", "Al", "1234567890", "012345678", "reason", NoticeReason},
		{"name reported first", "A", "bad", "short", "name", NoticeName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := NewProfile(tc.visitor, tc.contact, tc.reason, submittedAt)
			require.Error(t, err)
			assert.Equal(t, Profile{}, profile)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.notice, vErr.Error())
		})
	}
}

func TestValidContact(t *testing.T) {
	valid := []string{
		"1234567890",
		"+123456789",
		"(555) 123-4567",
		"+44 20 7946 0958",
		"1234567890123456",
	}
	for _, contact := range valid {
		assert.Truef(t, ValidContact(contact), "expected %q to be accepted", contact)
	}

	invalid := []string{
		"",
		"+12345678",
		"12345678901234567",
		"555.123.4567",
		"++1234567890",
	}
	for _, contact := range invalid {
		assert.Falsef(t, ValidContact(contact), "expected %q to be rejected", contact)
	}
}

func TestNewProfileCountsRunes(t *testing.T) {
	_, err := NewProfile("Zoë", "1234567890", "résumé hél", submittedAt)
	require.NoError(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_profile", AwaitingProfile.String())
	assert.Equal(t, "chatting", Chatting.String())
}
