package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberName_LongGraphemeNameIsValid(t *testing.T) {
	name := strings.Repeat("a̐", MaxNameLength)
	_, err := ParseSubscriberName(name)
	assert.NoError(t, err)
}

func TestParseSubscriberName_TooLong(t *testing.T) {
	_, err := ParseSubscriberName(strings.Repeat("a", MaxNameLength+1))
	assert.Error(t, err)
}

func TestParseSubscriberName_EmptyAndWhitespace(t *testing.T) {
	for _, raw := range []string{"", " ", "\t\n"} {
		_, err := ParseSubscriberName(raw)
		assert.Error(t, err, "%q should be rejected", raw)
	}
}

func TestParseSubscriberName_ForbiddenCharacters(t *testing.T) {
	for _, c := range []string{"/", "(", ")", `"`, "<", ">", `\`, "{", "}"} {
		_, err := ParseSubscriberName("Ursula" + c)
		assert.Error(t, err, "%q should be rejected", c)
	}
}

func TestParseSubscriberName_Valid(t *testing.T) {
	n, err := ParseSubscriberName("Ursula Le Guin")
	require.NoError(t, err)
	assert.Equal(t, "Ursula Le Guin", n.String())
}

func TestParseSubscriberName_KeepsSurroundingWhitespace(t *testing.T) {
	n, err := ParseSubscriberName("  Ursula Le Guin\t")
	require.NoError(t, err)
	assert.Equal(t, "  Ursula Le Guin\t", n.String())

	// surrounding whitespace counts towards the length limit
	_, err = ParseSubscriberName(" " + strings.Repeat("a", MaxNameLength))
	assert.Error(t, err)
}

func TestParseSubscriberEmail(t *testing.T) {
	for _, raw := range []string{"", "ursuladomain.com", "@domain.com", "not-an-email"} {
		_, err := ParseSubscriberEmail(raw)
		assert.Error(t, err, "%q should be rejected", raw)
	}

	e, err := ParseSubscriberEmail("ursula@domain.com")
	require.NoError(t, err)
	assert.Equal(t, "ursula@domain.com", e.String())
}

func TestNewSubscriberFromForm(t *testing.T) {
	ns, err := NewSubscriberFromForm("Ursula Le Guin", "ursula@domain.com")
	require.NoError(t, err)
	assert.Equal(t, "Ursula Le Guin", ns.Name.String())
	assert.Equal(t, "ursula@domain.com", ns.Email.String())

	_, err = NewSubscriberFromForm("", "ursula@domain.com")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Reason, "subscriber name")

	_, err = NewSubscriberFromForm("Ursula", "not-an-email")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "not-an-email is not a valid subscriber email.", verr.Reason)
}
