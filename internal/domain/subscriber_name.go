package domain

import (
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// MaxNameLength is the upper bound on a name, counted in grapheme clusters.
const MaxNameLength = 256

const forbiddenNameChars = `/()"<>\{}`

// SubscriberName is a validated subscriber name.
type SubscriberName struct {
	value string
}

// ParseSubscriberName rejects empty, overlong or suspicious names. Whitespace
// only matters for the emptiness check; the accepted value is stored as given.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	isEmpty := strings.TrimSpace(raw) == ""
	isTooLong := graphemeCount(raw) > MaxNameLength
	hasForbidden := strings.ContainsAny(raw, forbiddenNameChars)

	if isEmpty || isTooLong || hasForbidden {
		return SubscriberName{}, &ValidationError{
			Reason: fmt.Sprintf("%s is not a valid subscriber name.", raw),
		}
	}
	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string { return n.value }

func graphemeCount(s string) int {
	n := 0
	g := graphemes.FromString(s)
	for g.Next() {
		n++
	}
	return n
}
