package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SubscriberEmail is a syntactically valid mailbox address.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail checks raw against the standard mailbox syntax.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if err := validate.Var(raw, "required,email"); err != nil {
		return SubscriberEmail{}, &ValidationError{
			Reason: fmt.Sprintf("%s is not a valid subscriber email.", raw),
		}
	}
	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string { return e.value }
