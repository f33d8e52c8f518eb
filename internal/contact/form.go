// Package contact implements the contact form submission flow.
package contact

import (
	"net/mail"

	"github.com/pkg/errors"
)

// ErrInvalidForm wraps every field validation failure.
var ErrInvalidForm = errors.New("invalid contact form")

// FormState is the visitor's contact form.
type FormState struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Empty reports whether every field is blank.
func (f FormState) Empty() bool {
	return f == FormState{}
}

// Validate applies the checks a browser would for required text fields and an
// email input. It does nothing more: whitespace satisfies required, and the email
// must be a bare address with no display name.
func (f FormState) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, field := range fields {
		if field.value == "" {
			return errors.Wrapf(ErrInvalidForm, "%s is required", field.name)
		}
	}

	if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
		return errors.Wrapf(ErrInvalidForm, "email %q is not an address", f.Email)
	}

	return nil
}
