package models

import (
	"errors"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"
)

var ErrInvalidInput = errors.New("invalid input")

// FieldError is a single form field failure.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors lists form failures in field order. It matches ErrInvalidInput.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// Message returns the message for field, or "".
func (fe FieldErrors) Message(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Credentials is the login form.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	var errs FieldErrors
	if c.Username == "" {
		errs = append(errs, FieldError{"username", "Username is required"})
	}
	if c.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}
	return errs.orNil()
}

// NewAccount is the registration form and request body. IsAdmin is always
// false on submission; accounts are never self-promoted.
type NewAccount struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (a NewAccount) Validate() error {
	var errs FieldErrors
	if addr, err := mail.ParseAddress(a.Email); err != nil || addr.Address != a.Email {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	if utf8.RuneCountInString(a.Username) < 3 {
		errs = append(errs, FieldError{"username", "Username must be at least 3 characters"})
	}
	if utf8.RuneCountInString(a.Password) < 6 {
		errs = append(errs, FieldError{"password", "Password must be at least 6 characters"})
	}
	if a.IsAdmin {
		errs = append(errs, FieldError{"isAdmin", "Administrator accounts cannot be registered"})
	}
	return errs.orNil()
}

func (in TravelPlanInput) Validate() error {
	var errs FieldErrors
	if utf8.RuneCountInString(in.Name) < 3 {
		errs = append(errs, FieldError{"name", "Name must be at least 3 characters"})
	}
	if utf8.RuneCountInString(in.Description) < 10 {
		errs = append(errs, FieldError{"description", "Description must be at least 10 characters"})
	}
	if in.Country == "" || !slices.Contains(Countries, in.Country) {
		errs = append(errs, FieldError{"country", "Please select a country"})
	}
	return errs.orNil()
}
