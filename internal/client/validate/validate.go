// Package validate holds the shallow presence and format checks the client
// runs before submitting a form. Authoritative validation stays on the server.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

// ErrValidation is matched by every *Error.
var ErrValidation = errors.New("validation failed")

// Error reports the first failing field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == ErrValidation }

const minPasswordLength = 8

var reEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

func fail(field, msg string) error {
	return &Error{Field: field, Message: msg}
}

func email(s string) error {
	if s == "" {
		return fail("email", "Email is required")
	}
	if !reEmail.MatchString(s) {
		return fail("email", "Email is invalid")
	}
	return nil
}

// Login checks the login form.
func Login(emailAddr, password string) error {
	if err := email(emailAddr); err != nil {
		return err
	}
	if password == "" {
		return fail("password", "Password is required")
	}
	return nil
}

// Register checks the registration form.
func Register(name, emailAddr, password, confirmation string) error {
	if name == "" {
		return fail("name", "Name is required")
	}
	if err := email(emailAddr); err != nil {
		return err
	}
	switch {
	case password == "":
		return fail("password", "Password is required")
	case len(password) < minPasswordLength:
		return fail("password", "Password must be at least 8 characters")
	}
	switch {
	case confirmation == "":
		return fail("password_confirmation", "Please confirm your password")
	case confirmation != password:
		return fail("password_confirmation", "Passwords do not match")
	}
	return nil
}

// Entry checks the catalog entry form.
func Entry(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fail("name", "Name is required")
	}
	if strings.TrimSpace(description) == "" {
		return fail("description", "Description is required")
	}
	return nil
}

// SerialNumber checks a single unit's serial.
func SerialNumber(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return fail("serial_number", "Serial number is required")
	}
	return nil
}

// Serials checks an already normalized batch.
func Serials(serials []string) error {
	if len(serials) == 0 {
		return fail("serial_numbers", "At least one valid serial number is required")
	}
	return nil
}
