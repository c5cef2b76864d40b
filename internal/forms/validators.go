package forms

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared rule engine for form fields.
var Validate *validator.Validate

// custom validation tags
const (
	notBlankTag = "notblank"
	emailTag    = "cred_email"
)

// emailPattern is the e-mail rule used by the sign-in forms. It is looser
// than RFC 5322 and accepts quoted local parts and bracketed IPv4 hosts.
var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

func init() {
	Validate = validator.New()
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = Validate.RegisterValidation(emailTag, emailValidation)
}

// notBlankValidation rejects strings made only of whitespace.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimFunc(str, isSpace) != ""
	}
	return false
}

func emailValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return emailPattern.MatchString(str)
	}
	return false
}

// isSpace reports whether r is in the Unicode whitespace and line
// terminator set.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}
