package forms

import (
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
)

// Rule is one validation step of a field: a validator tag and the message
// key reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Field is a form input with its ordered rules.
type Field struct {
	Value    string
	Disabled bool
	Hidden   bool
	Rules    []Rule
}

// Check runs every rule against the field value and returns the message
// keys of the failing ones, in rule order.
func (f *Field) Check() []string {
	var failed []string
	for _, rule := range f.Rules {
		if err := Validate.Var(f.Value, rule.Tag); err != nil {
			failed = append(failed, rule.Message)
		}
	}
	return failed
}

// Valid reports whether every rule passes.
func (f *Field) Valid() bool {
	return len(f.Check()) == 0
}

// Credentials is the sign-in and recovery form state.
type Credentials struct {
	Email    Field
	Password Field
	Code     Field
}

// NewCredentials returns empty credential fields with their rules; the
// password starts hidden.
func NewCredentials() *Credentials {
	return &Credentials{
		Email: Field{Rules: []Rule{
			{Tag: "required", Message: config.TKeyEmailRequired},
			{Tag: emailTag, Message: config.TKeyEmailInvalid},
		}},
		Password: Field{Hidden: true, Rules: []Rule{
			{Tag: "required", Message: config.TKeyFieldRequired},
			{Tag: "omitempty,min=6", Message: config.TKeyPasswordLength},
			{Tag: "containsany=0123456789", Message: config.TKeyPasswordDigit},
			{Tag: "containsany=abcdefghijklmnopqrstuvwxyz", Message: config.TKeyPasswordLower},
			{Tag: "containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ", Message: config.TKeyPasswordUpper},
			{Tag: `containsany=!@#$%^&*"`, Message: config.TKeyPasswordSpecial},
		}},
		Code: Field{Rules: []Rule{
			{Tag: "required", Message: config.TKeyCodeRequired},
		}},
	}
}
