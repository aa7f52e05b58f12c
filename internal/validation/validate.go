package validation

import "strings"

// Error messages shown next to the offending field.
const (
	MsgNameLength     = "name must be 3-10 characters"
	MsgInvalidEmail   = "invalid email"
	MsgPasswordLength = "password must be 4-8 characters"
	MsgAddressEmpty   = "address is required"
	MsgTermsRequired  = "you must accept the terms"
)

// EmailRule selects how the email field is judged.
type EmailRule int

const (
	// EmailRuleLegacy accepts an email that matches the pattern OR is merely
	// non-blank. This reproduces the shipped behavior of the original app;
	// almost any non-empty string passes. Kept as the default on purpose.
	EmailRuleLegacy EmailRule = iota

	// EmailRuleStrict accepts only emails matching the pattern.
	EmailRuleStrict
)

// Policy configures Validate.
type Policy struct {
	EmailRule    EmailRule
	RequireTerms bool
}

// DefaultPolicy matches the registration form of the original app: legacy
// email rule, terms checkbox required.
func DefaultPolicy() Policy {
	return Policy{EmailRule: EmailRuleLegacy, RequireTerms: true}
}

// Validate applies every rule to its field independently (no short-circuit),
// replaces f.Errors wholesale with the freshly computed set, and reports
// whether the form is valid. Calling it twice on an unchanged form yields the
// same result.
func Validate(f *Form, p Policy) bool {
	errs := FieldErrors{}

	if n := len(strings.TrimSpace(f.Name)); n < 3 || n > 10 {
		errs[FieldName] = MsgNameLength
	}

	if !emailOK(strings.TrimSpace(f.Email), p.EmailRule) {
		errs[FieldEmail] = MsgInvalidEmail
	}

	if n := len(f.Password); n < 4 || n > 8 {
		errs[FieldPassword] = MsgPasswordLength
	}

	if strings.TrimSpace(f.Address) == "" {
		errs[FieldAddress] = MsgAddressEmpty
	}

	if p.RequireTerms && !f.AcceptedTerms {
		errs[FieldTerms] = MsgTermsRequired
	}

	f.Errors = errs
	return len(errs) == 0
}

func emailOK(trimmed string, rule EmailRule) bool {
	switch rule {
	case EmailRuleStrict:
		return IsValidEmail(trimmed)
	default:
		return IsValidEmail(trimmed) || trimmed != ""
	}
}
