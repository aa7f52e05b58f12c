package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *Form {
	f := NewForm()
	f.SetName("LuisA")
	f.SetEmail("a@b.com")
	f.SetPassword("1234abcd")
	f.SetAddress("Calle 1")
	f.SetAcceptedTerms(true)
	return f
}

func TestValidate_AllFieldsValid(t *testing.T) {
	f := validForm()

	ok := Validate(f, DefaultPolicy())

	require.True(t, ok)
	assert.Empty(t, f.Errors)
}

func TestValidate_NameLengthBoundaries(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"", false},
		{"a", false},
		{"ab", false},
		{"abc", true},
		{"abcdefghij", true},
		{"abcdefghijk", false},
		{"  ab  ", false},  // trimmed length 2
		{"  abc  ", true},  // trimmed length 3
		{strings.Repeat("x", 50), false},
	}

	for _, tt := range tests {
		f := validForm()
		f.SetName(tt.name)

		ok := Validate(f, DefaultPolicy())

		assert.Equal(t, tt.ok, ok, "name %q", tt.name)
		if tt.ok {
			assert.NotContains(t, f.Errors, FieldName)
		} else {
			assert.Equal(t, MsgNameLength, f.Errors[FieldName])
		}
	}
}

func TestValidate_PasswordLengthBoundaries(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"", false},
		{"123", false},
		{"1234", true},
		{"12345678", true},
		{"123456789", false},
	}

	for _, tt := range tests {
		f := validForm()
		f.SetPassword(tt.password)

		ok := Validate(f, DefaultPolicy())

		assert.Equal(t, tt.ok, ok, "password %q", tt.password)
		if !tt.ok {
			assert.Equal(t, MsgPasswordLength, f.Errors[FieldPassword])
		}
	}
}

func TestValidate_AddressRequired(t *testing.T) {
	f := validForm()
	f.SetAddress("   ")

	ok := Validate(f, DefaultPolicy())

	require.False(t, ok)
	assert.Equal(t, MsgAddressEmpty, f.Errors[FieldAddress])
}

func TestValidate_TermsRequired(t *testing.T) {
	f := validForm()
	f.SetAcceptedTerms(false)

	require.False(t, Validate(f, DefaultPolicy()))
	assert.Equal(t, MsgTermsRequired, f.Errors[FieldTerms])

	// A policy without the terms rule ignores the checkbox.
	p := DefaultPolicy()
	p.RequireTerms = false
	require.True(t, Validate(f, p))
}

// The legacy rule accepts any non-blank email; only blank input fails. The
// strict rule rejects anything that does not match the pattern.
func TestValidate_EmailRules(t *testing.T) {
	tests := []struct {
		email    string
		legacyOK bool
		strictOK bool
	}{
		{"a@b.com", true, true},
		{"definitely-not-an-email", true, false},
		{"   ", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		f := validForm()
		f.SetEmail(tt.email)
		assert.Equal(t, tt.legacyOK, Validate(f, Policy{EmailRule: EmailRuleLegacy, RequireTerms: true}), "legacy, email %q", tt.email)

		f = validForm()
		f.SetEmail(tt.email)
		assert.Equal(t, tt.strictOK, Validate(f, Policy{EmailRule: EmailRuleStrict, RequireTerms: true}), "strict, email %q", tt.email)
	}
}

func TestValidate_AllRulesEvaluatedIndependently(t *testing.T) {
	f := NewForm() // everything empty and terms unaccepted

	ok := Validate(f, DefaultPolicy())

	require.False(t, ok)
	assert.Len(t, f.Errors, 5, "every field reports its own error")
}

func TestValidate_Idempotent(t *testing.T) {
	f := NewForm()
	f.SetName("x")

	ok1 := Validate(f, DefaultPolicy())
	errs1 := make(FieldErrors, len(f.Errors))
	for k, v := range f.Errors {
		errs1[k] = v
	}

	ok2 := Validate(f, DefaultPolicy())

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, errs1, f.Errors)
}

// Validate replaces the error set wholesale; stale errors from a previous
// run do not survive once their field is fixed.
func TestValidate_ReplacesErrorsWholesale(t *testing.T) {
	f := NewForm()
	require.False(t, Validate(f, DefaultPolicy()))
	require.NotEmpty(t, f.Errors)

	f.Name = "LuisA"
	f.Email = "a@b.com"
	f.Password = "1234abcd"
	f.Address = "Calle 1"
	f.AcceptedTerms = true

	require.True(t, Validate(f, DefaultPolicy()))
	assert.Empty(t, f.Errors)
}
