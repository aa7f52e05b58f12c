// Package validation implements the registration/profile form: field values,
// per-field error messages, and the validation rules applied on submit.
package validation

// Field identifies a form field in the error map.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
	FieldAddress  Field = "address"
	FieldTerms    Field = "terms"
)

// FieldErrors maps a field to its current validation message. Absence of a
// key means the field has no error.
type FieldErrors map[Field]string

// Form holds the in-progress values of a registration or profile form plus
// the errors from the last Validate call.
//
// Mutate values through the setters: editing a field clears that field's
// error immediately, without recomputing it. Errors are only recomputed by
// Validate.
type Form struct {
	Name          string
	Email         string
	Password      string
	Address       string
	AcceptedTerms bool

	Errors FieldErrors
}

// NewForm returns an empty form with no errors.
func NewForm() *Form {
	return &Form{Errors: FieldErrors{}}
}

func (f *Form) clearError(field Field) {
	if f.Errors != nil {
		delete(f.Errors, field)
	}
}

// SetName updates the name and clears any name error.
func (f *Form) SetName(v string) {
	f.Name = v
	f.clearError(FieldName)
}

// SetEmail updates the email and clears any email error.
func (f *Form) SetEmail(v string) {
	f.Email = v
	f.clearError(FieldEmail)
}

// SetPassword updates the password and clears any password error.
func (f *Form) SetPassword(v string) {
	f.Password = v
	f.clearError(FieldPassword)
}

// SetAddress updates the address and clears any address error.
func (f *Form) SetAddress(v string) {
	f.Address = v
	f.clearError(FieldAddress)
}

// SetAcceptedTerms updates the terms checkbox and clears any terms error.
func (f *Form) SetAcceptedTerms(v bool) {
	f.AcceptedTerms = v
	f.clearError(FieldTerms)
}
