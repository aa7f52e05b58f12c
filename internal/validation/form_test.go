package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Editing a field clears only that field's error, without recomputing it:
// even an invalid new value leaves the field error-free until the next
// Validate call.
func TestSetters_ClearOnlyOwnError(t *testing.T) {
	f := NewForm()
	require.False(t, Validate(f, DefaultPolicy()))
	require.Contains(t, f.Errors, FieldName)
	require.Contains(t, f.Errors, FieldEmail)
	require.Contains(t, f.Errors, FieldPassword)

	f.SetName("x") // still too short, cleared anyway

	assert.NotContains(t, f.Errors, FieldName)
	assert.Contains(t, f.Errors, FieldEmail)
	assert.Contains(t, f.Errors, FieldPassword)
	assert.Contains(t, f.Errors, FieldAddress)
	assert.Contains(t, f.Errors, FieldTerms)
}

func TestSetters_EachFieldClearsItsError(t *testing.T) {
	set := map[Field]func(*Form){
		FieldName:     func(f *Form) { f.SetName("v") },
		FieldEmail:    func(f *Form) { f.SetEmail("v") },
		FieldPassword: func(f *Form) { f.SetPassword("v") },
		FieldAddress:  func(f *Form) { f.SetAddress("v") },
		FieldTerms:    func(f *Form) { f.SetAcceptedTerms(true) },
	}

	for field, mutate := range set {
		f := NewForm()
		require.False(t, Validate(f, DefaultPolicy()))
		require.Contains(t, f.Errors, field)

		mutate(f)

		assert.NotContains(t, f.Errors, field, "field %s", field)
		assert.Len(t, f.Errors, 4, "other fields keep their errors")
	}
}

func TestSetters_NilErrorMapIsSafe(t *testing.T) {
	f := &Form{} // zero value, no Errors map

	assert.NotPanics(t, func() {
		f.SetName("LuisA")
		f.SetEmail("a@b.com")
	})
}
