package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		formName   string
		formEmail  string
		wantOK     bool
		wantErrors map[string]string
	}{
		{
			name:      "valid",
			formName:  "Juan Pérez",
			formEmail: "juan@example.com",
			wantOK:    true,
		},
		{
			name:       "both missing",
			wantErrors: map[string]string{FieldName: "name is required", FieldEmail: "email is required"},
		},
		{
			name:       "whitespace name",
			formName:   "   ",
			formEmail:  "juan@example.com",
			wantErrors: map[string]string{FieldName: "name is required"},
		},
		{
			name:       "malformed email",
			formName:   "Juan Pérez",
			formEmail:  "juan@example",
			wantErrors: map[string]string{FieldEmail: "invalid email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewGuestForm()
			f.SetName(tt.formName)
			f.SetEmail(tt.formEmail)

			ok := f.Validate()

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, !f.HasErrors())
			for field, want := range tt.wantErrors {
				msg, present := f.FieldError(field)
				require.True(t, present, "expected an error on %s", field)
				assert.Equal(t, want, msg)
			}
		})
	}
}

func TestGuestFormCorrectingFieldClearsOnlyItsError(t *testing.T) {
	f := NewGuestForm()
	require.False(t, f.Validate())

	f.SetName("Juan Pérez")

	_, nameErr := f.FieldError(FieldName)
	assert.False(t, nameErr)
	_, emailErr := f.FieldError(FieldEmail)
	assert.True(t, emailErr, "email error should survive a name edit")
}

func TestGuestFormReset(t *testing.T) {
	f := NewGuestForm()
	f.SetName("Juan Pérez")
	f.SetEmail("juan@example.com")
	f.AddGuestEmail("guest@example.com")
	f.SetNotes("bring slides")
	f.SetEmail("")
	f.Validate()

	f.Reset()

	assert.Empty(t, f.Name)
	assert.Empty(t, f.Email)
	assert.Empty(t, f.GuestEmails)
	assert.Empty(t, f.Notes)
	assert.False(t, f.HasErrors())
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"juan@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"@example.com", false},
		{"juan@example", false},
		{"juan@.com", false},
		{"juan@example.", false},
		{"juan perez@example.com", false},
		{"juan@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
