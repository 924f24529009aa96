package booking

import "strings"

// Guest form field names used as error map keys.
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// GuestForm collects and validates the invitee's identity before a contact
// is created. Errors are field-scoped: correcting a field clears only that
// field's error.
type GuestForm struct {
	Name        string
	Email       string
	GuestEmails []string
	Notes       string

	errors map[string]string
}

// NewGuestForm returns an empty guest form.
func NewGuestForm() *GuestForm {
	return &GuestForm{errors: make(map[string]string)}
}

// SetName updates the name field and clears its error.
func (f *GuestForm) SetName(v string) {
	f.Name = v
	delete(f.errors, FieldName)
}

// SetEmail updates the email field and clears its error.
func (f *GuestForm) SetEmail(v string) {
	f.Email = v
	delete(f.errors, FieldEmail)
}

// AddGuestEmail appends an additional guest email. Guest emails are optional
// and not validated.
func (f *GuestForm) AddGuestEmail(v string) {
	f.GuestEmails = append(f.GuestEmails, v)
}

// SetNotes updates the free-text notes.
func (f *GuestForm) SetNotes(v string) {
	f.Notes = v
}

// Validate checks the required fields and records field-scoped errors.
// It returns true when the form may be submitted.
func (f *GuestForm) Validate() bool {
	if strings.TrimSpace(f.Name) == "" {
		f.errors[FieldName] = "name is required"
	}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		f.errors[FieldEmail] = "email is required"
	case !ValidEmail(email):
		f.errors[FieldEmail] = "invalid email"
	}
	return len(f.errors) == 0
}

// FieldError returns the error recorded for the field, if any.
func (f *GuestForm) FieldError(field string) (string, bool) {
	msg, ok := f.errors[field]
	return msg, ok
}

// HasErrors reports whether any field error is present.
func (f *GuestForm) HasErrors() bool { return len(f.errors) > 0 }

// Reset clears all fields and errors.
func (f *GuestForm) Reset() {
	*f = GuestForm{errors: make(map[string]string)}
}

// ValidEmail checks the basic local@domain.tld shape: at least one '@', at
// least one '.' after it, and no whitespace anywhere.
func ValidEmail(s string) bool {
	if strings.ContainsAny(s, " \t\n\r") {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	// The dot must have something on both sides.
	return dot >= 1 && dot < len(domain)-1
}
