package contact

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Submission is what a visitor typed into the contact form. Phone is optional.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   strings.TrimSpace(s.Phone),
		Message: strings.TrimSpace(s.Message),
	}
}

// Message is an accepted, stored submission.
type Message struct {
	ID string `json:"id"`
	Submission
	RemoteAddr string    `json:"remote_addr,omitempty"`
	Forwarded  bool      `json:"forwarded"`
	CreatedAt  time.Time `json:"created_at"`
}

// FieldErrors maps each invalid field to the message shown next to it.
type FieldErrors map[Field]string

// ValidationError is returned when a submission fails validation. The
// submission is not stored or forwarded.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[Field(k)])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}
