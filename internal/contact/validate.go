package contact

import "regexp"

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Validate checks the required fields and the email format. It returns nil
// when the submission is acceptable.
func Validate(s Submission) FieldErrors {
	s = s.Normalize()
	errs := FieldErrors{}

	if s.Name == "" {
		errs[FieldName] = "Name is required"
	}
	switch {
	case s.Email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(s.Email):
		errs[FieldEmail] = "Invalid email address"
	}
	if s.Message == "" {
		errs[FieldMessage] = "Message is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
