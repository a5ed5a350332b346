package prospect

import "net/mail"

// Candidate is a record extracted from one CSV row, not yet checked
// against the persistent store. The full (email, first name, last name)
// triple is the identity: the struct is comparable so a map keyed by it
// collapses textually distinct rows that produce the same triple.
type Candidate struct {
	Email     string
	FirstName string
	LastName  string
}

func NewCandidate(email, firstName, lastName string) (Candidate, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return Candidate{}, ErrInvalidEmail
	}

	return Candidate{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}
