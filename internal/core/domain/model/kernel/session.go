package kernel

import (
	"errors"
	"fmt"
	"strings"

	"mfgorder/internal/pkg/errs"
	"mfgorder/internal/pkg/guard"
)

const (
	// SessionMinCompany is the lowest company number a session may default to.
	SessionMinCompany = 1
	// SessionMaxCompany is the highest company number a session may default to.
	SessionMaxCompany = 999
)

// ErrSessionIsNotConstructed is returned when attempting to use an improperly
// initialized Session. Sessions must be created via NewSession to ensure validity.
var ErrSessionIsNotConstructed = errs.NewValueIsRequiredError(
	"session must be created via NewSession constructor")

// Session carries the caller context a transaction runs under: the default
// company substituted when a request omits one, and the user identity stamped
// into changed-by fields. It is passed explicitly instead of being read from
// ambient global state so that handlers stay testable in isolation.
//
// Example:
//
//	session, err := kernel.NewSession(280, "MWORKER")
//	if err != nil {
//	    // Handle validation error
//	}
type Session struct { //nolint:recvcheck //using for validation
	company int
	user    string

	guard guard.ConstructorGuard
}

// NewSession creates a Session for the given default company and user.
// The company must be within [SessionMinCompany..SessionMaxCompany] and the
// user must be non-blank after trimming.
func NewSession(company int, user string) (Session, error) {
	session := Session{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(session.setCompany(company), session.setUser(user)); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Validate checks if the Session was properly constructed using the constructor.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// Company returns the session's default company number.
func (s Session) Company() int {
	return s.company
}

// User returns the session's user identity.
func (s Session) User() string {
	return s.user
}

// String returns a human-readable string representation of the session.
// This method implements the fmt.Stringer interface.
func (s Session) String() string {
	return fmt.Sprintf("Session(%d,%s)", s.company, s.user)
}

// setCompany sets the default company with validation.
func (s *Session) setCompany(company int) error {
	if company < SessionMinCompany || company > SessionMaxCompany {
		return errs.NewValueIsOutOfRangeError("company", company, SessionMinCompany, SessionMaxCompany)
	}

	s.company = company
	return nil
}

// setUser sets the user identity with validation.
func (s *Session) setUser(user string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return errs.NewValueIsRequiredError("user")
	}

	s.user = user
	return nil
}
