package finance

import "github.com/google/uuid"

// Session holds the identity of the logged in user for the lifetime of the
// process. The zero value is a logged out session.
type Session struct {
	id   string
	user *User
}

// Login starts a session for user, replacing any previous one.
func (s *Session) Login(user User) {
	s.id = uuid.NewString()
	s.user = &user
}

// Logout ends the session. It is a no-op when nobody is logged in.
func (s *Session) Logout() {
	s.id = ""
	s.user = nil
}

// CurrentUserID returns the id of the logged in user.
func (s *Session) CurrentUserID() (uint, bool) {
	if s.user == nil {
		return 0, false
	}
	return s.user.ID, true
}

// User returns the logged in user, or nil.
func (s *Session) User() *User { return s.user }

// ID identifies the current session in logs, it is empty when logged out.
func (s *Session) ID() string { return s.id }
