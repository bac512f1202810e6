package domain

import "errors"

var ErrAuthFailed = errors.New("authentication failed")
var ErrUserNotFound = errors.New("user not found")

// User models a registered reader. The identifier is assigned sequentially
// by the user directory. The password is stored and compared as an opaque
// string; no hashing is applied.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// MatchesIdentifier reports whether identifier equals the username or the
// email. Login accepts either.
func (u *User) MatchesIdentifier(identifier string) bool {
	return u.Username == identifier || u.Email == identifier
}
