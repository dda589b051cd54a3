// internal/domain/account/entity.go
package account

// Credential is one signup record. Passwords are stored as entered; the
// persisted collection shape is fixed and predates any hashing scheme.
type Credential struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the single current-user record. It never carries the password
// and is informational only; nothing joins it against other collections.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
