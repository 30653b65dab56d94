package domain

// User represents a registered account. The password is stored and compared
// verbatim; the system has no credential hashing.
type User struct {
	ID       int64
	Username string
	Password string
}
