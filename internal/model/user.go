// Package model defines the entities stored by the application along with
// their input and patch shapes. Patch types use pointer fields so that a
// field absent from a request is distinguishable from a field set to its
// zero value.
package model

// User is an account that can log in and create features and comments.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserInput carries the fields accepted when creating a user. Password is
// expected to be hashed already; the store does not hash.
type UserInput struct {
	Username string
	Password string
	Name     string
	Role     string
}

// DefaultUserRole is applied when registration supplies no role.
const DefaultUserRole = "user"
