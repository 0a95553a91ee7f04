package domain

// User represents a registered user of the catalog service.
// The ID is generated by the database on insert; IsActive defaults to true.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	// HashedPassword holds the password exactly as it was submitted.
	// This service performs no hashing; the column name mirrors the schema.
	HashedPassword string `json:"-"`
	IsActive       bool   `json:"is_active"`
}

// NewUser creates a User draft from an email and a password.
// The returned user has no ID and IsActive unset; both are populated
// by the store when the user is persisted.
// Returns an error if validation fails.
func NewUser(email, password string) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
