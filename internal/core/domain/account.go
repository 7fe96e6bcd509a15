package domain

import "time"

// Account is an identity record able to own duties. The password field holds
// the one-way hash of the credential; plaintext never survives creation.
type Account struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	MiddleName    string    `json:"middle_name"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	EmailAddress  string    `json:"email_address"`
	Username      string    `json:"username"`
	Password      string    `json:"password"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountPatch describes a partial account update. Nil fields are left
// untouched by the store.
type AccountPatch struct {
	FirstName     *string
	MiddleName    *string
	LastName      *string
	ContactNumber *string
	EmailAddress  *string
	Username      *string
	Password      *string
}
