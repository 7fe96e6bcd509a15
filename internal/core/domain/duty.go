package domain

import "time"

// Duty is a named task owned by exactly one account. Name is unique across
// all duties, not per owner. Account is populated only when the lookup
// requested the eager join.
type Duty struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Account   *Account  `json:"account,omitempty"`
}

// DutyPatch describes a partial duty update. Nil fields are left untouched.
type DutyPatch struct {
	AccountID *string
	Name      *string
}
