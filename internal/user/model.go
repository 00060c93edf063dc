package user

import "time"

// User is a registry entry referenced by project members, expenses and
// balances. Authentication happens upstream; the registry only records
// who exists.
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
