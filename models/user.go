// GORM model + request/response DTOs used in handlers.

package models

import "time"

// User represents a user record in the database.
// GORM tags configure primary key, sizes and constraints.
// The password hash carries json:"-" so it never leaves the process even
// when the full record is cached as JSON; API responses additionally go
// through PublicUser, which has no password field at all.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:120;uniqueIndex;not null" json:"username"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"size:180" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for register and admin-create.
// Gin's binding tags add basic validation rules automatically:
// username and password are required; name and email are optional,
// but email must be well-formed when present.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse holds the JWT returned by login.
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest allows partial updates by making every field a
// pointer: nil means "no change". A present password is re-hashed
// before storing.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}

// ListUsersQuery carries the query parameters of GET /user.
// Page size is a fixed server-side constant (core.PerPage), not
// client-controlled.
type ListUsersQuery struct {
	SortBy     string `form:"sort_by"`    // sortable-field allow-list, default id
	Descending bool   `form:"descending"` // reverses the whole ordering, tie-break included
	Page       int    `form:"page"`       // 1-based; <=0 treated as 1
}

// PublicUser is the serialized form of a user. It is an allow-list:
// only these six fields exist, so a secret can never leak through it.
type PublicUser struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public converts a stored record to its public representation.
func Public(u User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicAll serializes a page of records, preserving order.
func PublicAll(users []User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, Public(u))
	}
	return out
}

// PagedUsers is the response envelope for the list endpoint, matching
// the classic paginator shape: data + total + page bookkeeping + page
// URLs. Prev/next are null when out of range.
type PagedUsers struct {
	Data         []PublicUser `json:"data"`
	Total        int64        `json:"total"`
	PerPage      int          `json:"per_page"`
	CurrentPage  int          `json:"current_page"`
	FirstPageURL string       `json:"first_page_url"`
	PrevPageURL  *string      `json:"prev_page_url"`
	NextPageURL  *string      `json:"next_page_url"`
	LastPageURL  string       `json:"last_page_url"`
}
