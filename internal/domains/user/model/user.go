package model

import "fmt"

// User is a library member. LibraryID is the natural key and doubles as the
// member's credential: there is no password.
type User struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	LibraryID string `json:"library_id" db:"library_id"`
}

func (u *User) Describe() string {
	return fmt.Sprintf("Name: %s, Library ID: %s", u.Name, u.LibraryID)
}

// CreateUserRequest - POST /api/v1/users
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	LibraryID string `json:"library_id" binding:"required"`
}

func (req *CreateUserRequest) ToEntity() *User {
	return &User{
		Name:      req.Name,
		LibraryID: req.LibraryID,
	}
}
