package model

import "fmt"

// Author is a row of the authors table. Name is the natural key.
type Author struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Biography string `json:"biography" db:"biography"`
}

// Describe renders the author the way the catalog prints it
func (a *Author) Describe() string {
	return fmt.Sprintf("Author: %s, Biography: %s", a.Name, a.Biography)
}

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name      string `json:"name" binding:"required"`
	Biography string `json:"biography"`
}

func (req *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      req.Name,
		Biography: req.Biography,
	}
}
