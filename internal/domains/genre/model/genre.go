package model

import "fmt"

// Genre is a row of the genres table. Name is the natural key;
// Category is a free-text grouping such as "Fiction" or "Reference".
type Genre struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
}

func (g *Genre) Describe() string {
	return fmt.Sprintf("Genre: %s, Description: %s, Category: %s", g.Name, g.Description, g.Category)
}

// CreateGenreRequest - POST /api/v1/genres
type CreateGenreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (req *CreateGenreRequest) ToEntity() *Genre {
	return &Genre{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
}
