package model

import (
	"strings"
	"time"
)

// Book represents a catalog entry. AvailableCopies is mutated only by the
// lending transactions; catalog operations set it once at creation.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookPage is one page of the catalog listing, insertion ordered
type BookPage struct {
	Items   []*Book `json:"items"`
	Offset  int     `json:"offset"`
	Limit   int     `json:"limit"`
	HasMore bool    `json:"has_more"`
}

// CreateBookRequest carries the fields for adding a catalog entry
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"total_copies"`
}

// Validate checks the request fields and returns one FieldError per problem
func (r *CreateBookRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(r.Author) == "" {
		errs = append(errs, FieldError{Field: "author", Message: "author is required"})
	}
	if strings.TrimSpace(r.ISBN) == "" {
		errs = append(errs, FieldError{Field: "isbn", Message: "isbn is required"})
	}
	if r.TotalCopies <= 0 {
		errs = append(errs, FieldError{Field: "total_copies", Message: "total copies must be positive"})
	}
	return errs
}
