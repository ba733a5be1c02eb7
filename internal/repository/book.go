package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/model"
)

// BookRepository handles catalog data access
type BookRepository struct {
	db database.Database
}

// NewBookRepository creates a new book repository
func NewBookRepository(db database.Database) *BookRepository {
	return &BookRepository{db: db}
}

// Create creates a new catalog entry with available_copies seeded to
// total_copies. The isbn column carries a unique index; collisions surface
// as database.ErrDuplicate.
func (r *BookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		CREATE book CONTENT {
			title: $title,
			author: $author,
			isbn: $isbn,
			total_copies: $total_copies,
			available_copies: $total_copies,
			created_at: time::now(),
			updated_at: time::now()
		}
	`
	vars := map[string]interface{}{
		"title":        book.Title,
		"author":       book.Author,
		"isbn":         book.ISBN,
		"total_copies": book.TotalCopies,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: isbn already exists", database.ErrDuplicate)
		}
		return err
	}

	created := rows(result)
	if len(created) == 0 {
		return errors.New("no result returned")
	}
	data, ok := created[0].(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	book.ID = recordID(data["id"])
	book.AvailableCopies = book.TotalCopies
	book.CreatedAt = parseTime(data["created_at"])
	book.UpdatedAt = parseTime(data["updated_at"])
	return nil
}

// GetByID retrieves a book by ID. Returns (nil, nil) when the ID does not resolve.
func (r *BookRepository) GetByID(ctx context.Context, id string) (*model.Book, error) {
	if !isRecordRef(id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	book, ok := parseBook(result)
	if !ok {
		return nil, nil
	}
	return book, nil
}

// GetByISBN retrieves a book by ISBN. Returns (nil, nil) when absent.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := `SELECT * FROM book WHERE isbn = $isbn LIMIT 1`
	vars := map[string]interface{}{"isbn": isbn}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	book, ok := parseBook(result)
	if !ok {
		return nil, nil
	}
	return book, nil
}

// List returns one page of the catalog in insertion order. It fetches one
// row past the window to decide HasMore without a second count query.
func (r *BookRepository) List(ctx context.Context, page model.PageSpec) (*model.BookPage, error) {
	page = page.Normalize()

	query := `SELECT * FROM book ORDER BY created_at ASC LIMIT $limit START $offset`
	vars := map[string]interface{}{
		"limit":  page.Limit + 1,
		"offset": page.Offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	items := make([]*model.Book, 0, page.Limit)
	for _, raw := range rows(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, bookFromRow(data))
	}

	hasMore := len(items) > page.Limit
	if hasMore {
		items = items[:page.Limit]
	}

	return &model.BookPage{
		Items:   items,
		Offset:  page.Offset,
		Limit:   page.Limit,
		HasMore: hasMore,
	}, nil
}

func parseBook(result interface{}) (*model.Book, bool) {
	data, ok := row(result)
	if !ok {
		return nil, false
	}
	return bookFromRow(data), true
}

func bookFromRow(data map[string]interface{}) *model.Book {
	return &model.Book{
		ID:              recordID(data["id"]),
		Title:           parseString(data["title"]),
		Author:          parseString(data["author"]),
		ISBN:            parseString(data["isbn"]),
		TotalCopies:     parseInt(data["total_copies"]),
		AvailableCopies: parseInt(data["available_copies"]),
		CreatedAt:       parseTime(data["created_at"]),
		UpdatedAt:       parseTime(data["updated_at"]),
	}
}
