package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/model"
)

// BookRepository defines the interface for catalog storage
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id string) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
	List(ctx context.Context, page model.PageSpec) (*model.BookPage, error)
}

// CatalogService handles catalog operations
type CatalogService struct {
	bookRepo BookRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(bookRepo BookRepository) *CatalogService {
	return &CatalogService{bookRepo: bookRepo}
}

// AddBook creates a catalog entry. Available copies start equal to total
// copies; only the lending operations change them afterwards.
func (s *CatalogService) AddBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.ISBN = strings.TrimSpace(req.ISBN)

	existing, err := s.bookRepo.GetByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrISBNExists
	}

	book := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		TotalCopies: req.TotalCopies,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrISBNExists
		}
		return nil, err
	}

	slog.Info("book added",
		slog.String("book_id", book.ID),
		slog.String("isbn", book.ISBN),
		slog.Int("total_copies", book.TotalCopies))

	return book, nil
}

// GetBook retrieves a book by ID
func (s *CatalogService) GetBook(ctx context.Context, bookID string) (*model.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListBooks returns one page of the catalog
func (s *CatalogService) ListBooks(ctx context.Context, page model.PageSpec) (*model.BookPage, error) {
	return s.bookRepo.List(ctx, page)
}
