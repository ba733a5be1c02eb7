package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/forgo/biblio/internal/model"
)

// CatalogService defines the catalog operations the handler needs
type CatalogService interface {
	AddBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, bookID string) (*model.Book, error)
	ListBooks(ctx context.Context, page model.PageSpec) (*model.BookPage, error)
}

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Create handles POST /v1/books
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	book, err := h.catalogService.AddBook(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, book, map[string]string{
		"self": "/v1/books/" + book.ID,
	})
}

// Get handles GET /v1/books/{bookId}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.catalogService.GetBook(r.Context(), r.PathValue("bookId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, book, nil)
}

// List handles GET /v1/books
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogService.ListBooks(r.Context(), pageFromQuery(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, page.Items, &PaginationInfo{
		Offset:  page.Offset,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	}, nil)
}

// pageFromQuery reads offset/limit query parameters. Invalid or missing
// values fall back to the defaults applied by PageSpec.Normalize.
func pageFromQuery(r *http.Request) model.PageSpec {
	var page model.PageSpec
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		page.Offset = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		page.Limit = v
	}
	return page
}
