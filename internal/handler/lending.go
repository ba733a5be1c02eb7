package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/forgo/biblio/internal/middleware"
	"github.com/forgo/biblio/internal/model"
)

// LendingService defines the lending operations the handler needs
type LendingService interface {
	BorrowBook(ctx context.Context, memberID, bookID string) (*model.LoanRecord, error)
	ReturnBook(ctx context.Context, loanID string) (*model.LoanRecord, error)
	MemberHistory(ctx context.Context, memberID string, page model.PageSpec) (*model.LoanPage, error)
	BorrowSummary(ctx context.Context) ([]*model.BorrowSummaryRow, error)
	OverdueLoans(ctx context.Context) ([]*model.OverdueLoan, error)
}

// LendingHandler handles loan and report endpoints
type LendingHandler struct {
	lendingService LendingService
}

// NewLendingHandler creates a new lending handler
func NewLendingHandler(lendingService LendingService) *LendingHandler {
	return &LendingHandler{lendingService: lendingService}
}

// BorrowRequest represents the borrow endpoint request body
type BorrowRequest struct {
	MemberID string `json:"member_id"`
	BookID   string `json:"book_id"`
}

// Validate checks the request fields
func (req *BorrowRequest) Validate() []model.FieldError {
	var errs []model.FieldError
	if strings.TrimSpace(req.MemberID) == "" {
		errs = append(errs, model.FieldError{Field: "member_id", Message: "member_id is required"})
	}
	if strings.TrimSpace(req.BookID) == "" {
		errs = append(errs, model.FieldError{Field: "book_id", Message: "book_id is required"})
	}
	return errs
}

// Borrow handles POST /v1/loans
func (h *LendingHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	record, err := h.lendingService.BorrowBook(r.Context(), req.MemberID, req.BookID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, record, map[string]string{
		"return": "/v1/loans/" + record.ID + "/return",
	})
}

// Return handles POST /v1/loans/{loanId}/return
func (h *LendingHandler) Return(w http.ResponseWriter, r *http.Request) {
	record, err := h.lendingService.ReturnBook(r.Context(), r.PathValue("loanId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, record, nil)
}

// MemberHistory handles GET /v1/members/{memberId}/loans. Members may read
// their own history; staff may read anyone's.
func (h *LendingHandler) MemberHistory(w http.ResponseWriter, r *http.Request) {
	memberID := r.PathValue("memberId")

	callerID := middleware.GetMemberID(r.Context())
	if callerID != memberID && !middleware.GetRole(r.Context()).IsStaff() {
		WriteError(w, model.NewForbiddenError("cannot read another member's loans"))
		return
	}

	page, err := h.lendingService.MemberHistory(r.Context(), memberID, pageFromQuery(r))
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

// BorrowSummary handles GET /v1/reports/borrow-summary
func (h *LendingHandler) BorrowSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.lendingService.BorrowSummary(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, summary, nil)
}

// Overdue handles GET /v1/reports/overdue
func (h *LendingHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.lendingService.OverdueLoans(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, overdue, nil)
}
