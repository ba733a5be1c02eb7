package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/model"
)

// Lending policy. The storage scripts enforce the same limits inside their
// transaction boundaries, so concurrent borrows cannot slip past them.
const (
	maxActiveLoans = 3
	loanPeriod     = 14 * 24 * time.Hour
)

// LoanRepository defines the interface for loan storage. Borrow and Close
// must be atomic: each re-validates its preconditions and applies its writes
// all-or-nothing, failing with errors recognizable via database.IsThrown
// against the lending sentinel messages.
type LoanRepository interface {
	Borrow(ctx context.Context, memberID, bookID string, period time.Duration, limit int) (*model.LoanRecord, error)
	Close(ctx context.Context, loanID string) (*model.LoanRecord, error)
	GetByID(ctx context.Context, id string) (*model.LoanRecord, error)
	CountActive(ctx context.Context, memberID string) (int, error)
	ListByMember(ctx context.Context, memberID string, page model.PageSpec) (*model.LoanPage, error)
	BorrowSummary(ctx context.Context) ([]*model.BorrowSummaryRow, error)
	OverdueLoans(ctx context.Context) ([]*model.OverdueLoan, error)
}

// LendingService handles borrow and return transactions and the lending
// reports
type LendingService struct {
	loanRepo   LoanRepository
	bookRepo   BookRepository
	memberRepo MemberRepository
}

// NewLendingService creates a new lending service
func NewLendingService(loanRepo LoanRepository, bookRepo BookRepository, memberRepo MemberRepository) *LendingService {
	return &LendingService{
		loanRepo:   loanRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
	}
}

// BorrowBook lends a book to a member. The pre-checks give precise errors
// for the common cases; the storage transaction re-validates everything, so
// a borrow that races another request past the pre-checks still settles
// correctly with exactly one winner.
func (s *LendingService) BorrowBook(ctx context.Context, memberID, bookID string) (*model.LoanRecord, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	// Policy order matters when both rules are violated: the borrow limit
	// is checked before copy availability.
	active, err := s.loanRepo.CountActive(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if active >= maxActiveLoans {
		return nil, ErrBorrowLimitReached
	}
	if book.AvailableCopies <= 0 {
		return nil, ErrNoCopiesAvailable
	}

	record, err := s.loanRepo.Borrow(ctx, member.ID, book.ID, loanPeriod, maxActiveLoans)
	if err != nil {
		return nil, translateLendingError(err)
	}

	slog.Info("book borrowed",
		slog.String("loan_id", record.ID),
		slog.String("member_id", record.MemberID),
		slog.String("book_id", record.BookID),
		slog.Time("due_date", record.DueDate))

	return record, nil
}

// ReturnBook settles an active loan. The record flips to RETURNED, or to
// OVERDUE when the return happens past the due date, and the book's
// available copy comes back in the same transaction.
func (s *LendingService) ReturnBook(ctx context.Context, loanID string) (*model.LoanRecord, error) {
	record, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrLoanNotFound
	}
	if record.Status.IsTerminal() {
		return nil, ErrLoanNotActive
	}

	settled, err := s.loanRepo.Close(ctx, loanID)
	if err != nil {
		return nil, translateLendingError(err)
	}

	slog.Info("book returned",
		slog.String("loan_id", settled.ID),
		slog.String("book_id", settled.BookID),
		slog.String("status", string(settled.Status)))

	return settled, nil
}

// MemberHistory returns one page of a member's loan records in borrow order
func (s *LendingService) MemberHistory(ctx context.Context, memberID string, page model.PageSpec) (*model.LoanPage, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return s.loanRepo.ListByMember(ctx, memberID, page)
}

// BorrowSummary reports the active-loan count for every member that has
// borrowed at least once
func (s *LendingService) BorrowSummary(ctx context.Context) ([]*model.BorrowSummaryRow, error) {
	return s.loanRepo.BorrowSummary(ctx)
}

// OverdueLoans reports every active loan past its due date
func (s *LendingService) OverdueLoans(ctx context.Context) ([]*model.OverdueLoan, error) {
	return s.loanRepo.OverdueLoans(ctx)
}

// translateLendingError maps errors thrown inside the storage transactions
// back onto the lending sentinels. The scripts throw with the sentinel
// messages, so the mapping is a contains check per sentinel.
func translateLendingError(err error) error {
	for _, sentinel := range []error{
		ErrBookNotFound,
		ErrMemberNotFound,
		ErrLoanNotFound,
		ErrNoCopiesAvailable,
		ErrBorrowLimitReached,
		ErrLoanNotActive,
	} {
		if database.IsThrown(err, sentinel.Error()) {
			return sentinel
		}
	}
	return err
}
