package model

import "time"

// LoanStatus represents the lifecycle state of a loan record
type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "BORROWED"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
)

// IsTerminal returns true once a record can no longer change.
// BORROWED transitions exactly once, to RETURNED or OVERDUE depending on
// whether the return happened past the due date.
func (s LoanStatus) IsTerminal() bool {
	return s == LoanStatusReturned || s == LoanStatusOverdue
}

// LoanRecord represents one borrow-to-return lifecycle. ReturnDate is set
// if and only if the status is terminal.
type LoanRecord struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"member_id"`
	BookID     string     `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     LoanStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BorrowSummaryRow is one row of the per-member lending report: every member
// with at least one loan record, with their count of currently active loans.
type BorrowSummaryRow struct {
	MemberID    string `json:"member_id"`
	Username    string `json:"username"`
	ActiveLoans int    `json:"active_loans"`
}

// OverdueLoan is one row of the overdue report: a BORROWED record whose due
// date is in the past, joined with member and book details.
type OverdueLoan struct {
	LoanID   string    `json:"loan_id"`
	MemberID string    `json:"member_id"`
	Username string    `json:"username"`
	BookID   string    `json:"book_id"`
	Title    string    `json:"title"`
	DueDate  time.Time `json:"due_date"`
}

// PageSpec is an offset/limit window over an ordered listing
type PageSpec struct {
	Offset int
	Limit  int
}

// Normalize clamps the window to sane bounds
func (p PageSpec) Normalize() PageSpec {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// LoanPage is one page of a member's loan history, insertion ordered
type LoanPage struct {
	Items   []*LoanRecord `json:"items"`
	Offset  int           `json:"offset"`
	Limit   int           `json:"limit"`
	HasMore bool          `json:"has_more"`
}
