package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgo/biblio/internal/database"
	"github.com/forgo/biblio/internal/model"
)

// LoanRepository handles loan records and owns the two atomic lending
// scripts. Borrow and Close re-validate their preconditions inside the
// transaction so concurrent calls cannot oversubscribe a book or a member.
type LoanRepository struct {
	db database.Database
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db database.Database) *LoanRepository {
	return &LoanRepository{db: db}
}

// Borrow creates a loan record and decrements the book's available copies in
// one transaction. The guards re-check book and member existence, the
// member's active-loan count against limit, and copy availability, in that
// order, inside the transaction, so a losing racer gets a THROW and no
// partial writes. Thrown messages surface through database.IsThrown.
func (r *LoanRepository) Borrow(ctx context.Context, memberID, bookID string, period time.Duration, limit int) (*model.LoanRecord, error) {
	script := database.NewScript().
		Add(`LET $b = SELECT * FROM ONLY type::record($book)`).
		Add(`IF $b == NONE { THROW "book not found" }`).
		Add(`LET $m = SELECT * FROM ONLY type::record($member)`).
		Add(`IF $m == NONE { THROW "member not found" }`).
		Add(`LET $active = count(SELECT 1 FROM loan_record WHERE member_id = type::record($member) AND status = 'BORROWED')`).
		Add(`IF $active >= $limit { THROW "borrow limit reached" }`).
		Add(`IF $b.available_copies <= 0 { THROW "no copies available" }`).
		Add(`UPDATE type::record($book) SET available_copies -= 1, updated_at = time::now()`).
		Add(`CREATE loan_record CONTENT {
			member_id: type::record($member),
			book_id: type::record($book),
			borrow_date: time::now(),
			due_date: time::now() + type::duration($period),
			status: 'BORROWED',
			created_at: time::now(),
			updated_at: time::now()
		}`).
		Bind("member", memberID).
		Bind("book", bookID).
		Bind("period", formatDuration(period)).
		Bind("limit", limit)

	result, err := script.Run(ctx, r.db)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, errors.New("no result returned")
	}

	// The created record is the last statement's result.
	data, ok := row(result[len(result)-1])
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return loanFromRow(data), nil
}

// Close settles a loan record and increments the book's available copies in
// one transaction. The record must still be BORROWED when the transaction
// runs; the terminal status is decided against the due date at settlement
// time, OVERDUE for a late return and RETURNED otherwise.
func (r *LoanRepository) Close(ctx context.Context, loanID string) (*model.LoanRecord, error) {
	script := database.NewScript().
		Add(`LET $l = SELECT * FROM ONLY type::record($loan)`).
		Add(`IF $l == NONE { THROW "loan record not found" }`).
		Add(`IF $l.status != 'BORROWED' { THROW "not currently borrowed" }`).
		Add(`UPDATE $l.book_id SET available_copies += 1, updated_at = time::now()`).
		Add(`UPDATE type::record($loan) SET
			return_date = time::now(),
			status = IF $l.due_date < time::now() THEN 'OVERDUE' ELSE 'RETURNED' END,
			updated_at = time::now()
		`).
		Bind("loan", loanID)

	result, err := script.Run(ctx, r.db)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, errors.New("no result returned")
	}

	data, ok := row(result[len(result)-1])
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return loanFromRow(data), nil
}

// GetByID retrieves a loan record by ID. Returns (nil, nil) when the ID does
// not resolve.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*model.LoanRecord, error) {
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

	data, ok := row(result)
	if !ok {
		return nil, nil
	}
	return loanFromRow(data), nil
}

// CountActive returns the member's number of BORROWED records.
func (r *LoanRepository) CountActive(ctx context.Context, memberID string) (int, error) {
	query := `SELECT count() AS total FROM loan_record WHERE member_id = type::record($member) AND status = 'BORROWED' GROUP ALL`
	vars := map[string]interface{}{"member": memberID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	data, ok := row(result)
	if !ok {
		return 0, nil
	}
	return parseInt(data["total"]), nil
}

// ListByMember returns one page of a member's loan history in insertion
// order. It fetches one row past the window to decide HasMore.
func (r *LoanRepository) ListByMember(ctx context.Context, memberID string, page model.PageSpec) (*model.LoanPage, error) {
	page = page.Normalize()

	query := `SELECT * FROM loan_record WHERE member_id = type::record($member) ORDER BY created_at ASC LIMIT $limit START $offset`
	vars := map[string]interface{}{
		"member": memberID,
		"limit":  page.Limit + 1,
		"offset": page.Offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	items := make([]*model.LoanRecord, 0, page.Limit)
	for _, raw := range rows(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, loanFromRow(data))
	}

	hasMore := len(items) > page.Limit
	if hasMore {
		items = items[:page.Limit]
	}

	return &model.LoanPage{
		Items:   items,
		Offset:  page.Offset,
		Limit:   page.Limit,
		HasMore: hasMore,
	}, nil
}

// BorrowSummary returns one row per member that has ever borrowed, with the
// count of their currently active loans.
func (r *LoanRepository) BorrowSummary(ctx context.Context) ([]*model.BorrowSummaryRow, error) {
	query := `
		SELECT member_id, member_id.username AS username,
			math::sum(IF status = 'BORROWED' THEN 1 ELSE 0 END) AS active_loans
		FROM loan_record
		GROUP BY member_id, username
		ORDER BY username ASC
	`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	summary := make([]*model.BorrowSummaryRow, 0)
	for _, raw := range rows(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		summary = append(summary, &model.BorrowSummaryRow{
			MemberID:    recordID(data["member_id"]),
			Username:    parseString(data["username"]),
			ActiveLoans: parseInt(data["active_loans"]),
		})
	}
	return summary, nil
}

// OverdueLoans returns every BORROWED record whose due date has passed,
// joined with the member and book details, soonest due first.
func (r *LoanRepository) OverdueLoans(ctx context.Context) ([]*model.OverdueLoan, error) {
	query := `
		SELECT id AS loan_id, member_id, member_id.username AS username,
			book_id, book_id.title AS title, due_date
		FROM loan_record
		WHERE status = 'BORROWED' AND due_date < time::now()
		ORDER BY due_date ASC
	`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	overdue := make([]*model.OverdueLoan, 0)
	for _, raw := range rows(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		overdue = append(overdue, &model.OverdueLoan{
			LoanID:   recordID(data["loan_id"]),
			MemberID: recordID(data["member_id"]),
			Username: parseString(data["username"]),
			BookID:   recordID(data["book_id"]),
			Title:    parseString(data["title"]),
			DueDate:  parseTime(data["due_date"]),
		})
	}
	return overdue, nil
}

// formatDuration renders a Go duration as a SurrealQL duration literal.
// Loan policy durations are whole hours, so hour precision is enough.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%dh", int64(d.Hours()))
}

func loanFromRow(data map[string]interface{}) *model.LoanRecord {
	return &model.LoanRecord{
		ID:         recordID(data["id"]),
		MemberID:   recordID(data["member_id"]),
		BookID:     recordID(data["book_id"]),
		BorrowDate: parseTime(data["borrow_date"]),
		DueDate:    parseTime(data["due_date"]),
		ReturnDate: parseTimePtr(data["return_date"]),
		Status:     model.LoanStatus(parseString(data["status"])),
		CreatedAt:  parseTime(data["created_at"]),
		UpdatedAt:  parseTime(data["updated_at"]),
	}
}
