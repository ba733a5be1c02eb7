package model

import "testing"

// ============================================================================
// CreateBookRequest Validation Tests
// ============================================================================

func TestCreateBookRequest_Validate_ValidRequest_NoErrors(t *testing.T) {
	t.Parallel()

	req := CreateBookRequest{
		Title:       "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		ISBN:        "978-0134190440",
		TotalCopies: 3,
	}

	errs := req.Validate()

	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCreateBookRequest_Validate_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	req := CreateBookRequest{
		Title:       "",
		Author:      "   ",
		ISBN:        "978-0134190440",
		TotalCopies: 0,
	}

	errs := req.Validate()

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"title", "author", "total_copies"} {
		if !fields[want] {
			t.Errorf("expected an error on field %q, got %v", want, errs)
		}
	}
}

func TestCreateBookRequest_Validate_NegativeCopies(t *testing.T) {
	t.Parallel()

	req := CreateBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		ISBN:        "978-0441172719",
		TotalCopies: -2,
	}

	errs := req.Validate()

	if len(errs) != 1 || errs[0].Field != "total_copies" {
		t.Errorf("expected single total_copies error, got %v", errs)
	}
}

func TestCreateBookRequest_Validate_MissingISBN(t *testing.T) {
	t.Parallel()

	req := CreateBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		TotalCopies: 1,
	}

	errs := req.Validate()

	if len(errs) != 1 || errs[0].Field != "isbn" {
		t.Errorf("expected single isbn error, got %v", errs)
	}
}
