package validate_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/fintrack/pkg/validate"
)

type invoiceInput struct {
	Number      string `json:"number"      validate:"required,max=100"`
	Status      string `json:"status"      validate:"nullable,in=pending,paid,overdue"`
	IssueDate   string `json:"issue_date"  validate:"required,date"`
	Description string `json:"description" validate:"nullable,max=20"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(invoiceInput{
		Number:    "INV-001",
		Status:    "pending",
		IssueDate: "2026-02-01",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(invoiceInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["number"]; !ok {
		t.Error("expected number to be required")
	}
	if _, ok := errs["issue_date"]; !ok {
		t.Error("expected issue_date to be required")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(invoiceInput{Number: "INV-001", IssueDate: "2026-02-01"})
	if _, ok := errs["status"]; ok {
		t.Error("empty nullable status should not error")
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(invoiceInput{Number: "INV-001", IssueDate: "2026-02-01", Status: "cancelled"})
	if _, ok := errs["status"]; !ok {
		t.Error("expected invalid status to fail")
	}
}

func TestDateRule(t *testing.T) {
	errs := validate.Struct(invoiceInput{Number: "INV-001", IssueDate: "not-a-date"})
	if _, ok := errs["issue_date"]; !ok {
		t.Error("expected bad date to fail")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Budget int `json:"budget" validate:"required,gte=1,lte=1000000"`
	}
	if errs := validate.Struct(in{Budget: 2000000}); !validate.HasErrors(errs) {
		t.Error("expected budget over limit to fail")
	}
	if errs := validate.Struct(in{Budget: 5000}); validate.HasErrors(errs) {
		t.Errorf("expected budget 5000 to pass, got: %v", errs)
	}
}

func TestStringLength(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if errs := validate.Struct(in{Password: "short"}); !validate.HasErrors(errs) {
		t.Error("expected short password to fail")
	}
	if errs := validate.Struct(in{Password: "long enough password"}); validate.HasErrors(errs) {
		t.Errorf("expected valid password to pass, got: %v", errs)
	}
}

func TestParseDate(t *testing.T) {
	cases := []string{
		"2026-02-01",
		"2026-02-01 15:04:05",
		"2026-02-01T15:04:05Z",
	}
	for _, c := range cases {
		got, err := validate.ParseDate(c)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", c, err)
			continue
		}
		if got.Year() != 2026 || got.Month() != time.February {
			t.Errorf("ParseDate(%q) = %v", c, got)
		}
	}

	if _, err := validate.ParseDate("01/02/2026"); err == nil {
		t.Error("expected unsupported layout to error")
	}
}
