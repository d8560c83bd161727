package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestValidatorCollectsSortedIssues(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Decimal("grossValue", "abc"); ok {
		t.Fatal("expected invalid decimal")
	}
	rate, ok := v.Int("contractorRate", "", 20)
	if !ok || rate != 20 {
		t.Fatalf("expected fallback rate 20, got %d", rate)
	}
	v.IntRange("contractorRate", 150, 0, 100)

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "contractorRate" || issues[1].Field != "grossValue" {
		t.Fatalf("expected issues sorted by field, got %+v", issues)
	}
}

func TestValidatorDecimal(t *testing.T) {
	v := NewValidator()
	got, ok := v.Decimal("gross", " 1234.56 ")
	if !ok || got.String() != "1234.56" {
		t.Fatalf("expected 1234.56, got %s", got)
	}
	v.NonNegative("gross", got.Neg())
	if !v.HasIssues() {
		t.Fatal("expected negative value to be flagged")
	}
	if _, ok := NewValidator().Decimal("gross", ""); ok {
		t.Fatal("expected empty decimal to be rejected")
	}
}

func TestValidatorReject(t *testing.T) {
	rec := httptest.NewRecorder()
	if NewValidator().Reject(rec, "req") {
		t.Fatal("expected no rejection without issues")
	}

	v := NewValidator()
	v.Add("rate", "must be a whole number")
	if !v.Reject(rec, "req") {
		t.Fatal("expected rejection")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"field":"rate"`) {
		t.Fatalf("expected field issue in body, got %s", rec.Body.String())
	}
}
