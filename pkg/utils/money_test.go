package utils

import "testing"

func TestParseDailyBudgetRange(t *testing.T) {
	amount, ok := ParseDailyBudget("₹8,000-15,000 per day")
	if !ok {
		t.Fatal("expected range to parse")
	}
	if amount != 11500 {
		t.Errorf("expected midpoint 11500, got %d", amount)
	}
}

func TestParseDailyBudgetSingle(t *testing.T) {
	amount, ok := ParseDailyBudget("₹5,000 per day")
	if !ok {
		t.Fatal("expected single value to parse")
	}
	if amount != 5000 {
		t.Errorf("expected 5000, got %d", amount)
	}
}

func TestParseDailyBudgetMalformed(t *testing.T) {
	if _, ok := ParseDailyBudget("free"); ok {
		t.Error("expected parse failure for non-numeric input")
	}
	if _, ok := ParseDailyBudget(""); ok {
		t.Error("expected parse failure for empty input")
	}
}

func TestFormatRupees(t *testing.T) {
	if got := FormatRupees(57500); got != "₹57,500" {
		t.Errorf("expected ₹57,500, got %s", got)
	}
	if got := FormatRupees(500); got != "₹500" {
		t.Errorf("expected ₹500, got %s", got)
	}
}

func TestParseRupeesRoundTrip(t *testing.T) {
	amount, ok := ParseRupees(FormatRupees(123456))
	if !ok || amount != 123456 {
		t.Errorf("round trip failed: ok=%v amount=%d", ok, amount)
	}
}
