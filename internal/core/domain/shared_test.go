package domain

import "testing"

func TestAmount_Arithmetic(t *testing.T) {
	a := Amount(300)

	if got := a.Add(150); got != 450 {
		t.Fatalf("Add() = %d, want 450", got)
	}
	if got := a.Multiply(3); got != 900 {
		t.Fatalf("Multiply() = %d, want 900", got)
	}
	if got := a.Multiply(0); got != 0 {
		t.Fatalf("Multiply(0) = %d, want 0", got)
	}
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{0, "Rs. 0"},
		{80, "Rs. 80"},
		{750, "Rs. 750"},
	}
	for _, tt := range tests {
		if got := tt.amount.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", int(tt.amount), got, tt.want)
		}
	}
}

func TestValidateSessionID(t *testing.T) {
	if !ValidateSessionID(string(NewSessionID())) {
		t.Fatal("expected generated session id to be valid")
	}

	for _, id := range []string{"", "abc", "aabbccddee112233aabbccdd"} {
		if ValidateSessionID(id) {
			t.Errorf("ValidateSessionID(%q) = true, want false", id)
		}
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Fatal("expected two generated session ids to differ")
	}
}
