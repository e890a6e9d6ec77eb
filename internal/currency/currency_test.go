package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		code  string
		want  string
	}{
		{"usd", 1234.5, "USD", "$1,234.50"},
		{"usd negative", -300, "USD", "-$300.00"},
		{"rounds to minor units", 0.105, "USD", "$0.11"},
		{"unknown code", 12.3, "XYZ", "12.30 XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value, tt.code); got != tt.want {
				t.Errorf("Format(%v, %s) = %q, want %q", tt.value, tt.code, got, tt.want)
			}
		})
	}
}

func TestNewAmount(t *testing.T) {
	a := NewAmount(300, "USD")
	if a.Value != 300 || a.Display != "$300.00" {
		t.Errorf("unexpected amount %+v", a)
	}
}

func TestSumIsOrderIndependent(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 1e6, -0.6}
	reversed := []float64{-0.6, 1e6, 0.3, 0.2, 0.1}

	if Sum(values...) != Sum(reversed...) {
		t.Errorf("sum depends on order: %v vs %v", Sum(values...), Sum(reversed...))
	}
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Errorf("expected 0.3, got %v", got)
	}
	if got := Sum(); got != 0 {
		t.Errorf("expected 0 for no values, got %v", got)
	}
}

func TestSub(t *testing.T) {
	if got := Sub(310, 300); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := Sub(0.3, 0.1); got != 0.2 {
		t.Errorf("expected 0.2, got %v", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("EGP") {
		t.Error("expected EGP to be valid")
	}
	if Valid("NOPE") {
		t.Error("expected NOPE to be invalid")
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"310.5", 310.5, true},
		{"0", 0, true},
		{"1e-400", 0, true},
		{"1e400", 0, false},
		{"-1e400", 0, false},
		{"1e999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := Float(decimal.RequireFromString(tt.in))
		if ok != tt.wantOK {
			t.Errorf("Float(%s) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Float(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
