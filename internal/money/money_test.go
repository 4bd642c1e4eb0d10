package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0.01", 1, true},
		{"30.00", 3000, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{"-1.50", -150, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok {
			if err != nil || got.Cents() != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents(), err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{3000, "30.00"},
		{334, "3.34"},
		{1, "0.01"},
		{0, "0.00"},
		{-1000, "-10.00"},
	}
	for _, tc := range cases {
		got, err := json.Marshal(FromCents(tc.cents))
		if err != nil {
			t.Fatalf("marshal %d: %v", tc.cents, err)
		}
		if string(got) != tc.want {
			t.Fatalf("marshal %d: expected %s, got %s", tc.cents, tc.want, got)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{`30.00`, 3000, true},
		{`30`, 3000, true},
		{`"12.34"`, 1234, true}, // quoted decimals from lax clients
		{`3.339`, 334, true},
		{`null`, 0, true},
		{`"abc"`, 0, false},
	}
	for _, tc := range cases {
		var m Money
		err := json.Unmarshal([]byte(tc.in), &m)
		if tc.ok {
			if err != nil || m.Cents() != tc.cents {
				t.Fatalf("%s expected %d, got %d (err=%v)", tc.in, tc.cents, m.Cents(), err)
			}
		} else {
			if err == nil {
				t.Fatalf("%s expected error", tc.in)
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := FromCents(1050)
	b := FromCents(550)

	if got := a.Add(b); got.Cents() != 1600 {
		t.Fatalf("Add: expected 1600, got %d", got.Cents())
	}
	if got := b.Sub(a); got.Cents() != -500 {
		t.Fatalf("Sub: expected -500, got %d", got.Cents())
	}
	if got := b.Sub(a).Abs(); got.Cents() != 500 {
		t.Fatalf("Abs: expected 500, got %d", got.Cents())
	}
	if !a.IsPositive() || a.IsNegative() || a.IsZero() {
		t.Fatalf("sign predicates wrong for %d", a.Cents())
	}
	if got := a.String(); got != "10.50" {
		t.Fatalf("String: expected 10.50, got %s", got)
	}
	if got := Sum([]Money{a, b, FromCents(-1600)}); !got.IsZero() {
		t.Fatalf("Sum: expected zero, got %d", got.Cents())
	}
}
