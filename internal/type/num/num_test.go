// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	valid := []string{"0", "8", "-3", "5.5", "8.70", "1e3", "-2.5e-2", "1/3"}

	for _, s := range valid {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", s, err)
		}
	}

	invalid := []string{"", "abc", "1.2.3", "--1", "1/0"}

	for _, s := range invalid {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

func TestStringNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"8", "8"},
		{"8.70", "8.7"},
		{"8.00", "8"},
		{"0.125", "0.125"},
		{"-2.50", "-2.5"},
		{"1/8", "0.125"},
		{"1/2", "0.5"},
		{"1e3", "1000"},
	}

	for _, c := range cases {
		n, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}

		if got := n.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestStringNonTerminating(t *testing.T) {
	n := Rat(big.NewRat(1, 3))

	want := "0.33333333333333333333333333333333"
	if got := n.String(); got != want {
		t.Errorf("(1/3).String() = %q; want %q", got, want)
	}

	n = Rat(big.NewRat(2, 3))

	want = "0.66666666666666666666666666666667"
	if got := n.String(); got != want {
		t.Errorf("(2/3).String() = %q; want %q", got, want)
	}
}

func TestExactAddition(t *testing.T) {
	// 0.1 + 0.2 == 0.3, which float64 famously gets wrong.
	a, _ := Parse("0.1")
	b, _ := Parse("0.2")
	want, _ := Parse("0.3")

	sum := Rat(new(big.Rat).Add(a.Rat(), b.Rat()))

	if !sum.Equal(want) {
		t.Errorf("0.1 + 0.2 = %s; want 0.3", sum)
	}

	if got := sum.String(); got != "0.3" {
		t.Errorf("(0.1 + 0.2).String() = %q; want \"0.3\"", got)
	}
}

func TestFormattingDoesNotMutate(t *testing.T) {
	n, _ := Parse("8.70")

	_ = n.String()

	if n.Rat().Cmp(big.NewRat(87, 10)) != 0 {
		t.Error("String() changed the stored value")
	}
}

func TestIntAndSign(t *testing.T) {
	if Int(5).Sign() != 1 || Int(-5).Sign() != -1 || Int(0).Sign() != 0 {
		t.Error("Sign() disagrees with the value")
	}

	if !Int(5).IsInt() {
		t.Error("Int(5).IsInt() = false")
	}

	n, _ := Parse("5.5")
	if n.IsInt() {
		t.Error("Parse(\"5.5\").IsInt() = true")
	}
}
