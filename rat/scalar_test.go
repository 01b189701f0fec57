package rat

import "testing"

func TestParsePreservesPrecision(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"4", "4"},
		{"3.14", "157/50"},
		{"-7/2", "-7/2"},
		{"2.50", "5/2"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-number"); err == nil {
		t.Fatal("Parse(garbage) returned no error")
	}
}

func TestArithmeticIsExact(t *testing.T) {
	a := FromFrac(1, 3)
	b := FromFrac(1, 6)
	sum := Add(a, b)
	if !Equal(sum, FromFrac(1, 2)) {
		t.Errorf("1/3 + 1/6 = %v, want 1/2", sum)
	}
	prod := Mul(a, FromInt64(3))
	if !Equal(prod, FromInt64(1)) {
		t.Errorf("1/3 * 3 = %v, want 1", prod)
	}
}

func TestCmpAndSign(t *testing.T) {
	neg := FromInt64(-3)
	zero := Zero
	pos := FromInt64(3)
	if Sign(neg) != -1 || Sign(zero) != 0 || Sign(pos) != 1 {
		t.Fatal("unexpected signs")
	}
	if !Less(neg, pos) || Less(pos, neg) {
		t.Fatal("unexpected ordering")
	}
	if Cmp(pos, pos) != 0 {
		t.Fatal("Cmp(x,x) != 0")
	}
}

func TestMinMax(t *testing.T) {
	a, b := FromInt64(2), FromInt64(5)
	if !Equal(Min(a, b), a) || !Equal(Max(a, b), b) {
		t.Fatal("Min/Max disagree with operand order")
	}
}
