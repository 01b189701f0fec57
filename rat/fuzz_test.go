package rat

import (
	"strconv"
	"testing"

	fuzz "github.com/google/gofuzz"
)

// TestFuzzIntegerRoundTrip generates random integers, formats them as
// decimal strings and checks Parse recovers the exact value — the
// precision-preservation property the rest of the module depends on.
func TestFuzzIntegerRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var n int64
		f.Fuzz(&n)

		s := strconv.FormatInt(n, 10)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if !Equal(got, FromInt64(n)) {
			t.Fatalf("Parse(%q) = %s, want %s", s, got, FromInt64(n))
		}
	}
}

// TestFuzzFractionRoundTrip generates random num/den pairs and checks that
// parsing "num/den" matches FromFrac exactly. The sign is written on the
// numerator, the only place Parse accepts one.
func TestFuzzFractionRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var num, den int32
		f.Fuzz(&num)
		f.Fuzz(&den)
		if den == 0 {
			den = 1
		}

		n, d := int64(num), int64(den)
		if d < 0 {
			n, d = -n, -d
		}
		s := strconv.FormatInt(n, 10) + "/" + strconv.FormatInt(d, 10)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if !Equal(got, FromFrac(int64(num), int64(den))) {
			t.Fatalf("Parse(%q) = %s, want %d/%d", s, got, num, den)
		}
	}
}
