package r2

import (
	"testing"

	"github.com/artgallery-go/gallery/rat"
)

func pt(x, y int64) Point { return New(rat.FromInt64(x), rat.FromInt64(y)) }

func TestOrient(t *testing.T) {
	tests := []struct {
		p, q, r Point
		want    Direction
	}{
		{pt(0, 0), pt(1, 0), pt(1, 1), CCW},
		{pt(0, 0), pt(1, 1), pt(1, 0), CW},
		{pt(0, 0), pt(1, 0), pt(2, 0), Collinear},
		{pt(0, 0), pt(0, 0), pt(1, 1), Collinear},
	}
	for _, tt := range tests {
		got := Orient(tt.p, tt.q, tt.r)
		if got != tt.want {
			t.Errorf("Orient(%v,%v,%v) = %v, want %v", tt.p, tt.q, tt.r, got, tt.want)
		}
	}
}
