package geo_test

import (
	"math"
	"testing"

	"github.com/marcelpiva/myfit-api-sub002/internal/geo"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{-23.5505, -46.6333},
		{90, 0},
		{-90, 180},
	}

	for _, p := range points {
		if d := geo.Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Fatalf("distance(A, A) = %f, want 0 for %v", d, p)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	cases := [][4]float64{
		{-23.5505, -46.6333, -22.9068, -43.1729},
		{0, 0, 1, 1},
		{55.75, 37.61, 59.93, 30.33},
	}

	for _, c := range cases {
		ab := geo.Distance(c[0], c[1], c[2], c[3])
		ba := geo.Distance(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("distance not symmetric: %f vs %f for %v", ab, ba, c)
		}
	}
}

func TestDistance_SaoPauloToRio(t *testing.T) {
	t.Parallel()

	// Known great-circle distance: roughly 360 km.
	d := geo.Distance(-23.5505, -46.6333, -22.9068, -43.1729)

	if d < 350000 || d > 370000 {
		t.Fatalf("SP-Rio distance = %f m, want ~360 km", d)
	}
}

func TestDistance_ShortHop(t *testing.T) {
	t.Parallel()

	// ~0.0009 degrees of latitude is about 100 meters.
	d := geo.Distance(-23.5505, -46.6333, -23.5514, -46.6333)

	if d < 90 || d > 110 {
		t.Fatalf("short hop distance = %f m, want ~100 m", d)
	}
}

func TestValidCoordinates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{-90, -180, true},
		{90, 180, true},
		{90.1, 0, false},
		{-90.1, 0, false},
		{0, 180.1, false},
		{0, -180.1, false},
	}

	for _, c := range cases {
		if got := geo.ValidCoordinates(c.lat, c.lng); got != c.want {
			t.Fatalf("ValidCoordinates(%f, %f) = %v, want %v", c.lat, c.lng, got, c.want)
		}
	}
}
