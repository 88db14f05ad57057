package main

import "testing"

func TestCellFloorsNegativeCoordinates(t *testing.T) {
	cases := []struct {
		world float64
		want  int
	}{
		{0, 0},
		{2.9, 2},
		{-0.1, -1},
		{-6.5, -7},
	}
	for _, c := range cases {
		if got := cell(c.world); got != c.want {
			t.Errorf("cell(%v) = %d, want %d", c.world, got, c.want)
		}
	}
}
