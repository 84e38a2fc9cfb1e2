package intmap

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct {
		in, want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{10, 16},
		{15, 16},
		{16, 16},
		{1000, 1024},
		{2000, 2048},
	}
	for _, c := range cases {
		if got := nextPowerOf2(c.in); got != c.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
