package grid

import "testing"

func TestNewFloat64ZeroFilled(t *testing.T) {
	g := NewFloat64(3, 4)
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("got %dx%d, want 3x4", g.Rows, g.Cols)
	}
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			if g.At(i, j) != 0 {
				t.Fatalf("cell (%d,%d) = %v, want 0", i, j, g.At(i, j))
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	g := NewFloat64(2, 2)
	g.Set(1, 1, 42)
	if got := g.At(1, 1); got != 42 {
		t.Fatalf("At(1,1) = %v, want 42", got)
	}
	if got := g.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %v, want 0", got)
	}
}

func TestInBounds(t *testing.T) {
	g := NewFloat64(5, 5)
	cases := []struct {
		i, j int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{5, 0, false},
		{0, 5, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.i, c.j); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestNewFloat64FromPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	NewFloat64From(2, 2, []float64{1, 2, 3})
}

func TestStack3DBandClamps(t *testing.T) {
	s := &Stack3D{Bands: []*Float64{NewFloat64(1, 1), NewFloat64(1, 1)}}
	s.Bands[0].Set(0, 0, 1)
	s.Bands[1].Set(0, 0, 2)

	if got := s.Band(-1).At(0, 0); got != 1 {
		t.Fatalf("Band(-1) = %v, want 1", got)
	}
	if got := s.Band(0).At(0, 0); got != 1 {
		t.Fatalf("Band(0) = %v, want 1", got)
	}
	if got := s.Band(5).At(0, 0); got != 2 {
		t.Fatalf("Band(5) = %v, want 2 (clamped to last band)", got)
	}
}

func TestStack3DEmpty(t *testing.T) {
	s := &Stack3D{}
	if got := s.Band(0); got != nil {
		t.Fatalf("Band(0) on empty stack = %v, want nil", got)
	}
}
