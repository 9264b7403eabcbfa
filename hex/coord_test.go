package hex

import "testing"

func TestNeighborOpposite(t *testing.T) {
	p := Axial{Q: 2, R: -1}
	for d := 0; d < 6; d++ {
		n := p.Neighbor(d)
		if back := n.Neighbor(Opposite(d)); back != p {
			t.Fatalf("direction %d: neighbor %v did not return via opposite, got %v", d, n, back)
		}
	}
}

func TestDirectionsSumToZero(t *testing.T) {
	var sum Axial
	for _, d := range Directions {
		sum = sum.Add(d)
	}
	if sum != (Axial{}) {
		t.Fatalf("direction vectors sum to %v, want origin", sum)
	}
}

func TestCubeRoundTrip(t *testing.T) {
	for _, a := range []Axial{{0, 0}, {3, -2}, {-1, 4}, {-5, -5}} {
		c := a.ToCube()
		if c.X+c.Y+c.Z != 0 {
			t.Fatalf("cube %v does not satisfy x+y+z=0", c)
		}
		if got := c.ToAxial(); got != a {
			t.Fatalf("round trip %v -> %v -> %v", a, c, got)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Axial
		want int
	}{
		{Axial{}, Axial{}, 0},
		{Axial{}, Axial{1, 0}, 1},
		{Axial{}, Axial{2, -1}, 2},
		{Axial{}, Axial{-2, 2}, 2},
		{Axial{1, 1}, Axial{-1, -1}, 4},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Fatalf("Distance(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	// Every neighbor is at distance 1.
	p := Axial{Q: -3, R: 2}
	for d := 0; d < 6; d++ {
		if got := Distance(p, p.Neighbor(d)); got != 1 {
			t.Fatalf("neighbor %d at distance %d", d, got)
		}
	}
}

func TestColRow(t *testing.T) {
	// Moving south adds two rows; moving south-east adds one column and one
	// row, matching the half-hex vertical stagger between columns.
	p := Axial{}
	if c, r := p.Neighbor(DirS).ColRow(); c != 0 || r != 2 {
		t.Fatalf("south neighbor at col/row (%d,%d)", c, r)
	}
	if c, r := p.Neighbor(DirSE).ColRow(); c != 1 || r != 1 {
		t.Fatalf("south-east neighbor at col/row (%d,%d)", c, r)
	}
	if c, r := p.Neighbor(DirN).ColRow(); c != 0 || r != -2 {
		t.Fatalf("north neighbor at col/row (%d,%d)", c, r)
	}
}

func TestRing(t *testing.T) {
	center := Axial{Q: 1, R: -1}
	if got := Ring(center, 0); len(got) != 1 || got[0] != center {
		t.Fatalf("Ring k=0 = %v", got)
	}
	for k := 1; k <= 3; k++ {
		ring := Ring(center, k)
		if len(ring) != 6*k {
			t.Fatalf("Ring k=%d has %d positions, want %d", k, len(ring), 6*k)
		}
		seen := make(map[Axial]struct{})
		for _, p := range ring {
			if Distance(center, p) != k {
				t.Fatalf("Ring k=%d contains %v at distance %d", k, p, Distance(center, p))
			}
			if _, dup := seen[p]; dup {
				t.Fatalf("Ring k=%d repeats %v", k, p)
			}
			seen[p] = struct{}{}
		}
	}
}

func TestDisk(t *testing.T) {
	center := Axial{Q: -2, R: 3}
	for r := 0; r <= 3; r++ {
		disk := Disk(center, r)
		want := 1 + 3*r*(r+1)
		if len(disk) != want {
			t.Fatalf("Disk r=%d has %d positions, want %d", r, len(disk), want)
		}
		for _, p := range disk {
			if Distance(center, p) > r {
				t.Fatalf("Disk r=%d contains %v at distance %d", r, p, Distance(center, p))
			}
		}
	}
}
