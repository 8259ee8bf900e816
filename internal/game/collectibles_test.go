package game

import "testing"

func TestPickupInclusiveBoundary(t *testing.T) {
	set := []Collectible{
		{X: 14, Y: 8, Kind: KindDot},   // exactly radius away
		{X: 15, Y: 8, Kind: KindDot},   // just outside
		{X: 8, Y: 8, Kind: KindPower},  // dead centre
		{X: 100, Y: 8, Kind: KindDot},  // far away
	}
	remaining, picked := Pickup(set, 8, 8, 6)
	if len(picked) != 2 {
		t.Fatalf("expected 2 picked, got %d", len(picked))
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %d", len(remaining))
	}
	for _, c := range remaining {
		if c.X == 14 || (c.X == 8 && c.Y == 8) {
			t.Fatalf("collectible %+v should have been picked", c)
		}
	}
}

func TestPickupDoesNotMutateInput(t *testing.T) {
	set := []Collectible{
		{X: 8, Y: 8, Kind: KindDot},
		{X: 40, Y: 8, Kind: KindPower},
	}
	orig := make([]Collectible, len(set))
	copy(orig, set)

	remaining, picked := Pickup(set, 8, 8, 6)
	if len(picked) != 1 || len(remaining) != 1 {
		t.Fatalf("unexpected split: picked=%d remaining=%d", len(picked), len(remaining))
	}
	for i := range set {
		if set[i] != orig[i] {
			t.Fatalf("input slice mutated at %d: %+v != %+v", i, set[i], orig[i])
		}
	}
}

func TestCollectiblesFromGridSitAtTileCenters(t *testing.T) {
	g := mustGrid(t)
	set := collectiblesFrom(g)
	if len(set) == 0 {
		t.Fatal("default maze must contain collectibles")
	}
	powers := 0
	for _, c := range set {
		col, row := g.CellAt(c.X, c.Y)
		cx, cy := g.CellCenter(col, row)
		if c.X != cx || c.Y != cy {
			t.Fatalf("collectible %+v not at tile centre (%v,%v)", c, cx, cy)
		}
		if c.Kind == KindPower {
			powers++
		}
	}
	if powers != 4 {
		t.Fatalf("default maze should carry 4 power pellets, got %d", powers)
	}
}
