package partition

import (
	"testing"
)

// equal checks equality of int slices (ports the teacher's helper of the
// same name, used throughout this package's tests).
func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

func checkInvariants(t *testing.T, p *Partition) {
	t.Helper()

	seen := make([]bool, p.Size())
	for i := 0; i < p.CellCount(); i++ {
		members := p.CellMembers(i)
		if len(members) == 0 {
			t.Fatalf("I4 violated: cell %d is empty", i)
		}
		color := p.CellColor(i)
		if idx := p.ColorIndex(color); idx != i {
			t.Fatalf("I2 violated: color_of_cell[%d] = %d, want %d", color, idx, i)
		}
		for _, n := range members {
			if seen[n] {
				t.Fatalf("I1 violated: node %d appears in more than one cell", n)
			}
			seen[n] = true
			if p.ColorOfNode(n) != color {
				t.Fatalf("I2 violated: node %d has color %d, cell %d has color %d", n, p.ColorOfNode(n), i, color)
			}
			if p.CellOfNode(n) != i {
				t.Fatalf("I2 violated: node %d maps to cell %d, expected %d", n, p.CellOfNode(n), i)
			}
		}
	}
	for _, ok := range seen {
		if !ok {
			t.Fatalf("I1 violated: some node is not covered by any cell")
		}
	}

	colors := make(map[int]bool)
	for i := 0; i < p.CellCount(); i++ {
		c := p.CellColor(i)
		if colors[c] {
			t.Fatalf("I3 violated: color %d used by more than one cell", c)
		}
		colors[c] = true
	}
}

func TestNewUniform(t *testing.T) {
	p := New(10)
	if p.CellCount() != 1 {
		t.Fatalf("expected 1 cell, got %d", p.CellCount())
	}
	if p.IsDiscrete() {
		t.Fatal("uniform partition of 10 nodes should not be discrete")
	}
	checkInvariants(t, p)
	if !equal(p.CellMembers(0), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("unexpected members: %v", p.CellMembers(0))
	}
}

func TestNewEmpty(t *testing.T) {
	p := New(0)
	if p.CellCount() != 0 {
		t.Fatalf("expected 0 cells, got %d", p.CellCount())
	}
	if !p.IsDiscrete() {
		t.Fatal("empty partition should be vacuously discrete")
	}
}

func TestIndividualize(t *testing.T) {
	p := New(5)
	newColor := p.Individualize(0, 2)
	if newColor != 1 {
		t.Fatalf("expected new color 1, got %d", newColor)
	}
	checkInvariants(t, p)

	if p.CellCount() != 2 {
		t.Fatalf("expected 2 cells, got %d", p.CellCount())
	}
	singletonIdx := p.CellOfNode(2)
	if p.CellColor(singletonIdx) != 0 {
		t.Fatalf("singleton should keep the old color 0, got %d", p.CellColor(singletonIdx))
	}
	if !equal(p.CellMembers(singletonIdx), []int{2}) {
		t.Fatalf("singleton should contain only node 2, got %v", p.CellMembers(singletonIdx))
	}
	residualIdx := p.CellOfNode(0)
	if p.CellColor(residualIdx) != 1 {
		t.Fatalf("residual should have color 1, got %d", p.CellColor(residualIdx))
	}
	if !equal(p.CellMembers(residualIdx), []int{0, 1, 3, 4}) {
		t.Fatalf("unexpected residual members: %v", p.CellMembers(residualIdx))
	}
}

func TestIndividualizePanicsOnSingleton(t *testing.T) {
	p := New(3)
	p.Individualize(0, 0) // cell 0 now has {1,2}; new singleton has {0}
	singletonIdx := p.CellOfNode(0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on individualizing a singleton cell")
		}
	}()
	p.Individualize(singletonIdx, 0)
}

func TestSplitCell(t *testing.T) {
	p := New(6)
	residualColor := p.SplitCell(0, []int{1, 3})
	if residualColor != 2 {
		t.Fatalf("expected residual color 2, got %d", residualColor)
	}
	checkInvariants(t, p)

	newIdx := p.CellOfNode(1)
	if p.CellColor(newIdx) != 0 {
		t.Fatalf("new cell should keep old color 0, got %d", p.CellColor(newIdx))
	}
	if !equal(p.CellMembers(newIdx), []int{1, 3}) {
		t.Fatalf("unexpected new cell members: %v", p.CellMembers(newIdx))
	}
	residualIdx := p.CellOfNode(0)
	if !equal(p.CellMembers(residualIdx), []int{0, 2, 4, 5}) {
		t.Fatalf("unexpected residual members: %v", p.CellMembers(residualIdx))
	}
}

func TestSplitCellPanicsOnFullSubset(t *testing.T) {
	p := New(3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic splitting off the whole cell")
		}
	}()
	p.SplitCell(0, []int{0, 1, 2})
}

func TestCloneIsIndependent(t *testing.T) {
	p := New(4)
	clone := p.Clone()
	clone.Individualize(0, 1)

	if p.CellCount() != 1 {
		t.Fatalf("mutating the clone should not affect the original, got %d cells", p.CellCount())
	}
	if clone.CellCount() != 2 {
		t.Fatalf("expected clone to have 2 cells, got %d", clone.CellCount())
	}
	checkInvariants(t, p)
	checkInvariants(t, clone)
}

func TestSelectTargetCell(t *testing.T) {
	p := New(5)
	p.Individualize(0, 0)
	// Cell 0 now holds {1,2,3,4}; cell 1 holds the singleton {0}.
	target := p.SelectTargetCell()
	if len(p.CellMembers(target)) <= 1 {
		t.Fatalf("expected a non-singleton target, got cell %d with members %v", target, p.CellMembers(target))
	}
}

func TestSelectTargetCellPanicsWhenDiscrete(t *testing.T) {
	p := New(2)
	p.Individualize(0, 0)
	if !p.IsDiscrete() {
		t.Fatal("expected discrete partition")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic selecting a target cell from a discrete partition")
		}
	}()
	p.SelectTargetCell()
}
