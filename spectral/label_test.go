package spectral

import "testing"

func TestLabelComponentsDiagonalTouch(t *testing.T) {
	binary := [][]bool{
		{true, false},
		{false, true},
	}
	labels, n := LabelComponents(binary)
	if n != 1 {
		t.Fatalf("Expected 1 region for diagonal neighbors, got %d", n)
	}
	if labels[0][0] != labels[1][1] || labels[0][0] == 0 {
		t.Errorf("Diagonal cells should share a label: %v", labels)
	}
	if labels[0][1] != 0 || labels[1][0] != 0 {
		t.Errorf("Background cells should stay 0: %v", labels)
	}
}

func TestLabelComponentsSeparateRegions(t *testing.T) {
	binary := [][]bool{
		{true, false, true},
		{false, false, false},
		{true, true, false},
	}
	labels, n := LabelComponents(binary)
	if n != 3 {
		t.Fatalf("Expected 3 regions, got %d", n)
	}
	if labels[0][0] == labels[0][2] || labels[0][0] == labels[2][0] || labels[0][2] == labels[2][0] {
		t.Errorf("Separate regions share labels: %v", labels)
	}
	if labels[2][0] != labels[2][1] {
		t.Errorf("Adjacent cells split into different labels: %v", labels)
	}
}

func TestLabelComponentsRing(t *testing.T) {
	// A hollow ring is one region; the hole stays background
	binary := [][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, true},
	}
	labels, n := LabelComponents(binary)
	if n != 1 {
		t.Fatalf("Expected 1 region, got %d", n)
	}
	if labels[1][1] != 0 {
		t.Errorf("Hole should stay background, got %d", labels[1][1])
	}
}

func TestLabelComponentsEmpty(t *testing.T) {
	labels, n := LabelComponents(nil)
	if labels != nil || n != 0 {
		t.Errorf("Expected no labels for nil input, got %v, %d", labels, n)
	}

	all := [][]bool{{false, false}}
	labels, n = LabelComponents(all)
	if n != 0 || labels[0][0] != 0 || labels[0][1] != 0 {
		t.Errorf("Expected all background, got %v, %d", labels, n)
	}
}
