package model

import "testing"

func TestTopoSortShapes_Order(t *testing.T) {
	order, err := topoSortShapes(3, func(i int) []int {
		switch i {
		case 0:
			return nil
		case 1:
			return []int{0}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{0, 1, 2}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSortShapes_PicksSmallestReady(t *testing.T) {
	// 2 and 0 are both ready up front; 0 must come first.
	order, err := topoSortShapes(3, func(i int) []int {
		if i == 1 {
			return []int{2}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{0, 2, 1}
	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSortShapes_Cycle(t *testing.T) {
	_, err := topoSortShapes(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestTopoSortShapes_Empty(t *testing.T) {
	order, err := topoSortShapes(0, func(i int) []int { return nil })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if order != nil {
		t.Fatalf("expected nil order, got %v", order)
	}
}
