package model

import "testing"

func buildOrderingModel(t *testing.T) *Model {
	t.Helper()
	m, err := BuildModel([]RawParameter{
		{DisplayName: "Small", Values: []string{"a", "b"}},
		{DisplayName: "Large", Values: []string{"1", "2", "3", "4"}},
		{DisplayName: "Medium", Values: []string{"x", "y", "z"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestOrderingPlan_KeepIsIdentity(t *testing.T) {
	m := buildOrderingModel(t)
	plan := NewOrderingPlan(m, OrderingKeep)
	for i, declPos := range plan.ToGenerator {
		if i != declPos {
			t.Fatalf("keep ordering not identity at %d: %d", i, declPos)
		}
	}
}

func TestOrderingPlan_AutoSortsByDescendingCardinality(t *testing.T) {
	m := buildOrderingModel(t)
	plan := NewOrderingPlan(m, OrderingAuto)

	applied := plan.Apply(m)
	want := []string{"Large", "Medium", "Small"}
	for i, name := range want {
		if applied.Parameters[i].DisplayName != name {
			t.Errorf("position %d = %q, want %q", i, applied.Parameters[i].DisplayName, name)
		}
	}
}

func TestOrderingPlan_ReprojectRowRoundTrips(t *testing.T) {
	m := buildOrderingModel(t)
	plan := NewOrderingPlan(m, OrderingAuto)
	applied := plan.Apply(m)

	// A row in generator (applied) order.
	genRow := make([]string, applied.Len())
	for i, p := range applied.Parameters {
		genRow[i] = p.Values[0]
	}

	declRow := plan.ReprojectRow(genRow)
	for i, p := range m.Parameters {
		if declRow[i] != p.Values[0] {
			t.Errorf("declared position %d = %q, want %q", i, declRow[i], p.Values[0])
		}
	}
}

func TestOrderingPlan_TiesBrokenByOriginalIndex(t *testing.T) {
	m, err := BuildModel([]RawParameter{
		{DisplayName: "First", Values: []string{"a", "b"}},
		{DisplayName: "Second", Values: []string{"c", "d"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan := NewOrderingPlan(m, OrderingAuto)
	if plan.ToGenerator[0] != 0 || plan.ToGenerator[1] != 1 {
		t.Errorf("stable tie-break violated: %v", plan.ToGenerator)
	}
}
