package model

import "testing"

func TestBuildModel_ValidTwoParameters(t *testing.T) {
	m, err := BuildModel([]RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Firefox"}},
		{DisplayName: "OS", Values: []string{"Windows", "Linux"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 parameters, got %d", m.Len())
	}
	if got := m.Parameters[0].SafeName; got != "Browser" {
		t.Errorf("safe name = %q, want %q", got, "Browser")
	}
}

func TestBuildModel_RejectsSingleParameter(t *testing.T) {
	_, err := BuildModel([]RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Firefox"}},
	})
	if err == nil {
		t.Fatal("expected error for single-parameter model")
	}
}

func TestBuildModel_RejectsNoPairPossible(t *testing.T) {
	_, err := BuildModel([]RawParameter{
		{DisplayName: "A", Values: []string{"only"}},
		{DisplayName: "B", Values: []string{"only"}},
	})
	if err == nil {
		t.Fatal("expected error when no parameter has 2+ values")
	}
}

func TestBuildModel_RejectsCaseInsensitiveDuplicateNames(t *testing.T) {
	_, err := BuildModel([]RawParameter{
		{DisplayName: "Browser", Values: []string{"A", "B"}},
		{DisplayName: "browser", Values: []string{"C", "D"}},
	})
	if err == nil {
		t.Fatal("expected error for case-insensitive duplicate parameter names")
	}
}

func TestBuildModel_RejectsDuplicateValues(t *testing.T) {
	_, err := BuildModel([]RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "Chrome"}},
		{DisplayName: "OS", Values: []string{"A", "B"}},
	})
	if err == nil {
		t.Fatal("expected error for duplicate value within parameter")
	}
}

func TestBuildModel_RejectsEmptyValueAfterTrim(t *testing.T) {
	_, err := BuildModel([]RawParameter{
		{DisplayName: "Browser", Values: []string{"Chrome", "   "}},
		{DisplayName: "OS", Values: []string{"A", "B"}},
	})
	if err == nil {
		t.Fatal("expected error for blank value")
	}
}

func TestSafeName_UniqueAcrossCollisions(t *testing.T) {
	used := map[string]bool{}
	names := []string{"Browser!", "Browser?", "Browser#"}
	seen := map[string]bool{}
	for _, n := range names {
		sn := uniqueSafeName(n, used)
		if seen[sn] {
			t.Fatalf("safe name %q generated twice", sn)
		}
		seen[sn] = true
	}
}

func TestSafeName_TrimsLeadingDigitsAndUnderscores(t *testing.T) {
	if got := SafeName("123_abc"); got != "abc" {
		t.Errorf("SafeName(123_abc) = %q, want %q", got, "abc")
	}
}

func TestSafeName_AllDisallowedFallsBackToParam(t *testing.T) {
	if got := SafeName("!!!"); got != "param" {
		t.Errorf("SafeName(!!!) = %q, want %q", got, "param")
	}
}

func TestCardinalities(t *testing.T) {
	m, err := BuildModel([]RawParameter{
		{DisplayName: "A", Values: []string{"1", "2", "3"}},
		{DisplayName: "B", Values: []string{"x", "y"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := m.Cardinalities()
	want := []int{3, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Cardinalities() = %v, want %v", got, want)
	}
}
