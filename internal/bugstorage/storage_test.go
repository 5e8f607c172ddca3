package bugstorage

import (
	"errors"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestSortByPriorityIsStable(t *testing.T) {
	bugs := []*Bug{
		{ID: 1, Description: "a", Priority: intPtr(5)},
		{ID: 2, Description: "b", Priority: intPtr(3)},
		{ID: 3, Description: "c"},
		{ID: 4, Description: "d", Priority: intPtr(3)},
		{ID: 5, Description: "e", Priority: intPtr(0)},
	}

	SortByPriority(bugs)

	want := []int{3, 5, 2, 4, 1}
	for i, id := range want {
		if bugs[i].ID != id {
			t.Fatalf("position %d: got bug %d, want %d (order %v)", i, bugs[i].ID, id, ids(bugs))
		}
	}
}

func TestMaxID(t *testing.T) {
	tests := []struct {
		name string
		bugs []*Bug
		want int
	}{
		{"empty", nil, 0},
		{"single", []*Bug{{ID: 4}}, 4},
		{"unordered", []*Bug{{ID: 2}, {ID: 9}, {ID: 3}}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxID(tt.bugs); got != tt.want {
				t.Errorf("MaxID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		bug     Bug
		wantErr bool
	}{
		{"valid", Bug{ID: 1, Description: "crash"}, false},
		{"zero id", Bug{ID: 0, Description: "crash"}, true},
		{"blank description", Bug{ID: 1, Description: "  "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bug.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Validate() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Bug{ID: 1, Description: "x", Priority: intPtr(2), Notes: []string{"one"}}
	c := orig.Clone()
	c.SetPriority(7)
	c.AddNote("two")
	c.Notes[0] = "changed"

	if orig.EffectivePriority() != 2 {
		t.Errorf("original priority = %d, want 2", orig.EffectivePriority())
	}
	if len(orig.Notes) != 1 || orig.Notes[0] != "one" {
		t.Errorf("original notes = %v, want [one]", orig.Notes)
	}
}

func ids(bugs []*Bug) []int {
	out := make([]int, len(bugs))
	for i, b := range bugs {
		out[i] = b.ID
	}
	return out
}
