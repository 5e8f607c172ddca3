// Package testutil provides test utilities for sdr storage and repository
// testing.
package testutil

import (
	"context"
	"fmt"
	"math/rand"

	"sdr/internal/bugstorage"
)

// DefaultUsers is the owner pool used when a generator is created without
// explicit users.
var DefaultUsers = []string{"alice", "bob", "carol"}

var statuses = []string{"new", "open", "in progress", "closed"}

// BugGenerator creates test bugs with deterministic pseudo-random content.
type BugGenerator struct {
	rng    *rand.Rand
	users  []string
	nextID int
}

// NewBugGenerator creates a generator seeded with seed. Bugs are owned by
// users, or DefaultUsers when none are given.
func NewBugGenerator(seed int64, users ...string) *BugGenerator {
	if len(users) == 0 {
		users = DefaultUsers
	}
	return &BugGenerator{
		rng:    rand.New(rand.NewSource(seed)),
		users:  users,
		nextID: 1,
	}
}

// Generate returns n bugs with consecutive IDs. Roughly half have a priority
// and a third carry notes, so optional fields are exercised both ways.
func (g *BugGenerator) Generate(n int) []*bugstorage.Bug {
	bugs := make([]*bugstorage.Bug, 0, n)
	for i := 0; i < n; i++ {
		bug := &bugstorage.Bug{
			ID:          g.nextID,
			User:        g.users[g.rng.Intn(len(g.users))],
			Description: fmt.Sprintf("Generated bug %d", g.nextID),
			Status:      statuses[g.rng.Intn(len(statuses))],
		}
		if g.rng.Intn(2) == 0 {
			bug.SetPriority(g.rng.Intn(10))
		}
		if g.rng.Intn(3) == 0 {
			count := 1 + g.rng.Intn(3)
			for j := 0; j < count; j++ {
				bug.AddNote(fmt.Sprintf("note %d on bug %d", j, g.nextID))
			}
		}
		g.nextID++
		bugs = append(bugs, bug)
	}
	return bugs
}

// GenerateWithDuplicates returns n bugs where the last dups of them reuse
// IDs of earlier bugs. Returns the bugs and the positions holding a
// duplicated ID.
func (g *BugGenerator) GenerateWithDuplicates(n, dups int) ([]*bugstorage.Bug, []int) {
	if dups >= n {
		dups = n - 1
	}
	bugs := g.Generate(n)
	var positions []int
	for i := n - dups; i < n; i++ {
		bugs[i].ID = bugs[g.rng.Intn(n-dups)].ID
		positions = append(positions, i)
	}
	return bugs, positions
}

// Seed writes bugs to store, replacing its contents.
func Seed(ctx context.Context, store bugstorage.RecordStore, bugs []*bugstorage.Bug) error {
	if err := store.Save(ctx, bugs); err != nil {
		return fmt.Errorf("seed %s: %w", store.Path(), err)
	}
	return nil
}
