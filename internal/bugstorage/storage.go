// Package bugstorage defines the bug record and the interface for persisting
// the bug collection. Storage engines (currently a single structured file)
// implement RecordStore.
package bugstorage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by the repository and RecordStore implementations.
var (
	ErrNotFound     = errors.New("bug not found")
	ErrInvalidValue = errors.New("invalid value")
)

// DefaultStatus is assigned to bugs created without an explicit status.
const DefaultStatus = "new"

// Bug is a single tracked record.
type Bug struct {
	ID          int      `yaml:"id" json:"id" toml:"id"`
	User        string   `yaml:"user" json:"user" toml:"user"`
	Description string   `yaml:"description" json:"description" toml:"description"`
	Status      string   `yaml:"status" json:"status" toml:"status"`
	Priority    *int     `yaml:"priority,omitempty" json:"priority,omitempty" toml:"priority"`
	Notes       []string `yaml:"notes,omitempty" json:"notes,omitempty" toml:"notes,omitempty"`
}

// EffectivePriority returns the priority used for ordering. An unset
// priority sorts as 0.
func (b *Bug) EffectivePriority() int {
	if b.Priority == nil {
		return 0
	}
	return *b.Priority
}

// SetPriority sets the priority field.
func (b *Bug) SetPriority(p int) {
	b.Priority = &p
}

// AddNote appends text to the bug's notes.
func (b *Bug) AddNote(text string) {
	b.Notes = append(b.Notes, text)
}

// Clone returns a deep copy of the bug.
func (b *Bug) Clone() *Bug {
	c := *b
	if b.Priority != nil {
		p := *b.Priority
		c.Priority = &p
	}
	if b.Notes != nil {
		c.Notes = append([]string(nil), b.Notes...)
	}
	return &c
}

// Validate checks the fields that must hold for every stored bug.
func (b *Bug) Validate() error {
	if b.ID < 1 {
		return fmt.Errorf("%w: bug id must be positive, got %d", ErrInvalidValue, b.ID)
	}
	if strings.TrimSpace(b.Description) == "" {
		return fmt.Errorf("%w: bug %d has an empty description", ErrInvalidValue, b.ID)
	}
	return nil
}

// MaxID returns the highest ID in bugs, or 0 for an empty collection.
func MaxID(bugs []*Bug) int {
	max := 0
	for _, b := range bugs {
		if b.ID > max {
			max = b.ID
		}
	}
	return max
}

// SortByPriority orders bugs by ascending effective priority in place.
// Bugs with equal priority keep their relative order.
func SortByPriority(bugs []*Bug) {
	sort.SliceStable(bugs, func(i, j int) bool {
		return bugs[i].EffectivePriority() < bugs[j].EffectivePriority()
	})
}

// RecordStore loads and saves the complete bug collection.
type RecordStore interface {
	// Load returns every stored bug in store order. A store whose backing
	// file does not exist yet returns an empty collection and no error.
	Load(ctx context.Context) ([]*Bug, error)

	// Save replaces the stored collection with bugs.
	Save(ctx context.Context, bugs []*Bug) error

	// Path returns the location of the backing file.
	Path() string
}
