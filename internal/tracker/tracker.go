// Package tracker implements the bug repository: it owns the in-memory bug
// collection for one invocation, repairs duplicate IDs on load and persists
// the whole collection after every mutation.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"sdr/internal/bugstorage"
	"sdr/internal/logging"
)

// Field names a mutable bug field for SetField.
type Field string

const (
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldDescription Field = "description"
	FieldUser        Field = "user"
)

// Reassignment records an ID changed by the repair pass.
type Reassignment struct {
	OldID int
	NewID int
	Bug   *bugstorage.Bug
}

// Tracker is the repository over a RecordStore.
type Tracker struct {
	store   bugstorage.RecordStore
	user    string
	bugs    []*bugstorage.Bug
	repairs []Reassignment
	logger  *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for repair warnings and diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// New creates a Tracker with an empty collection. Call Load to read the
// store.
func New(store bugstorage.RecordStore, user string, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		user:   user,
		bugs:   []*bugstorage.Bug{},
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Open creates a Tracker and loads the store.
func Open(ctx context.Context, store bugstorage.RecordStore, user string, opts ...Option) (*Tracker, error) {
	t := New(store, user, opts...)
	if err := t.Load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// User returns the acting user new bugs are assigned to.
func (t *Tracker) User() string {
	return t.user
}

// Path returns the location of the backing store.
func (t *Tracker) Path() string {
	return t.store.Path()
}

// Bugs returns the collection in store order. The slice is a copy; the
// records are shared.
func (t *Tracker) Bugs() []*bugstorage.Bug {
	return append([]*bugstorage.Bug(nil), t.bugs...)
}

// Repairs returns the ID reassignments made by the most recent Load.
func (t *Tracker) Repairs() []Reassignment {
	return t.repairs
}

// Load replaces the in-memory collection with the store contents, then
// reassigns duplicate IDs. If any ID changed the repaired collection is
// saved before Load returns. Records failing Validate are kept and logged.
func (t *Tracker) Load(ctx context.Context) error {
	bugs, err := t.store.Load(ctx)
	if err != nil {
		return err
	}
	if bugs == nil {
		bugs = []*bugstorage.Bug{}
	}
	t.bugs = bugs
	t.repairs = repairIDs(t.bugs)
	for _, b := range t.bugs {
		if err := b.Validate(); err != nil {
			t.logger.Warn("invalid bug record", "id", b.ID, "path", t.store.Path(), "error", err)
		}
	}

	if len(t.repairs) == 0 {
		return nil
	}
	for _, r := range t.repairs {
		t.logger.Warn("reassigned duplicate bug id", "old_id", r.OldID, "new_id", r.NewID, "path", t.store.Path())
	}
	if err := t.Save(ctx); err != nil {
		return fmt.Errorf("saving repaired bug ids: %w", err)
	}
	return nil
}

// repairIDs gives every bug after the first holder of an ID (and every
// non-positive ID) a fresh ID above the current maximum, in encounter order.
func repairIDs(bugs []*bugstorage.Bug) []Reassignment {
	seen := make(map[int]bool, len(bugs))
	var doubles []*bugstorage.Bug
	for _, b := range bugs {
		if b.ID < 1 || seen[b.ID] {
			doubles = append(doubles, b)
			continue
		}
		seen[b.ID] = true
	}
	if len(doubles) == 0 {
		return nil
	}

	next := bugstorage.MaxID(bugs) + 1
	repairs := make([]Reassignment, 0, len(doubles))
	for _, b := range doubles {
		repairs = append(repairs, Reassignment{OldID: b.ID, NewID: next, Bug: b})
		b.ID = next
		next++
	}
	return repairs
}

// Save writes the whole collection to the store.
func (t *Tracker) Save(ctx context.Context) error {
	return t.store.Save(ctx, t.bugs)
}

// NextID returns the ID the next added bug will receive.
func (t *Tracker) NextID() int {
	return bugstorage.MaxID(t.bugs) + 1
}

// AddBug creates a bug owned by the acting user and persists the
// collection. An empty status becomes bugstorage.DefaultStatus.
func (t *Tracker) AddBug(ctx context.Context, description, status string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%w: description is required", bugstorage.ErrInvalidValue)
	}
	if status == "" {
		status = bugstorage.DefaultStatus
	}

	bug := &bugstorage.Bug{
		ID:          t.NextID(),
		User:        t.user,
		Description: description,
		Status:      status,
	}
	t.bugs = append(t.bugs, bug)
	if err := t.Save(ctx); err != nil {
		return 0, err
	}
	return bug.ID, nil
}

// Get returns the bug with the given ID or bugstorage.ErrNotFound.
func (t *Tracker) Get(id int) (*bugstorage.Bug, error) {
	for _, b := range t.bugs {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("bug %d: %w", id, bugstorage.ErrNotFound)
}

// SetField updates one field of a bug and persists the collection. The
// store is not written when the bug does not exist or the value is invalid.
func (t *Tracker) SetField(ctx context.Context, id int, field Field, value string) (*bugstorage.Bug, error) {
	bug, err := t.Get(id)
	if err != nil {
		return nil, err
	}

	switch field {
	case FieldStatus:
		bug.Status = value
	case FieldPriority:
		p, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: priority must be an integer, got %q", bugstorage.ErrInvalidValue, value)
		}
		bug.SetPriority(p)
	case FieldDescription:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: description is required", bugstorage.ErrInvalidValue)
		}
		bug.Description = value
	case FieldUser:
		bug.User = value
	default:
		return nil, fmt.Errorf("%w: unknown field %q", bugstorage.ErrInvalidValue, field)
	}

	if err := t.Save(ctx); err != nil {
		return nil, err
	}
	return bug, nil
}

// AppendNote adds text to a bug's notes and persists the collection.
func (t *Tracker) AppendNote(ctx context.Context, id int, text string) (*bugstorage.Bug, error) {
	bug, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	bug.AddNote(text)
	if err := t.Save(ctx); err != nil {
		return nil, err
	}
	return bug, nil
}

// ListByUser groups bugs by owner. Users are returned in first-seen order and
// each group keeps store order.
func (t *Tracker) ListByUser() ([]string, map[string][]*bugstorage.Bug) {
	var users []string
	groups := make(map[string][]*bugstorage.Bug)
	for _, b := range t.bugs {
		if _, ok := groups[b.User]; !ok {
			users = append(users, b.User)
		}
		groups[b.User] = append(groups[b.User], b)
	}
	return users, groups
}

// Mine returns the acting user's bugs in store order.
func (t *Tracker) Mine() []*bugstorage.Bug {
	var out []*bugstorage.Bug
	for _, b := range t.bugs {
		if b.User == t.user {
			out = append(out, b)
		}
	}
	return out
}

// FindByDescription returns bugs whose description matches pattern.
func (t *Tracker) FindByDescription(pattern string) []*bugstorage.Bug {
	return t.filter(pattern, func(b *bugstorage.Bug) string { return b.Description })
}

// FindByStatus returns bugs whose status matches pattern.
func (t *Tracker) FindByStatus(pattern string) []*bugstorage.Bug {
	return t.filter(pattern, func(b *bugstorage.Bug) string { return b.Status })
}

func (t *Tracker) filter(pattern string, field func(*bugstorage.Bug) string) []*bugstorage.Bug {
	re := compilePattern(pattern)
	var out []*bugstorage.Bug
	for _, b := range t.bugs {
		if re.MatchString(field(b)) {
			out = append(out, b)
		}
	}
	return out
}

// compilePattern compiles pattern as an unanchored, case-sensitive regular
// expression. Patterns that are not valid expressions match literally.
func compilePattern(pattern string) *regexp.Regexp {
	if re, err := regexp.Compile(pattern); err == nil {
		return re
	}
	return regexp.MustCompile(regexp.QuoteMeta(pattern))
}
