package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidImport reports a malformed or schema-incompatible import payload.
// It is the only error surfaced for expected conditions; missing ids and
// duplicate categories degrade to nil results and boolean failures.
var ErrInvalidImport = errors.New("invalid import payload")

// Store owns the in-memory document and writes it through to a Backend on
// every mutation. Construct one per process; tests build isolated instances.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *Document
	now     func() time.Time
}

type Option func(*Store)

// WithNow overrides the clock, for date-sensitive tests.
func WithNow(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New loads the persisted document through the backend, creating and
// persisting the default document when none exists.
func New(backend Backend, opts ...Option) (*Store, error) {
	s := &Store{backend: backend, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := backend.Load()
	if err != nil {
		return nil, err
	}
	if !ok {
		s.doc = NewDocument(s.now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	s.doc = &doc
	return s, nil
}

// Now returns the store's current time. The engine shares this clock so that
// one injected time drives every date computation.
func (s *Store) Now() time.Time { return s.now() }

// Today returns the current calendar day string.
func (s *Store) Today() string { return FormatDate(s.now()) }

// Mutate applies fn to the document and persists the whole snapshot,
// stamping lastUpdated. Every mutator below is built on it.
func (s *Store) Mutate(fn func(*Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
	s.doc.LastUpdated = s.now()
	return s.persist()
}

// View runs fn against the document without persisting. fn must not retain
// references past the call.
func (s *Store) View(fn func(*Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return s.backend.Save(data)
}

func (s *Store) newID() string {
	return uuid.NewString()
}

// NewID mints an id in the document-wide scheme, for records assembled by
// collaborators before a Mutate call.
func (s *Store) NewID() string { return s.newID() }

// LastUpdated reports when the document was last persisted with a stamp.
func (s *Store) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.LastUpdated
}

// Tasks

func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.doc.Tasks))
	for i := range s.doc.Tasks {
		out[i] = cloneTask(s.doc.Tasks[i])
	}
	return out
}

func (s *Store) Task(id string) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			t := cloneTask(s.doc.Tasks[i])
			return &t
		}
	}
	return nil
}

// AddTask assigns an id and creation timestamp, forces the task incomplete,
// appends it, and persists.
func (s *Store) AddTask(t Task) (Task, error) {
	t.ID = s.newID()
	t.CreatedDate = s.now()
	t.Completed = false
	t.CompletedDate = nil
	if t.RepeatType == "" {
		t.RepeatType = "none"
	}
	err := s.Mutate(func(d *Document) {
		d.Tasks = append(d.Tasks, t)
	})
	return t, err
}

// UpdateTask merges the patch into the stored task. A missing id returns
// (nil, nil); absence is for the caller to interpret.
func (s *Store) UpdateTask(id string, p TaskPatch) (*Task, error) {
	var updated *Task
	err := s.Mutate(func(d *Document) {
		for i := range d.Tasks {
			if d.Tasks[i].ID == id {
				p.apply(&d.Tasks[i])
				t := cloneTask(d.Tasks[i])
				updated = &t
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes the task if present; deleting a missing id is a no-op.
func (s *Store) DeleteTask(id string) error {
	return s.Mutate(func(d *Document) {
		d.Tasks = removeByID(d.Tasks, id, func(t Task) string { return t.ID })
	})
}

// Projects

func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, len(s.doc.Projects))
	copy(out, s.doc.Projects)
	return out
}

func (s *Store) Project(id string) *Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			p := s.doc.Projects[i]
			return &p
		}
	}
	return nil
}

func (s *Store) AddProject(p Project) (Project, error) {
	p.ID = s.newID()
	p.CreatedDate = s.now()
	err := s.Mutate(func(d *Document) {
		d.Projects = append(d.Projects, p)
	})
	return p, err
}

func (s *Store) UpdateProject(id string, p ProjectPatch) (*Project, error) {
	var updated *Project
	err := s.Mutate(func(d *Document) {
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				p.apply(&d.Projects[i])
				pr := d.Projects[i]
				updated = &pr
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project and nulls projectId on every task that
// referenced it. Tasks themselves always survive.
func (s *Store) DeleteProject(id string) error {
	return s.Mutate(func(d *Document) {
		d.Projects = removeByID(d.Projects, id, func(p Project) string { return p.ID })
		for i := range d.Tasks {
			if d.Tasks[i].ProjectID != nil && *d.Tasks[i].ProjectID == id {
				d.Tasks[i].ProjectID = nil
			}
		}
	})
}

// Habits

func (s *Store) Habits() []Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Habit, len(s.doc.Habits))
	for i := range s.doc.Habits {
		out[i] = cloneHabit(s.doc.Habits[i])
	}
	return out
}

func (s *Store) Habit(id string) *Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID == id {
			h := cloneHabit(s.doc.Habits[i])
			return &h
		}
	}
	return nil
}

func (s *Store) AddHabit(h Habit) (Habit, error) {
	h.ID = s.newID()
	h.CreatedDate = s.now()
	h.Streak = 0
	h.LastCompletedDate = nil
	if h.TargetGoal == 0 {
		h.TargetGoal = 1
	}
	err := s.Mutate(func(d *Document) {
		d.Habits = append(d.Habits, h)
	})
	return h, err
}

func (s *Store) UpdateHabit(id string, p HabitPatch) (*Habit, error) {
	var updated *Habit
	err := s.Mutate(func(d *Document) {
		for i := range d.Habits {
			if d.Habits[i].ID == id {
				p.apply(&d.Habits[i])
				h := cloneHabit(d.Habits[i])
				updated = &h
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeleteHabit(id string) error {
	return s.Mutate(func(d *Document) {
		d.Habits = removeByID(d.Habits, id, func(h Habit) string { return h.ID })
	})
}

// LogHabitCompletion appends a completion log for the given calendar day and
// bumps the habit's streak and lastCompletedDate. The streak counter is
// monotonic; no missed-day penalty exists in this core.
func (s *Store) LogHabitCompletion(habitID string, day time.Time) (HabitLog, error) {
	log := HabitLog{
		ID:        s.newID(),
		HabitID:   habitID,
		Date:      FormatDate(day),
		Timestamp: s.now(),
	}
	err := s.Mutate(func(d *Document) {
		d.DailyHabitLogs = append(d.DailyHabitLogs, log)
		for i := range d.Habits {
			if d.Habits[i].ID == habitID {
				date := log.Date
				d.Habits[i].LastCompletedDate = &date
				d.Habits[i].Streak++
				return
			}
		}
	})
	return log, err
}

func (s *Store) HabitLogs() []HabitLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HabitLog, len(s.doc.DailyHabitLogs))
	copy(out, s.doc.DailyHabitLogs)
	return out
}

func (s *Store) IsHabitCompletedToday(habitID string) bool {
	return s.CountHabitCompletionsToday(habitID) > 0
}

func (s *Store) CountHabitCompletionsToday(habitID string) int {
	today := s.Today()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, log := range s.doc.DailyHabitLogs {
		if log.HabitID == habitID && log.Date == today {
			n++
		}
	}
	return n
}

// Finance. Expenses, revenue, and charges share one record shape and are
// discriminated by the sequence that holds them.

type financeKind int

const (
	financeExpenses financeKind = iota
	financeRevenue
	financeCharges
)

func financeSeq(d *Document, kind financeKind) *[]FinanceItem {
	switch kind {
	case financeRevenue:
		return &d.Revenue
	case financeCharges:
		return &d.Charges
	default:
		return &d.Expenses
	}
}

func (s *Store) financeList(kind financeKind) []FinanceItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := *financeSeq(s.doc, kind)
	out := make([]FinanceItem, len(seq))
	copy(out, seq)
	return out
}

func (s *Store) financeAdd(kind financeKind, f FinanceItem) (FinanceItem, error) {
	f.ID = s.newID()
	f.CreatedDate = s.now()
	err := s.Mutate(func(d *Document) {
		seq := financeSeq(d, kind)
		*seq = append(*seq, f)
	})
	return f, err
}

func (s *Store) financeUpdate(kind financeKind, id string, p FinancePatch) (*FinanceItem, error) {
	var updated *FinanceItem
	err := s.Mutate(func(d *Document) {
		seq := *financeSeq(d, kind)
		for i := range seq {
			if seq[i].ID == id {
				p.apply(&seq[i])
				f := seq[i]
				updated = &f
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) financeDelete(kind financeKind, id string) error {
	return s.Mutate(func(d *Document) {
		seq := financeSeq(d, kind)
		*seq = removeByID(*seq, id, func(f FinanceItem) string { return f.ID })
	})
}

func (s *Store) Expenses() []FinanceItem { return s.financeList(financeExpenses) }
func (s *Store) AddExpense(f FinanceItem) (FinanceItem, error) {
	return s.financeAdd(financeExpenses, f)
}
func (s *Store) UpdateExpense(id string, p FinancePatch) (*FinanceItem, error) {
	return s.financeUpdate(financeExpenses, id, p)
}
func (s *Store) DeleteExpense(id string) error { return s.financeDelete(financeExpenses, id) }

func (s *Store) Revenue() []FinanceItem { return s.financeList(financeRevenue) }
func (s *Store) AddRevenue(f FinanceItem) (FinanceItem, error) {
	return s.financeAdd(financeRevenue, f)
}
func (s *Store) UpdateRevenue(id string, p FinancePatch) (*FinanceItem, error) {
	return s.financeUpdate(financeRevenue, id, p)
}
func (s *Store) DeleteRevenue(id string) error { return s.financeDelete(financeRevenue, id) }

func (s *Store) Charges() []FinanceItem { return s.financeList(financeCharges) }
func (s *Store) AddCharge(f FinanceItem) (FinanceItem, error) {
	return s.financeAdd(financeCharges, f)
}
func (s *Store) UpdateCharge(id string, p FinancePatch) (*FinanceItem, error) {
	return s.financeUpdate(financeCharges, id, p)
}
func (s *Store) DeleteCharge(id string) error { return s.financeDelete(financeCharges, id) }

// Rewards

func (s *Store) Rewards() []Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reward, len(s.doc.Rewards))
	copy(out, s.doc.Rewards)
	return out
}

func (s *Store) Reward(id string) *Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Rewards {
		if s.doc.Rewards[i].ID == id {
			r := s.doc.Rewards[i]
			return &r
		}
	}
	return nil
}

func (s *Store) AddReward(r Reward) (Reward, error) {
	r.ID = s.newID()
	r.CreatedDate = s.now()
	r.Purchased = false
	err := s.Mutate(func(d *Document) {
		d.Rewards = append(d.Rewards, r)
	})
	return r, err
}

func (s *Store) UpdateReward(id string, p RewardPatch) (*Reward, error) {
	var updated *Reward
	err := s.Mutate(func(d *Document) {
		for i := range d.Rewards {
			if d.Rewards[i].ID == id {
				p.apply(&d.Rewards[i])
				r := d.Rewards[i]
				updated = &r
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) DeleteReward(id string) error {
	return s.Mutate(func(d *Document) {
		d.Rewards = removeByID(d.Rewards, id, func(r Reward) string { return r.ID })
	})
}

func (s *Store) PurchaseHistory() []Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Purchase, len(s.doc.PurchaseHistory))
	copy(out, s.doc.PurchaseHistory)
	return out
}

// Categories

func (s *Store) Categories(domain string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := categorySeq(&s.doc.Categories, domain)
	if seq == nil {
		return nil
	}
	out := make([]string, len(*seq))
	copy(out, *seq)
	return out
}

// AddCategory appends a category label to the given domain. It reports false
// for unknown domains, empty labels, and duplicates; the caller decides how
// to distinguish those.
func (s *Store) AddCategory(domain, name string) (bool, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, nil
	}
	added := false
	err := s.Mutate(func(d *Document) {
		seq := categorySeq(&d.Categories, domain)
		if seq == nil {
			return
		}
		for _, existing := range *seq {
			if existing == trimmed {
				return
			}
		}
		*seq = append(*seq, trimmed)
		added = true
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func categorySeq(c *Categories, domain string) *[]string {
	switch domain {
	case "tasks":
		return &c.Tasks
	case "habits":
		return &c.Habits
	case "finance":
		return &c.Finance
	default:
		return nil
	}
}

// Settings and stats

func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

func (s *Store) UpdateSettings(p SettingsPatch) (Settings, error) {
	var out Settings
	err := s.Mutate(func(d *Document) {
		p.apply(&d.Settings)
		out = d.Settings
	})
	return out, err
}

func (s *Store) UserStats() UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneStats(s.doc.UserStats)
}

// Export, import, clear

// ExportData returns the document as pretty-printed JSON.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// ImportData validates and atomically replaces the whole document. The
// payload must parse and carry a version marker plus tasks and projects
// collections, even if empty. The incoming lastUpdated stamp is kept as-is
// until the next mutation.
func (s *Store) ImportData(payload []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	for _, key := range []string{"version", "tasks", "projects"} {
		raw, ok := probe[key]
		if !ok || bytes.Equal(raw, []byte("null")) {
			return fmt.Errorf("%w: missing %s", ErrInvalidImport, key)
		}
	}
	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &doc
	return s.persist()
}

// ClearAllData discards the persisted document and recreates the default one.
func (s *Store) ClearAllData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Clear(); err != nil {
		return err
	}
	s.doc = NewDocument(s.now())
	return s.persist()
}

// helpers

func removeByID[T any](seq []T, id string, idOf func(T) string) []T {
	out := seq[:0]
	for _, item := range seq {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func cloneTask(t Task) Task {
	if t.ProjectID != nil {
		v := *t.ProjectID
		t.ProjectID = &v
	}
	if t.CompletedDate != nil {
		v := *t.CompletedDate
		t.CompletedDate = &v
	}
	return t
}

func cloneHabit(h Habit) Habit {
	if h.LastCompletedDate != nil {
		v := *h.LastCompletedDate
		h.LastCompletedDate = &v
	}
	return h
}

func cloneStats(st UserStats) UserStats {
	if st.LastActivityDate != nil {
		v := *st.LastActivityDate
		st.LastActivityDate = &v
	}
	return st
}
