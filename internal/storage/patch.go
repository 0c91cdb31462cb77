package storage

// Patch structs carry optional fields for partial updates. Nil fields leave
// the stored value unchanged.

type TaskPatch struct {
	Title             *string
	Description       *string
	DueDate           *string
	Category          *string
	Priority          *string
	Points            *int
	ProjectID         **string
	RepeatType        *string
	CustomRepeatDays  *int
	MovableRepeatDays *int
	Completed         *bool
	CompletedDate     *string
	// ClearCompletedDate nulls completedDate; used by recurrence resets.
	ClearCompletedDate bool
}

func (p TaskPatch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Points != nil {
		t.Points = *p.Points
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.RepeatType != nil {
		t.RepeatType = *p.RepeatType
	}
	if p.CustomRepeatDays != nil {
		t.CustomRepeatDays = *p.CustomRepeatDays
	}
	if p.MovableRepeatDays != nil {
		t.MovableRepeatDays = *p.MovableRepeatDays
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.CompletedDate != nil {
		v := *p.CompletedDate
		t.CompletedDate = &v
	}
	if p.ClearCompletedDate {
		t.CompletedDate = nil
	}
}

type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
}

func (p ProjectPatch) apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Color != nil {
		pr.Color = *p.Color
	}
}

type HabitPatch struct {
	Name        *string
	Description *string
	Icon        *string
	Category    *string
	Points      *int
	TargetGoal  *int
}

func (p HabitPatch) apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Icon != nil {
		h.Icon = *p.Icon
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Points != nil {
		h.Points = *p.Points
	}
	if p.TargetGoal != nil {
		h.TargetGoal = *p.TargetGoal
	}
	if h.TargetGoal == 0 {
		h.TargetGoal = 1
	}
}

type FinancePatch struct {
	Description *string
	Amount      *float64
	Date        *string
	Category    *string
	Recurring   *string
}

func (p FinancePatch) apply(f *FinanceItem) {
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Recurring != nil {
		f.Recurring = *p.Recurring
	}
}

type RewardPatch struct {
	Name        *string
	Description *string
	Cost        *int
	Purchased   *bool
	Repeatable  *bool
}

func (p RewardPatch) apply(r *Reward) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Cost != nil {
		r.Cost = *p.Cost
	}
	if p.Purchased != nil {
		r.Purchased = *p.Purchased
	}
	if p.Repeatable != nil {
		r.Repeatable = *p.Repeatable
	}
}

type SettingsPatch struct {
	TasksPerLevel *int
}

func (p SettingsPatch) apply(s *Settings) {
	if p.TasksPerLevel != nil {
		s.TasksPerLevel = *p.TasksPerLevel
	}
}
