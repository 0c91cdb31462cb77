package engine

import (
	"fmt"

	"momentum/internal/storage"
)

// Create inputs are validated declaratively before they reach the store.
// Validation failures are the one create-path error callers must expect.

type CreateTaskInput struct {
	Title             string `validate:"required"`
	Description       string
	DueDate           string `validate:"omitempty,datetime=2006-01-02"`
	Category          string
	Priority          Priority `validate:"required,oneof=low medium high"`
	Points            int      `validate:"gte=0"`
	ProjectID         *string
	RepeatType        RepeatType `validate:"required,oneof=none daily weekly monthly yearly custom movable"`
	CustomRepeatDays  int        `validate:"omitempty,gt=0"`
	MovableRepeatDays int        `validate:"omitempty,gt=0"`
}

func (s *Service) CreateTask(in CreateTaskInput) (storage.Task, error) {
	if err := s.validate.Struct(in); err != nil {
		return storage.Task{}, fmt.Errorf("invalid task: %w", err)
	}
	if in.RepeatType == RepeatCustom && in.CustomRepeatDays <= 0 {
		return storage.Task{}, fmt.Errorf("invalid task: custom repeat requires repeat days")
	}
	if in.RepeatType == RepeatMovable && in.MovableRepeatDays <= 0 {
		return storage.Task{}, fmt.Errorf("invalid task: movable repeat requires repeat days")
	}
	if in.ProjectID != nil && s.store.Project(*in.ProjectID) == nil {
		return storage.Task{}, NotFoundError{Kind: "project", ID: *in.ProjectID}
	}
	return s.store.AddTask(storage.Task{
		Title:             in.Title,
		Description:       in.Description,
		DueDate:           in.DueDate,
		Category:          in.Category,
		Priority:          string(in.Priority),
		Points:            in.Points,
		ProjectID:         in.ProjectID,
		RepeatType:        string(in.RepeatType),
		CustomRepeatDays:  in.CustomRepeatDays,
		MovableRepeatDays: in.MovableRepeatDays,
	})
}

type CreateProjectInput struct {
	Name        string `validate:"required"`
	Description string
	Color       string `validate:"required"`
}

func (s *Service) CreateProject(in CreateProjectInput) (storage.Project, error) {
	if err := s.validate.Struct(in); err != nil {
		return storage.Project{}, fmt.Errorf("invalid project: %w", err)
	}
	return s.store.AddProject(storage.Project{
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
	})
}

type CreateHabitInput struct {
	Name        string `validate:"required"`
	Description string
	Icon        string
	Category    string
	Points      int `validate:"gte=0"`
	TargetGoal  int `validate:"gte=0"`
}

func (s *Service) CreateHabit(in CreateHabitInput) (storage.Habit, error) {
	if err := s.validate.Struct(in); err != nil {
		return storage.Habit{}, fmt.Errorf("invalid habit: %w", err)
	}
	return s.store.AddHabit(storage.Habit{
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		Category:    in.Category,
		Points:      in.Points,
		TargetGoal:  in.TargetGoal,
	})
}

// FinanceKind selects which document sequence a finance entry lands in.
type FinanceKind string

const (
	FinanceExpense FinanceKind = "expense"
	FinanceRevenue FinanceKind = "revenue"
	FinanceCharge  FinanceKind = "charge"
)

type CreateFinanceInput struct {
	Kind        FinanceKind `validate:"required,oneof=expense revenue charge"`
	Description string      `validate:"required"`
	Amount      float64     `validate:"gte=0"`
	Date        string      `validate:"omitempty,datetime=2006-01-02"`
	Category    string
	Recurring   string
}

func (s *Service) CreateFinanceItem(in CreateFinanceInput) (storage.FinanceItem, error) {
	if err := s.validate.Struct(in); err != nil {
		return storage.FinanceItem{}, fmt.Errorf("invalid finance item: %w", err)
	}
	item := storage.FinanceItem{
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
		Recurring:   in.Recurring,
	}
	switch in.Kind {
	case FinanceRevenue:
		return s.store.AddRevenue(item)
	case FinanceCharge:
		return s.store.AddCharge(item)
	default:
		return s.store.AddExpense(item)
	}
}

type CreateRewardInput struct {
	Name        string `validate:"required"`
	Description string
	Cost        int `validate:"gte=0"`
	// Repeatable defaults to true when unset, matching the reward shop's
	// original behavior.
	Repeatable *bool
}

func (s *Service) CreateReward(in CreateRewardInput) (storage.Reward, error) {
	if err := s.validate.Struct(in); err != nil {
		return storage.Reward{}, fmt.Errorf("invalid reward: %w", err)
	}
	repeatable := true
	if in.Repeatable != nil {
		repeatable = *in.Repeatable
	}
	return s.store.AddReward(storage.Reward{
		Name:        in.Name,
		Description: in.Description,
		Cost:        in.Cost,
		Repeatable:  repeatable,
	})
}
