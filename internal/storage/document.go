package storage

import "time"

const (
	// Version identifies the snapshot format carried in exports.
	Version = "1.0.0"

	// SchemaVersion gates future migrations. Only its presence is checked today.
	SchemaVersion = 1

	// DateLayout is the calendar-day format used for all date-granular fields.
	DateLayout = "2006-01-02"

	// DefaultTasksPerLevel is the number of completed tasks required per level.
	DefaultTasksPerLevel = 30
)

// Document is the single root state structure. Every mutation reads the whole
// document, changes it in memory, and writes the whole document back.
type Document struct {
	Version         string        `json:"version"`
	SchemaVersion   int           `json:"schemaVersion"`
	LastUpdated     time.Time     `json:"lastUpdated"`
	Tasks           []Task        `json:"tasks"`
	Projects        []Project     `json:"projects"`
	Habits          []Habit       `json:"habits"`
	DailyHabitLogs  []HabitLog    `json:"dailyHabitLogs"`
	Expenses        []FinanceItem `json:"expenses"`
	Revenue         []FinanceItem `json:"revenue"`
	Charges         []FinanceItem `json:"charges"`
	Rewards         []Reward      `json:"rewards"`
	PurchaseHistory []Purchase    `json:"purchaseHistory"`
	Categories      Categories    `json:"categories"`
	UserStats       UserStats     `json:"userStats"`
	Settings        Settings      `json:"settings"`
}

type Task struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	DueDate           string    `json:"dueDate,omitempty"`
	Category          string    `json:"category,omitempty"`
	Priority          string    `json:"priority"`
	Points            int       `json:"points"`
	ProjectID         *string   `json:"projectId"`
	RepeatType        string    `json:"repeatType"`
	CustomRepeatDays  int       `json:"customRepeatDays,omitempty"`
	MovableRepeatDays int       `json:"movableRepeatDays,omitempty"`
	Completed         bool      `json:"completed"`
	CompletedDate     *string   `json:"completedDate"`
	CreatedDate       time.Time `json:"createdDate"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedDate time.Time `json:"createdDate"`
}

type Habit struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Icon              string    `json:"icon"`
	Category          string    `json:"category,omitempty"`
	Points            int       `json:"points"`
	TargetGoal        int       `json:"targetGoal"`
	Streak            int       `json:"streak"`
	LastCompletedDate *string   `json:"lastCompletedDate"`
	CreatedDate       time.Time `json:"createdDate"`
}

// HabitLog records one habit completion. Multiple logs per habit per day are
// permitted; per-day counts are derived queries.
type HabitLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// FinanceItem is an expense, revenue, or charge entry, discriminated by which
// document sequence holds it.
type FinanceItem struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date,omitempty"`
	Category    string    `json:"category,omitempty"`
	Recurring   string    `json:"recurring,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

type Reward struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cost        int       `json:"cost"`
	Purchased   bool      `json:"purchased"`
	Repeatable  bool      `json:"repeatable"`
	CreatedDate time.Time `json:"createdDate"`
}

type Purchase struct {
	ID                string    `json:"id"`
	RewardID          string    `json:"rewardId"`
	RewardName        string    `json:"rewardName"`
	RewardDescription string    `json:"rewardDescription,omitempty"`
	Cost              int       `json:"cost"`
	PurchaseDate      time.Time `json:"purchaseDate"`
}

type Categories struct {
	Tasks   []string `json:"tasks"`
	Habits  []string `json:"habits"`
	Finance []string `json:"finance"`
}

type UserStats struct {
	TotalPoints      int             `json:"totalPoints"`
	Level            int             `json:"level"`
	DailyStreak      int             `json:"dailyStreak"`
	LastActivityDate *string         `json:"lastActivityDate"`
	PointsBreakdown  PointsBreakdown `json:"pointsBreakdown"`
}

// PointsBreakdown holds per-source subtotals of awarded points.
type PointsBreakdown struct {
	Tasks       int `json:"tasks"`
	Projects    int `json:"projects"`
	Habits      int `json:"habits"`
	StreakBonus int `json:"streakBonus"`
}

type Settings struct {
	TasksPerLevel int `json:"tasksPerLevel"`
}

// NewDocument returns the default-initialized document with seeded categories
// and zero-valued stats.
func NewDocument(now time.Time) *Document {
	return &Document{
		Version:         Version,
		SchemaVersion:   SchemaVersion,
		LastUpdated:     now,
		Tasks:           []Task{},
		Projects:        []Project{},
		Habits:          []Habit{},
		DailyHabitLogs:  []HabitLog{},
		Expenses:        []FinanceItem{},
		Revenue:         []FinanceItem{},
		Charges:         []FinanceItem{},
		Rewards:         []Reward{},
		PurchaseHistory: []Purchase{},
		Categories: Categories{
			Tasks:   []string{"Work", "Personal", "Home", "Shopping"},
			Habits:  []string{"Health", "Fitness", "Learning", "Productivity"},
			Finance: []string{"Food", "Transportation", "Entertainment", "Utilities", "Income"},
		},
		UserStats: UserStats{
			Level:           1,
			PointsBreakdown: PointsBreakdown{},
		},
		Settings: Settings{TasksPerLevel: DefaultTasksPerLevel},
	}
}

// FormatDate renders a calendar day in the document's date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
