package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"momentum/internal/engine"
	"momentum/internal/storage"
)

type pane int

const (
	paneTasks pane = iota
	paneHabits
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	stats  storage.UserStats
	tasks  []storage.Task
	habits []storage.Habit

	pane     pane
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	stats  storage.UserStats
	tasks  []storage.Task
	habits []storage.Habit
	err    error
}

type actedMsg struct {
	log string
	err error
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st := m.svc.Store()
		return loadedMsg{
			stats:  st.UserStats(),
			tasks:  st.Tasks(),
			habits: st.Habits(),
		}
	}
}

func (m boardModel) toggleTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(id)
		if err != nil {
			return actedMsg{err: err}
		}
		if res.Completed {
			log := fmt.Sprintf("Completed %q: +%d points", res.Task.Title, res.PointsAwarded)
			if res.LevelUp {
				log += fmt.Sprintf(" (level %d → %d)", res.LevelBefore, res.LevelAfter)
			}
			return actedMsg{log: log}
		}
		return actedMsg{log: fmt.Sprintf("Reopened %q", res.Task.Title)}
	}
}

func (m boardModel) completeHabitCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(id)
		if err != nil {
			return actedMsg{err: err}
		}
		return actedMsg{log: fmt.Sprintf("Checked %q: +%d points (streak %d)", res.Habit.Name, res.PointsAwarded, res.Streak)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.tasks = msg.tasks
		m.habits = msg.habits
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			if m.pane == paneTasks {
				m.pane = paneHabits
			} else {
				m.pane = paneTasks
			}
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.paneLen()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.pane == paneTasks {
				if m.selected >= 0 && m.selected < len(m.tasks) {
					t := m.tasks[m.selected]
					m.lastLog = fmt.Sprintf("Toggling %q…", t.Title)
					return m, m.toggleTaskCmd(t.ID)
				}
				return m, nil
			}
			if m.selected >= 0 && m.selected < len(m.habits) {
				h := m.habits[m.selected]
				m.lastLog = fmt.Sprintf("Checking %q…", h.Name)
				return m, m.completeHabitCmd(h.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *boardModel) paneLen() int {
	if m.pane == paneTasks {
		return len(m.tasks)
	}
	return len(m.habits)
}

func (m *boardModel) clampSelection() {
	if n := m.paneLen(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	perLevel := m.svc.Store().Settings().TasksPerLevel
	if perLevel <= 0 {
		perLevel = storage.DefaultTasksPerLevel
	}
	completed := 0
	for i := range m.tasks {
		if m.tasks[i].Completed {
			completed++
		}
	}
	bar := progressBar(completed%perLevel, perLevel, 20)
	return fmt.Sprintf("Momentum | Level %d | %d pts | 🔥 %d-day streak | next level %s",
		m.stats.Level, m.stats.TotalPoints, m.stats.DailyStreak, bar)
}

func (m boardModel) renderSidebar() string {
	b := m.stats.PointsBreakdown
	lines := []string{
		"Points",
		fmt.Sprintf("- tasks:    %d", b.Tasks),
		fmt.Sprintf("- projects: %d", b.Projects),
		fmt.Sprintf("- habits:   %d", b.Habits),
		fmt.Sprintf("- streak:   %d", b.StreakBonus),
		"",
		"Keys",
		"- ↑/↓ or j/k: move",
		"- tab: tasks/habits",
		"- c/space: complete",
		"- r: refresh",
		"- q: quit",
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}

	var out []string
	out = append(out, m.paneTitle(paneTasks, "Tasks"))
	if len(m.tasks) == 0 {
		out = append(out, "(no tasks)")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if m.pane == paneTasks && i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		due := ""
		if t.DueDate != "" {
			due = " due " + t.DueDate
		}
		out = append(out, fmt.Sprintf("%s%s %s (%d pts)%s", cursor, mark, t.Title, t.Points, due))
	}

	out = append(out, "")
	out = append(out, m.paneTitle(paneHabits, "Habits"))
	if len(m.habits) == 0 {
		out = append(out, "(no habits)")
	}
	st := m.svc.Store()
	for i, h := range m.habits {
		cursor := "  "
		if m.pane == paneHabits && i == m.selected {
			cursor = "> "
		}
		today := ""
		if n := st.CountHabitCompletionsToday(h.ID); n > 0 {
			today = fmt.Sprintf(" (done x%d today)", n)
		}
		out = append(out, fmt.Sprintf("%s%s %s — streak %d%s", cursor, h.Icon, h.Name, h.Streak, today))
	}

	return strings.Join(out, "\n")
}

func (m boardModel) paneTitle(p pane, title string) string {
	if m.pane == p {
		return "» " + title
	}
	return title
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := current * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
