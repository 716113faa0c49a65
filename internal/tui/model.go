package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	dayIdx   int
	selected int

	lastLog string
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{svc: svc, lastLog: "Loaded."}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) day() engine.Day {
	return engine.WeekDays[m.dayIdx]
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			if m.dayIdx > 0 {
				m.dayIdx--
				m.selected = 0
			}
			return m, nil
		case "right", "l":
			if m.dayIdx < len(engine.WeekDays)-1 {
				m.dayIdx++
				m.selected = 0
			}
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.svc.TasksForDay(m.day()))-1 {
				m.selected++
			}
			return m, nil
		case " ", "x":
			tasks := m.svc.TasksForDay(m.day())
			if m.selected < 0 || m.selected >= len(tasks) {
				return m, nil
			}
			t := tasks[m.selected]
			m.svc.ToggleCompletion(t.ID)
			if t.Completed {
				m.lastLog = fmt.Sprintf("Reopened %q.", t.Title)
			} else {
				m.lastLog = fmt.Sprintf("Completed %q.", t.Title)
			}
			return m, nil
		case "d":
			tasks := m.svc.TasksForDay(m.day())
			if m.selected < 0 || m.selected >= len(tasks) {
				return m, nil
			}
			t := tasks[m.selected]
			m.svc.DeleteTask(t.ID)
			if m.selected > 0 {
				m.selected--
			}
			m.lastLog = fmt.Sprintf("Deleted %q.", t.Title)
			return m, nil
		case "c":
			res := m.svc.Claim(m.day())
			if !res.Claimed {
				m.lastLog = "Nothing to claim."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Claimed %s: +%d %s", res.Day, res.Awarded, ui.IconCredit)
			if res.LevelUp {
				m.lastLog += "  " + ui.BadgeLevelUp
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderDayTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	stats := m.svc.Stats()
	into := stats.LifetimeEarnings % engine.CreditsPerLevel
	bar := progressBar(into, engine.CreditsPerLevel, 24)
	return fmt.Sprintf("%s  %s %d  %s Level %d %s  lifetime %d",
		ui.Heading(ui.IconGrid, "Week Board"),
		ui.IconCredit, stats.TotalCredits,
		ui.IconLevel, stats.Level, bar,
		stats.LifetimeEarnings)
}

func (m boardModel) renderDayTabs() string {
	var cells []string
	for i, d := range engine.WeekDays {
		label := string(d)[:3]
		pending := m.svc.PendingCredits(d)
		switch {
		case m.svc.DayClaimed(d):
			label += " ✓"
		case pending > 0:
			label += fmt.Sprintf(" %d", pending)
		}
		if i == m.dayIdx {
			cells = append(cells, ui.SelectedRow.Render(" "+label+" "))
		} else {
			cells = append(cells, ui.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(cells, " ")
}

func (m boardModel) renderTasks() string {
	tasks := m.svc.TasksForDay(m.day())
	if len(tasks) == 0 {
		return ui.Muted.Render("(no tasks on " + string(m.day()) + ")")
	}
	var out []string
	for i, t := range tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		pillarTitle := "?"
		style := ui.Muted
		if p, ok := m.svc.Pillar(t.PillarID); ok {
			pillarTitle = p.Title
			style = ui.PillarStyle(p.Color)
		}
		line := fmt.Sprintf("%s%s %s–%s %s %s (%dm)",
			cursor, ui.Checkbox(t.Completed), t.StartTime, t.EndTime,
			style.Render(pillarTitle), t.Title, t.DurationMinutes)
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	day := m.day()
	var claim string
	if m.svc.DayClaimed(day) {
		claim = ui.BadgeClaimed
	} else {
		claim = fmt.Sprintf("pending %s %d", ui.IconCredit, m.svc.PendingCredits(day))
	}
	keys := ui.Muted.Render("←/→ day · j/k move · space toggle · c claim · d delete · q quit")
	return fmt.Sprintf("%s  %s\n%s\n", claim, keys, m.lastLog)
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
