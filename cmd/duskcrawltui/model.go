package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"duskcrawl/combat"
	"duskcrawl/runner"
)

var titleCaser = cases.Title(language.English)

var healthBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())

// Model is the BubbleTea model driving a single-step-at-a-time replay of a
// self-play run: every "n" keypress asks the Decider for one action and
// applies it, the same loop runner.Runner.Step drives, just paced by a
// human instead of a for-loop.
type Model struct {
	runner *runner.Runner
	state  combat.RunState
	last   *runner.StepTrace
	step   int
	done   bool
	width  int
	height int
	copied bool
}

func NewModel(r *runner.Runner, initial combat.RunState) Model {
	return Model{runner: r, state: initial}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", " ":
			if !m.done {
				next, trace := m.runner.Step(m.state)
				m.last = &trace
				m.state = next
				m.step++
				m.copied = false
				if m.state.Terminal() {
					m.done = true
				}
			}
		case "c":
			if m.last != nil {
				summary := fmt.Sprintf("step %d: %s (%s)", m.step, describeAction(m.last.Action), titleCaser.String(actionKindWord(m.last.Action)))
				m.copied = clipboard.WriteAll(summary) == nil
			}
		}
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	enemyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	healthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("duskcrawl: step-through self-play viewer"))
	b.WriteString("\n\n")

	b.WriteString(playerStyle.Render("Player") + "\n")
	b.WriteString(renderFighter(m.state.Player))
	b.WriteString("\n")

	if enemy, ok := m.state.CurrentEnemy(); ok {
		b.WriteString(enemyStyle.Render(fmt.Sprintf("Enemy #%d", m.state.CurrentEnemyIndex)) + "\n")
		b.WriteString(renderFighter(enemy))
	} else {
		b.WriteString(labelStyle.Render("No enemy remaining.") + "\n")
	}
	b.WriteString("\n")

	if m.last != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("step %d: %s", m.step, describeAction(m.last.Action))))
		b.WriteString("\n")
		if m.last.Metrics.NodesExpanded > 0 {
			b.WriteString(labelStyle.Render(fmt.Sprintf(
				"  search: %d nodes, %d cache hits, %d lethal overrides, %s",
				m.last.Metrics.NodesExpanded, m.last.Metrics.CacheHits,
				m.last.Metrics.LethalOverrides, m.last.SearchDuration)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.done {
		if m.state.Player.Alive() {
			b.WriteString(healthyStyle.Render("Run complete: player survived."))
		} else {
			b.WriteString(dangerStyle.Render("Run complete: player died."))
		}
		b.WriteString("\n" + promptStyle.Render("[c] copy last step   [q] quit"))
	} else {
		b.WriteString(promptStyle.Render("[n] next step   [c] copy last step   [q] quit"))
	}
	if m.copied {
		b.WriteString("\n" + labelStyle.Render("(copied to clipboard)"))
	}

	width := m.width
	if width <= 0 || width > 80 {
		width = 80
	}
	return panelStyle.Render(wordwrap.String(b.String(), width))
}

func renderFighter(f combat.Fighter) string {
	hpStyle := healthyStyle
	ratio := 0.0
	if f.Health.Max > 0 {
		ratio = float64(f.Health.Current) / float64(f.Health.Max)
	}
	if ratio < 0.35 {
		hpStyle = dangerStyle
	}
	bar := healthBar.ViewAs(ratio)
	return fmt.Sprintf(
		"  %s %s  armor %d/%d\n  rock  atk=%d def=%d charges=%d\n  paper atk=%d def=%d charges=%d\n  scis  atk=%d def=%d charges=%d",
		bar, hpStyle.Render(fmt.Sprintf("hp %d/%d", f.Health.Current, f.Health.Max)),
		f.Armor.Current, f.Armor.Max,
		f.Rock.Atk, f.Rock.Def, f.Rock.Charges,
		f.Paper.Atk, f.Paper.Def, f.Paper.Charges,
		f.Scissor.Atk, f.Scissor.Def, f.Scissor.Charges,
	) + "\n"
}

func describeAction(a combat.Action) string {
	if a.Kind == combat.ActionLoot {
		return fmt.Sprintf("picked loot option %d", a.Loot)
	}
	return "played " + a.Move.String()
}

func actionKindWord(a combat.Action) string {
	if a.Kind == combat.ActionLoot {
		return "loot"
	}
	return "combat move"
}
