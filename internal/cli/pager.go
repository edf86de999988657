package cli

import (
	"fmt"

	"github.com/alexanderramin/learnplan/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pagerKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func defaultPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// planPager shows a rendered plan in a scrollable viewport. The viewport is
// created on the first WindowSizeMsg.
type planPager struct {
	summary  string
	content  string
	keys     pagerKeyMap
	viewport viewport.Model
	ready    bool
}

func newPlanPager(summary, content string) *planPager {
	return &planPager{
		summary: summary,
		content: content,
		keys:    defaultPagerKeyMap(),
	}
}

func (p *planPager) Init() tea.Cmd { return nil }

func (p *planPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(p.header())-lipgloss.Height(p.footer()), 1)
		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Top):
			p.viewport.GotoTop()
			return p, nil
		case key.Matches(msg, p.keys.Bottom):
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *planPager) View() string {
	if !p.ready {
		return "Loading plan..."
	}
	return p.header() + "\n" + p.viewport.View() + "\n" + p.footer()
}

func (p *planPager) header() string {
	return p.summary
}

func (p *planPager) footer() string {
	pct := 0.0
	if p.ready {
		pct = p.viewport.ScrollPercent() * 100
	}
	return formatter.Dim(fmt.Sprintf("%3.0f%%  q quit · g/G top/bottom · ↑/↓ pgup/pgdn scroll", pct))
}
