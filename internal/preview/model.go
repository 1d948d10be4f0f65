// Package preview renders the landing page's interactive sections in the
// terminal, driven by the same controllers as the web page.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mownders/academy/internal/content"
	"github.com/mownders/academy/internal/ui"
)

type pane int

const (
	paneServices pane = iota
	paneFAQ
	paneTestimonials
	paneCount
)

var paneNames = [paneCount]string{"Services", "FAQ", "Testimonials"}

// tickMsg advances the carousel. Ticks from an earlier arm are ignored.
type tickMsg struct {
	gen int
}

// tickScheduler arms the carousel through bubbletea commands instead of a
// goroutine, so every advance happens inside Update.
type tickScheduler struct {
	interval time.Duration
	fn       func()
	gen      int
	armed    bool
}

func (s *tickScheduler) Every(d time.Duration, fn func()) func() {
	s.gen++
	s.interval = d
	s.fn = fn
	s.armed = true
	gen := s.gen
	return func() {
		if s.gen == gen {
			s.armed = false
			s.fn = nil
		}
	}
}

// next returns the command delivering the following tick, or nil when
// nothing is armed.
func (s *tickScheduler) next() tea.Cmd {
	if !s.armed {
		return nil
	}
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Model is the bubbletea model of the preview.
type Model struct {
	site      *content.Site
	pane      pane
	tabs      *ui.Tabs
	accordion *ui.Accordion
	cursor    int
	carousel  *ui.Carousel
	sched     *tickScheduler
	help      help.Model
	width     int
}

// New creates a preview of s rotating testimonials every interval.
func New(s *content.Site, interval time.Duration) *Model {
	sched := &tickScheduler{}
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSep

	return &Model{
		site:      s,
		tabs:      ui.NewTabs(s.Services.IDs()),
		accordion: ui.NewAccordion(len(s.FAQ.Items)),
		carousel:  ui.NewCarousel(len(s.Testimonials.Items), ui.WithInterval(interval), ui.WithScheduler(sched)),
		sched:     sched,
		help:      h,
		width:     80,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if !m.sched.armed || msg.gen != m.sched.gen {
			return m, nil
		}
		m.sched.fn()
		return m, m.sched.next()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.carousel.Close()
		return m, tea.Quit
	case key.Matches(msg, keys.NextPane):
		return m, m.focus((m.pane + 1) % paneCount)
	case key.Matches(msg, keys.PrevPane):
		return m, m.focus((m.pane + paneCount - 1) % paneCount)
	}

	switch m.pane {
	case paneServices:
		switch {
		case key.Matches(msg, keys.Left):
			m.tabs.Prev()
		case key.Matches(msg, keys.Right):
			m.tabs.Next()
		}
	case paneFAQ:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < m.accordion.Len()-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			m.accordion.Toggle(m.cursor)
		}
	case paneTestimonials:
		n := m.carousel.Len()
		if n == 0 {
			break
		}
		switch {
		case key.Matches(msg, keys.Left):
			m.carousel.SelectIndex((m.carousel.Current() + n - 1) % n)
		case key.Matches(msg, keys.Right):
			m.carousel.SelectIndex((m.carousel.Current() + 1) % n)
		}
	}
	return m, nil
}

// focus switches panes. The carousel only runs while its pane is shown.
func (m *Model) focus(p pane) tea.Cmd {
	m.pane = p
	if p == paneTestimonials {
		if m.carousel.Activate() {
			return m.sched.next()
		}
		return nil
	}
	m.carousel.Deactivate()
	return nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.site.Footer.Name))
	b.WriteString("  ")
	for p := pane(0); p < paneCount; p++ {
		if p == m.pane {
			b.WriteString(styles.PaneOn.Render(paneNames[p]))
		} else {
			b.WriteString(styles.Pane.Render(paneNames[p]))
		}
	}
	b.WriteString("\n")

	var body string
	switch m.pane {
	case paneServices:
		body = m.viewServices()
	case paneFAQ:
		body = m.viewFAQ()
	case paneTestimonials:
		body = m.viewTestimonials()
	}
	box := styles.Box
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	b.WriteString(box.Render(body))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(keys.forPane(m.pane)))
	return b.String()
}

func (m *Model) viewServices() string {
	s := m.site.Services
	if len(s.Items) == 0 {
		return styles.Muted.Render("No services.")
	}

	var tabs []string
	for _, svc := range s.Items {
		if m.tabs.IsActive(svc.ID) {
			tabs = append(tabs, styles.TabOn.Render(svc.Title))
		} else {
			tabs = append(tabs, styles.Tab.Render(svc.Title))
		}
	}

	active, _ := s.Find(m.tabs.Active())
	lines := []string{
		styles.Heading.Render(s.Heading),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		styles.Heading.Render(active.Title),
		styles.Normal.Render(active.Description),
	}
	for _, f := range active.Features {
		lines = append(lines, "  ✓ "+f)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewFAQ() string {
	f := m.site.FAQ
	lines := []string{styles.Heading.Render(f.Heading), ""}
	for i, q := range f.Items {
		marker := "▸"
		if m.accordion.IsOpen(i) {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s", marker, q.Question)
		if i == m.cursor {
			line = styles.Focus.Render(line)
		} else {
			line = styles.Normal.Render(line)
		}
		lines = append(lines, line)
		if m.accordion.IsOpen(i) {
			lines = append(lines, styles.Muted.Render("  "+plainText(q.Answer)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewTestimonials() string {
	t := m.site.Testimonials
	if len(t.Items) == 0 {
		return styles.Muted.Render("No testimonials.")
	}

	cur := t.Items[m.carousel.Current()]
	dots := make([]string, len(t.Items))
	for i := range t.Items {
		if i == m.carousel.Current() {
			dots[i] = styles.DotOn.Render("●")
		} else {
			dots[i] = styles.Dot.Render("○")
		}
	}

	status := "paused"
	if m.carousel.Active() {
		status = fmt.Sprintf("rotating every %s", m.carousel.Interval())
	}

	return strings.Join([]string{
		styles.Heading.Render(t.Heading),
		"",
		styles.Quote.Render("“" + cur.Quote + "”"),
		styles.Normal.Render("— " + cur.Name + ", " + cur.Title),
		"",
		strings.Join(dots, " ") + "  " + styles.Muted.Render(status),
	}, "\n")
}

// plainText strips the markdown emphasis markers used in answers.
func plainText(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}

// Run starts the preview program on the terminal.
func Run(s *content.Site, interval time.Duration) error {
	m := New(s, interval)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
