package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log"

	"jvmdis/internal/config"
	"jvmdis/internal/jvmdis/styles"
)

type viewMode int

const (
	viewListing viewMode = iota
	viewFindings
)

type model struct {
	listing  viewport.Model
	findings viewport.Model
	spinner  spinner.Model
	mode     viewMode
	in       input
	cfg      config.Config
	lg       *log.Logger
	result   *result
	loading  bool
	raw      bool
	width    int
	height   int
}

type decodedMsg struct {
	r result
}

func decodeCmd(in input, lint bool, lg *log.Logger) tea.Cmd {
	return func() tea.Msg {
		return decodedMsg{r: runDecode(in, lint, lg)}
	}
}

func newModel(in input, cfg config.Config, lg *log.Logger) model {
	vp := viewport.New()
	vp.SetWidth(80)
	vp.SetHeight(22)
	fvp := viewport.New()
	fvp.SetWidth(80)
	fvp.SetHeight(22)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Status

	m := model{
		listing:  vp,
		findings: fvp,
		spinner:  s,
		in:       in,
		cfg:      cfg,
		lg:       lg,
		loading:  true,
		raw:      cfg.RawBytes,
	}
	m.updateContent()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		decodeCmd(m.in, true, m.lg),
		m.spinner.Tick,
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case decodedMsg:
		m.result = &msg.r
		m.loading = false
		m.updateContent()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateContent()
		return m, cmd

	case tea.WindowSizeMsg:
		if msg.Width != m.width || msg.Height != m.height {
			m.width = msg.Width
			m.height = msg.Height
			m.listing.SetWidth(msg.Width)
			m.listing.SetHeight(msg.Height - 2)
			m.findings.SetWidth(msg.Width)
			m.findings.SetHeight(msg.Height - 2)
			m.updateContent()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.mode == viewListing {
				m.mode = viewFindings
			} else {
				m.mode = viewListing
			}
			return m, nil
		case "r":
			m.raw = !m.raw
			m.updateContent()
			return m, nil
		}
	}

	switch m.mode {
	case viewFindings:
		m.findings, cmd = m.findings.Update(msg)
	default:
		m.listing, cmd = m.listing.Update(msg)
	}
	return m, cmd
}

func (m *model) updateContent() {
	if m.loading || m.result == nil {
		m.listing.SetContent(fmt.Sprintf("%s Decoding %d bytes...", m.spinner.View(), len(m.in.code)))
		return
	}

	r := *m.result
	listing := renderText(result{input: r.input, instrs: r.instrs}, m.raw, m.cfg.Color)
	if r.err != nil {
		listing += "\n" + styles.Error.Render(r.err.Error())
	}
	m.listing.SetContent(strings.TrimSuffix(listing, "\n"))
	m.listing.GotoTop()

	if len(r.findings) == 0 {
		m.findings.SetContent("No findings.")
	} else {
		m.findings.SetContent(strings.TrimSuffix(renderFindings(r.findings), "\n"))
	}
	m.findings.GotoTop()
}

func (m model) header() string {
	title := styles.Title.Render("jvmdis " + m.in.name)
	tabs := []string{"Listing", fmt.Sprintf("Findings (%d)", m.findingCount())}
	for i, t := range tabs {
		if viewMode(i) == m.mode {
			tabs[i] = styles.TabActive.Render(t)
		} else {
			tabs[i] = styles.TabInactive.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", strings.Join(tabs, "  "))
}

func (m model) findingCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.findings)
}

func (m model) View() string {
	content := m.listing.View()
	if m.mode == viewFindings {
		content = m.findings.View()
	}

	status := fmt.Sprintf("%d bytes at base %d", len(m.in.code), m.in.base)
	if m.result != nil {
		status = fmt.Sprintf("%d instructions, %s", len(m.result.instrs), status)
	}
	menu := styles.Help.Render(" Tab: listing/findings • R: raw bytes • Q: quit ") + styles.Status.Render(status)

	return m.header() + "\n" + content + "\n" + menu
}
