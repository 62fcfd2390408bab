package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crcs-platform/campusctl/internal/platform"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// browserKeyMap defines the keyboard shortcuts for the resource browser.
type browserKeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

var browserKeys = browserKeyMap{
	NextPage: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p", "previous page"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type pageLoadedMsg struct {
	page *types.Page[types.Resource]
}

type pageFailedMsg struct {
	err error
}

// BrowserModel is the interactive resource browser: a paged view over the
// resource catalog that refetches on navigation.
type BrowserModel struct {
	ctx     context.Context
	client  *platform.Client
	styles  Styles
	spinner spinner.Model

	page     *types.Page[types.Resource]
	pageNum  int
	pageSize int
	loading  bool
	errMsg   string
	quitting bool
}

// NewBrowserModel creates a resource browser backed by the gateway client.
func NewBrowserModel(ctx context.Context, client *platform.Client, pageSize int) *BrowserModel {
	if pageSize <= 0 {
		pageSize = 20
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &BrowserModel{
		ctx:      ctx,
		client:   client,
		styles:   DefaultStyles(),
		spinner:  sp,
		pageSize: pageSize,
		loading:  true,
	}
}

// Init implements tea.Model.
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPage(0))
}

func (m *BrowserModel) loadPage(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.ListResources(m.ctx, types.PageQuery{Page: page, Size: m.pageSize})
		if err != nil {
			return pageFailedMsg{err: err}
		}
		return pageLoadedMsg{page: result}
	}
}

// Update implements tea.Model.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, browserKeys.NextPage):
			if m.page != nil && !m.page.Last && !m.loading {
				m.loading = true
				m.pageNum++
				return m, tea.Batch(m.spinner.Tick, m.loadPage(m.pageNum))
			}

		case key.Matches(msg, browserKeys.PrevPage):
			if m.pageNum > 0 && !m.loading {
				m.loading = true
				m.pageNum--
				return m, tea.Batch(m.spinner.Tick, m.loadPage(m.pageNum))
			}

		case key.Matches(msg, browserKeys.Refresh):
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spinner.Tick, m.loadPage(m.pageNum))
			}
		}

	case pageLoadedMsg:
		m.loading = false
		m.errMsg = ""
		m.page = msg.page
		return m, nil

	case pageFailedMsg:
		m.loading = false
		m.errMsg = m.client.ErrorMessage(msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Campus Resources"))
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	case m.loading && m.page == nil:
		b.WriteString(m.spinner.View() + " Loading resources...\n")
	case m.page != nil:
		_ = RenderResources(&b, m.page)
		if m.loading {
			b.WriteString(m.spinner.View() + " Loading...\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("n next page • p previous page • r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunBrowser starts the interactive resource browser and blocks until the
// user quits.
func RunBrowser(ctx context.Context, client *platform.Client, pageSize int) error {
	program := tea.NewProgram(NewBrowserModel(ctx, client, pageSize))
	_, err := program.Run()
	return err
}
