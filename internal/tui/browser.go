package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// browseScopes is the cycle order of the scope hotkey. ScopeAny comes
// first so the default view shows everything the site has.
var browseScopes = []models.Scope{
	models.ScopeAny,
	models.ScopeBuilds,
	models.ScopeFunctions,
	models.ScopeRuntime,
	models.ScopePostProcessing,
}

type browserModel struct {
	ctx  context.Context
	env  service.EnvService
	opts Options

	reqContext string
	scopeIdx   int

	keys    []string
	values  models.ResolvedEnv
	idx     int
	loading bool
	spinner spinner.Model
	detail  bool
	reveal  bool
	status  string
	errMsg  string
}

func newBrowserModel(ctx context.Context, env service.EnvService, opts Options) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	scopeIdx := 0
	for i, scope := range browseScopes {
		if scope == opts.Scope {
			scopeIdx = i
		}
	}

	return browserModel{
		ctx:        ctx,
		env:        env,
		opts:       opts,
		reqContext: opts.Context,
		scopeIdx:   scopeIdx,
		loading:    true,
		spinner:    s,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdResolve())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case envLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.values = msg.env
		m.keys = service.SortedKeys(msg.env)
		if m.idx >= len(m.keys) {
			m.idx = len(m.keys) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Значение скопировано"
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.detail {
		switch keyMsg.String() {
		case "esc":
			m.detail = false
			m.reveal = false
		case " ":
			m.reveal = !m.reveal
		case "c":
			if key, ok := m.current(); ok {
				return m, m.cmdCopy(m.values[key].Value)
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.keys)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.current(); ok {
			m.detail = true
		}
	case "c":
		if key, ok := m.current(); ok {
			return m, m.cmdCopy(m.values[key].Value)
		}
	case "x":
		m.reqContext = nextContext(m.reqContext)
		return m.reload()
	case "s":
		m.scopeIdx = (m.scopeIdx + 1) % len(browseScopes)
		return m.reload()
	case "r":
		return m.reload()
	}

	return m, nil
}

func (m browserModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.errMsg = ""
	m.idx = 0
	m.detail = false
	m.reveal = false
	return m, m.cmdResolve()
}

func (m browserModel) current() (string, bool) {
	if len(m.keys) == 0 || m.idx < 0 || m.idx >= len(m.keys) {
		return "", false
	}
	return m.keys[m.idx], true
}

// nextContext cycles through the enumerated contexts. A branch context
// falls back to the start of the cycle rather than being preserved:
// branch names are set with the -context flag, not from the browser.
func nextContext(current string) string {
	for i, c := range models.AvailableContexts {
		if string(c) == current {
			return string(models.AvailableContexts[(i+1)%len(models.AvailableContexts)])
		}
	}
	return string(models.AvailableContexts[0])
}

func (m browserModel) cmdResolve() tea.Cmd {
	ctx, env := m.ctx, m.env
	opts := service.ResolveOptions{
		Context:   m.reqContext,
		Scope:     browseScopes[m.scopeIdx],
		AccountID: m.opts.AccountID,
		SiteID:    m.opts.SiteID,
		LocalEnv:  m.opts.LocalEnv,
	}
	return func() tea.Msg {
		resolved, err := env.Resolve(ctx, opts)
		return envLoadedMsg{env: resolved, err: err}
	}
}

func (m browserModel) cmdCopy(value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(value)}
	}
}

func (m browserModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m browserModel) View() string {
	if m.detail {
		return appStyle.Render(m.viewDetail())
	}
	return appStyle.Render(m.viewList())
}

func (m browserModel) viewList() string {
	var b strings.Builder

	header := titleStyle.Render("env-keeper") +
		fmt.Sprintf("  context=%s scope=%s", m.reqContext, browseScopes[m.scopeIdx])
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header + "\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.keys) == 0:
		b.WriteString("Нет переменных\n")
	default:
		for i, key := range m.keys {
			line := fmt.Sprintf("%-32s %s", key, sourceStyle.Render(originLabel(m.values[key])))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: детали  c: копировать  x: контекст  s: скоуп  r: обновить  q: выход"))
	return b.String()
}

func (m browserModel) viewDetail() string {
	key, ok := m.current()
	if !ok {
		return "-"
	}
	v := m.values[key]

	value := strings.Repeat("*", 8)
	if m.reveal {
		value = v.Value
	}

	matched := string(v.Context)
	if v.Branch != "" {
		matched = "branch:" + v.Branch
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(key) + "\n\n")
	b.WriteString(fmt.Sprintf("Значение:  %s\n", value))
	b.WriteString(fmt.Sprintf("Контекст:  %s\n", matched))
	b.WriteString(fmt.Sprintf("Скоупы:    %s\n", models.HumanizeScopes(v.Scopes)))
	b.WriteString(fmt.Sprintf("Источник:  %s\n", originLabel(v)))

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("space: показать  c: копировать  esc: назад  q: выход"))
	return b.String()
}

func originLabel(v models.ResolvedVar) string {
	if len(v.Sources) == 0 {
		return "?"
	}
	return string(v.Sources[0])
}
