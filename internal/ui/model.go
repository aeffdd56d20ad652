package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"kls/internal/backend"
	"kls/internal/kubectl"
	"kls/internal/theme"
	"kls/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the inventory browser.
type Model struct {
	selector *state.Selector
	client   *kubectl.Client

	backend      *backend.Watcher
	backendState map[backend.Kind]error

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	// actionStatus is the outcome of the last external action, shown in the
	// footer when verbose logging is on. Cleared on the next keypress.
	actionStatus string

	popup *contextPopup

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the three panes and configuration.
func NewModel(client *kubectl.Client, watcher *backend.Watcher, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		selector:     state.NewSelector(),
		client:       client,
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   showFooter,
		verbose:      verbose,
	}
	m.selector.Pane(state.PaneNamespaces).Placeholder = loadingPlaceholder
	m.selector.Pane(state.PaneKinds).Placeholder = loadingPlaceholder
	m.selector.Pane(state.PaneResources).Placeholder = loadingPlaceholder
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):     m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):      m.handleBackendDoneMsg,
		reflect.TypeOf(resourcesFetchedMsg{}): m.handleResourcesFetchedMsg,
		reflect.TypeOf(metadataFetchedMsg{}):  m.handleMetadataFetchedMsg,
		reflect.TypeOf(actionFinishedMsg{}):   m.handleActionFinishedMsg,
		reflect.TypeOf(contextsLoadedMsg{}):   m.handleContextsLoadedMsg,
		reflect.TypeOf(contextSwitchedMsg{}):  m.handleContextSwitchedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// Selector exposes the pane graph for tests.
func (m *Model) Selector() *state.Selector {
	return m.selector
}
