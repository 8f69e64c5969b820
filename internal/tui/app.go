// Package tui is the terminal presentation adapter over the annotation
// session: it renders the current row and its measure controls, and
// translates keypresses into session actions. All labeling state lives
// in the session; this package only holds pending control values and
// layout.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvickers/rowtally/internal/config"
	"github.com/mvickers/rowtally/internal/dataset"
	"github.com/mvickers/rowtally/internal/session"
	"github.com/mvickers/rowtally/internal/store"
)

const appName = "rowtally"

type appState string

const (
	statePick     appState = "pick"
	stateAnnotate appState = "annotate"
)

// Params configures the session built once a source is available.
type Params struct {
	Columns  []string // nil selects every source column
	Measures session.Measures
	SampleN  int // 0 disables sampling
	Seed     int64
	Seeded   bool
}

// Bubble Tea messages
type filesLoadedMsg struct {
	items []list.Item
	err   error
}

type sourceLoadedMsg struct {
	src  *dataset.Table
	name string
	err  error
}

type saveDoneMsg struct {
	err error
}

// App is the Bubble Tea model.
type App struct {
	ctx    context.Context
	cfg    config.Config
	params Params

	st  *store.Store // nil when persistence is disabled
	run store.Run

	state      appState
	sess       *session.Session
	sourceName string

	fileList   list.Model
	basePath   string
	keys       keyMap
	pickerKeys pickerKeyMap

	// control state for the row on screen: group name -> option index,
	// where 0 is the unset option and i+1 is the vocabulary entry i
	focus  int
	choice map[string]int

	status    string
	statusErr bool
	width     int
	height    int
}

// New starts in the file-picker state; the session is built after the
// annotator picks a CSV from basePath.
func New(ctx context.Context, cfg config.Config, params Params, st *store.Store, basePath string) App {
	return App{
		ctx:        ctx,
		cfg:        cfg,
		params:     params,
		st:         st,
		state:      statePick,
		basePath:   basePath,
		fileList:   newCSVList(),
		keys:       newKeyMap(),
		pickerKeys: newPickerKeyMap(),
		choice:     map[string]int{},
	}
}

// NewWithSource starts directly in the annotation state over src.
func NewWithSource(ctx context.Context, cfg config.Config, params Params, st *store.Store, src dataset.Source, name string) (App, error) {
	a := New(ctx, cfg, params, st, ".")
	if err := a.startSession(src, name); err != nil {
		return App{}, err
	}
	return a, nil
}

func (a *App) startSession(src dataset.Source, name string) error {
	columns := a.params.Columns
	if columns == nil {
		columns = src.Columns()
	}

	var pages []int
	if a.params.SampleN > 0 {
		var err error
		if a.params.Seeded {
			pages, err = session.SampleSeed(src, a.params.SampleN, a.params.Seed)
		} else {
			pages, err = session.Sample(src, a.params.SampleN)
		}
		if err != nil {
			return err
		}
	}

	sess, err := session.New(src, columns, a.params.Measures, pages)
	if err != nil {
		return err
	}
	a.sess = sess
	a.sourceName = name
	a.state = stateAnnotate
	if a.st != nil {
		a.run = store.NewRun(name)
	}
	a.seedChoices()
	return nil
}

// Session exposes the underlying session, e.g. for export on exit.
func (a App) Session() *session.Session { return a.sess }

// Run returns the store run this app snapshots into.
func (a App) Run() store.Run { return a.run }

// groups returns the measure group names in focus order: one per
// selected column when "each" measures exist, then the overall slot.
func (a App) groups() []string {
	if a.sess == nil {
		return nil
	}
	var out []string
	m := a.sess.Measures()
	if len(m.Each) > 0 {
		out = append(out, a.sess.Columns()...)
	}
	if len(m.Overall) > 0 {
		out = append(out, session.Overall)
	}
	return out
}

// vocabFor returns the measure options for a group.
func (a App) vocabFor(group string) []string {
	m := a.sess.Measures()
	if group == session.Overall {
		return m.Overall
	}
	return m.Each
}

// seedChoices re-populates every control from the saved measures of
// the current row, so revisiting a row shows what was recorded.
func (a *App) seedChoices() {
	a.choice = map[string]int{}
	a.focus = 0
	row, ok := a.sess.Current()
	if !ok {
		return
	}
	for _, g := range a.groups() {
		saved := a.sess.SavedMeasure(row, g)
		a.choice[g] = 0
		if saved == session.Unset {
			continue
		}
		for i, opt := range a.vocabFor(g) {
			if opt == saved {
				a.choice[g] = i + 1
				break
			}
		}
	}
}

// selections snapshots the on-screen controls into session selections.
func (a App) selections() []session.Selection {
	var out []session.Selection
	for _, g := range a.groups() {
		sel := session.Selection{Column: g, Measure: session.Unset}
		if idx := a.choice[g]; idx > 0 {
			sel.Measure = a.vocabFor(g)[idx-1]
		}
		out = append(out, sel)
	}
	return out
}

// saveRunCmd snapshots the measurement log into the store.
func (a App) saveRunCmd() tea.Cmd {
	if a.st == nil || a.sess == nil {
		return nil
	}
	st, run, ms := a.st, a.run, a.sess.Export()
	ctx := a.ctx
	return func() tea.Msg {
		return saveDoneMsg{err: st.SaveRun(ctx, run, ms)}
	}
}

func (a *App) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

func (a App) Init() tea.Cmd {
	if a.state == statePick {
		return loadCSVFilesCmd(a.basePath)
	}
	return nil
}
