package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mvickers/rowtally/internal/config"
	"github.com/mvickers/rowtally/internal/dataset"
	"github.com/mvickers/rowtally/internal/session"
)

func testApp(t *testing.T, measures session.Measures) App {
	t.Helper()
	src := dataset.NewTable([]string{"c1", "c2"}, []dataset.Row{
		{"c1": "alpha", "c2": "delta"},
		{"c1": "beta", "c2": "epsilon"},
		{"c1": "gamma", "c2": "zeta"},
	})
	cfg := config.Config{UI: config.UIConfig{MaxCellWidth: 30, MaxCellHeight: 4}}
	a, err := NewWithSource(context.Background(), cfg, Params{Measures: measures}, nil, src, "test.csv")
	require.NoError(t, err)
	return resize(a, 100, 30)
}

func resize(a App, w, h int) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestViewShowsColumnsAndValues(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}})

	view := a.View()
	require.Contains(t, view, "c1")
	require.Contains(t, view, "c2")
	require.Contains(t, view, "alpha")
	require.Contains(t, view, "delta")
	require.Contains(t, view, "Yes")
	require.Contains(t, view, "row 1/3")
}

func TestSubmitAndNextRecordsSnapshotValue(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}})

	// pick "Yes" in the focused c1 group, then submit & next
	a = press(a, "down", "enter")

	cur, ok := a.Session().Current()
	require.True(t, ok)
	require.Equal(t, 1, cur)

	got := a.Session().Export()
	require.Len(t, got, 1)
	require.Equal(t, session.Measurement{
		Row: 0, Column: "c1", Value: "alpha", Measure: "Yes", Kind: session.KindColumn,
	}, got[0])
}

func TestPreviousRestoresSavedSelection(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}})

	a = press(a, "down", "down", "enter") // record "No" for c1, advance
	require.Equal(t, "No", a.Session().SavedMeasure(0, "c1"))

	a = press(a, "p")
	cur, _ := a.Session().Current()
	require.Equal(t, 0, cur)
	// the radio group re-seeds from the saved measure: index 2 = "No"
	require.Equal(t, 2, a.choice["c1"])
}

func TestFocusCyclesThroughGroupsIncludingOverall(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}, Overall: []string{"Good", "Bad"}})

	require.Equal(t, []string{"c1", "c2", session.Overall}, a.groups())

	a = press(a, "right", "right") // focus lands on the overall group
	a = press(a, "down", "s")      // select "Good", submit in place

	require.Equal(t, "Good", a.Session().SavedMeasure(0, session.Overall))
	cur, _ := a.Session().Current()
	require.Equal(t, 0, cur) // plain submit stays put

	a = press(a, "right") // wraps back to the first column
	require.Equal(t, 0, a.focus)
}

func TestUnsetSelectionRecordsNothing(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}})

	a = press(a, "enter") // everything unset
	require.Empty(t, a.Session().Export())

	cur, _ := a.Session().Current()
	require.Equal(t, 1, cur) // navigation still happens
}

func TestExhaustedViewShowsTerminalMessage(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Each: []string{"Yes", "No"}})

	a = press(a, "enter", "enter", "enter")
	require.True(t, a.Session().Exhausted())

	view := a.View()
	require.Contains(t, view, "No more rows to compare.")

	// retreat past the end is a no-op, surfaced as a hint
	a = press(a, "p")
	require.True(t, a.Session().Exhausted())
	require.Contains(t, a.status, "no more rows")
}

func TestOverallOnlySessionHasSingleGroup(t *testing.T) {
	t.Parallel()
	a := testApp(t, session.Measures{Overall: []string{"Good", "Bad"}})

	require.Equal(t, []string{session.Overall}, a.groups())

	a = press(a, "down", "down", "s")
	require.Equal(t, "Bad", a.Session().SavedMeasure(0, session.Overall))

	view := a.View()
	require.Contains(t, view, "Overall")
	require.Contains(t, view, "Bad")
}

func TestWindowResizeBeforeFirstRender(t *testing.T) {
	t.Parallel()
	src := dataset.NewTable([]string{"c1"}, []dataset.Row{{"c1": "x"}})
	a, err := NewWithSource(context.Background(), config.Config{}, Params{}, nil, src, "x.csv")
	require.NoError(t, err)
	require.Equal(t, "loading...", a.View())

	a = resize(a, 80, 24)
	require.Contains(t, a.View(), "rowtally")
}
