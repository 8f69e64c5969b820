package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySubmitRecordsAndStays(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1", "c2"}, eachMeasures(), nil)
	require.NoError(t, err)

	sels := []Selection{
		{Column: "c1", Measure: "Yes"},
		{Column: "c2", Measure: Unset}, // skipped, not an error
	}
	require.NoError(t, s.Apply(ActionSubmit, sels))

	cur, _ := s.Current()
	require.Equal(t, 0, cur)

	got := s.Export()
	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].Value) // snapshotted from the source
}

func TestApplySubmitAndNextAdvances(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1"}, eachMeasures(), nil)
	require.NoError(t, err)

	require.NoError(t, s.Apply(ActionSubmitAndNext, []Selection{{Column: "c1", Measure: "No"}}))
	cur, _ := s.Current()
	require.Equal(t, 1, cur)
	require.Equal(t, "No", s.SavedMeasure(0, "c1"))
}

func TestApplyPreviousRetreatsWithoutRecording(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1"}, eachMeasures(), nil)
	require.NoError(t, err)
	s.Advance()

	require.NoError(t, s.Apply(ActionPrevious, []Selection{{Column: "c1", Measure: "Yes"}}))
	cur, _ := s.Current()
	require.Equal(t, 0, cur)
	require.Empty(t, s.Export())
}

func TestApplyRejectsBadSelectionWithoutMutation(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1", "c2"}, eachMeasures(), nil)
	require.NoError(t, err)

	sels := []Selection{
		{Column: "c1", Measure: "Yes"},
		{Column: "c2", Measure: "Maybe"}, // not in vocabulary
	}
	err = s.Apply(ActionSubmitAndNext, sels)
	require.ErrorIs(t, err, ErrInvalidMeasure)

	// nothing recorded, cursor unchanged
	require.Empty(t, s.Export())
	cur, _ := s.Current()
	require.Equal(t, 0, cur)
}

func TestApplyOverallSelection(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1"}, Measures{Overall: []string{"Good", "Bad"}}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Apply(ActionSubmit, []Selection{{Column: Overall, Measure: "Bad"}}))
	require.Equal(t, "Bad", s.SavedMeasure(0, Overall))
}

func TestApplyAfterExhaustionOnlyNavigates(t *testing.T) {
	t.Parallel()
	s, err := New(threeRows(), []string{"c1"}, eachMeasures(), []int{0})
	require.NoError(t, err)
	s.Advance()
	require.True(t, s.Exhausted())

	require.NoError(t, s.Apply(ActionSubmit, []Selection{{Column: "c1", Measure: "Yes"}}))
	require.Empty(t, s.Export())

	require.NoError(t, s.Apply(ActionPrevious, nil))
	require.True(t, s.Exhausted())
}
