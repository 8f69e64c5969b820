package session

import "fmt"

// Action is a user gesture forwarded by a presentation adapter.
type Action int

const (
	ActionPrevious Action = iota
	ActionSubmit
	ActionSubmitAndNext
)

// Selection carries one control's current value at submit time.
// Column == Overall addresses the whole-record group. Unset measures
// are skipped, so adapters can forward every group unconditionally.
type Selection struct {
	Column  string
	Measure string
}

// Apply runs one user action against the session: submits record the
// given selections for the current row, then SubmitAndNext advances
// and Previous retreats. With no current row only navigation applies.
// Selections are validated before any is recorded, so a rejected Apply
// leaves the session fully unchanged and the cursor does not move.
func (s *Session) Apply(action Action, selections []Selection) error {
	if row, ok := s.Current(); ok && action != ActionPrevious {
		for _, sel := range selections {
			if err := s.checkMeasure(sel.Column, sel.Measure); err != nil {
				return err
			}
		}
		for _, sel := range selections {
			value := ""
			if sel.Column != Overall {
				if r, ok := s.src.Row(row); ok {
					value = r[sel.Column]
				}
			}
			if err := s.Record(row, sel.Column, value, sel.Measure); err != nil {
				return err
			}
		}
	}

	switch action {
	case ActionPrevious:
		s.Retreat()
	case ActionSubmit:
		// stay on the current row
	case ActionSubmitAndNext:
		s.Advance()
	default:
		return fmt.Errorf("unknown action %d", action)
	}
	return nil
}
