// Package schedule decides whether a scheduled invocation should run at
// all. The pipeline is only invoked after the gate passes; a closed gate
// means a silent zero-status exit for the calling process.
package schedule

import "time"

// Gate restricts runs to specific weekdays and a single hour in one
// timezone. Force bypasses the check entirely for manual runs.
type Gate struct {
	Weekdays []time.Weekday
	Hour     int
	Location *time.Location
	Force    bool
}

// Default returns the production gate: Monday/Wednesday/Friday at
// 10:00 Eastern.
func Default(force bool) (*Gate, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, err
	}
	return &Gate{
		Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		Hour:     10,
		Location: loc,
		Force:    force,
	}, nil
}

// ShouldRun reports whether now falls inside the gate's window.
func (g *Gate) ShouldRun(now time.Time) bool {
	if g.Force {
		return true
	}

	t := now.In(g.Location)
	for _, wd := range g.Weekdays {
		if t.Weekday() == wd {
			return t.Hour() == g.Hour
		}
	}
	return false
}
