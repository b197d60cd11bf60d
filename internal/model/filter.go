package model

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are visible. Exactly one is active at a time.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

// Filters lists every filter in tab order.
var Filters = []Filter{FilterAll, FilterActive, FilterDone}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

// Label is the tab caption.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "not yet done"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

func (f Filter) Valid() bool { return f >= FilterAll && f <= FilterDone }

func (f Filter) Next() Filter { return Filters[(int(f)+1)%len(Filters)] }

func (f Filter) Prev() Filter { return Filters[(int(f)+len(Filters)-1)%len(Filters)] }

// ParseFilter accepts a filter name or tab caption, case-insensitive.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "active", "pending", "todo", "not yet done":
		return FilterActive, nil
	case "done", "completed":
		return FilterDone, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all|active|done)", s)
}

// Visible reports whether a task with the given completion state shows under f.
// It depends on nothing else: not the text, not the mode.
func Visible(done bool, f Filter) bool {
	switch f {
	case FilterActive:
		return !done
	case FilterDone:
		return done
	default:
		return true
	}
}
