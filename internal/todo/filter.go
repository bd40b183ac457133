package todo

import (
	"strconv"
	"strings"

	"todomatic/internal/model"
)

// Filter selects which tasks are shown.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

type filterDef struct {
	name  string
	match func(model.Task) bool
}

// Order here is the left-to-right order of the filter controls.
var filterDefs = [...]filterDef{
	FilterAll:       {name: "All", match: func(model.Task) bool { return true }},
	FilterActive:    {name: "Active", match: func(t model.Task) bool { return !t.Completed }},
	FilterCompleted: {name: "Completed", match: func(t model.Task) bool { return t.Completed }},
}

// Filters returns every filter in display order.
func Filters() []Filter {
	out := make([]Filter, len(filterDefs))
	for i := range filterDefs {
		out[i] = Filter(i)
	}
	return out
}

// FilterNames returns the display names in display order.
func FilterNames() []string {
	out := make([]string, len(filterDefs))
	for i, d := range filterDefs {
		out[i] = d.name
	}
	return out
}

func (f Filter) valid() bool { return f >= 0 && int(f) < len(filterDefs) }

func (f Filter) String() string {
	if !f.valid() {
		return "Filter(" + strconv.Itoa(int(f)) + ")"
	}
	return filterDefs[f].name
}

// Match reports whether t is visible under f.
func (f Filter) Match(t model.Task) bool {
	if !f.valid() {
		return false
	}
	return filterDefs[f].match(t)
}

// ParseFilter looks up a filter by display name, ignoring case and surrounding
// space. An empty name means FilterAll.
func ParseFilter(name string) (Filter, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return FilterAll, nil
	}
	for i, d := range filterDefs {
		if strings.EqualFold(d.name, n) {
			return Filter(i), nil
		}
	}
	return FilterAll, errUnknownFilter(name)
}

// MarshalText lets filters round-trip through config files and JSON.
func (f Filter) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, errUnknownFilter(f.String())
	}
	return []byte(f.String()), nil
}

func (f *Filter) UnmarshalText(b []byte) error {
	parsed, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
