package employee

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Status string

const (
	StatusAny      Status = ""
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByState  SortKey = "state"
	SortByStatus SortKey = "status"
	// SortByActive is accepted as an alias of SortByStatus.
	SortByActive SortKey = "active"
)

// Filter describes one view over the roster. The zero value matches every
// record and sorts by name.
type Filter struct {
	Search string
	Gender Gender
	Status Status
	SortBy SortKey
}

func (f Filter) matches(e Employee, term string) bool {
	if term != "" && !strings.Contains(strings.ToLower(e.Name), term) {
		return false
	}
	if f.Gender != "" && e.Gender != f.Gender {
		return false
	}
	switch f.Status {
	case StatusActive:
		return e.Active
	case StatusInactive:
		return !e.Active
	}
	return true
}

// Query derives the filtered, sorted view from the full record set. It
// always recomputes from records, never mutates it, and keeps the input
// order of records that compare equal.
func Query(records []Employee, f Filter) []Employee {
	term := strings.ToLower(f.Search)

	out := make([]Employee, 0, len(records))
	for _, e := range records {
		if f.matches(e, term) {
			out = append(out, e)
		}
	}

	sortEmployees(out, f.SortBy)
	return out
}

func sortEmployees(records []Employee, key SortKey) {
	switch key {
	case SortByStatus, SortByActive:
		sort.SliceStable(records, func(i, j int) bool {
			return !records[i].Active && records[j].Active
		})
	case SortByState:
		col := collate.New(language.English)
		sort.SliceStable(records, func(i, j int) bool {
			return col.CompareString(records[i].State, records[j].State) < 0
		})
	default:
		col := collate.New(language.English)
		sort.SliceStable(records, func(i, j int) bool {
			return col.CompareString(records[i].Name, records[j].Name) < 0
		})
	}
}

type Counts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

func Summarize(records []Employee) Counts {
	c := Counts{Total: len(records)}
	for _, e := range records {
		if e.Active {
			c.Active++
		}
	}
	c.Inactive = c.Total - c.Active
	return c
}
