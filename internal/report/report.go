// Package report renders a roster view as a standalone printable document.
package report

import (
	"io"
	"time"
)

const DefaultTitle = "Employee Management Report"

type Row struct {
	ID          string
	Name        string
	Gender      string
	DateOfBirth string
	State       string
	Active      bool
}

func (r Row) StatusLabel() string {
	if r.Active {
		return "Active"
	}
	return "Inactive"
}

type Summary struct {
	Total    int
	Active   int
	Inactive int
}

// Report is one rendered view. Summary must describe exactly Rows; the
// caller builds both from the same slice.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Summary     Summary
	Rows        []Row
}

type Renderer interface {
	ContentType() string
	Render(w io.Writer, r Report) error
}
