package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// linesPerPage fits a landscape A4 page at 14pt leading with 40pt margins.
const linesPerPage = 36

type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (*PDF) ContentType() string {
	return "application/pdf"
}

func (*PDF) Render(w io.Writer, r Report) error {
	if r.Title == "" {
		r.Title = DefaultTitle
	}

	lines := []string{
		r.Title,
		fmt.Sprintf("Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Total Employees: %d   Active: %d   Inactive: %d",
			r.Summary.Total, r.Summary.Active, r.Summary.Inactive),
		"",
		fmt.Sprintf("%-40s %-24s %-7s %-10s %-15s %s", "Employee ID", "Name", "Gender", "DOB", "State", "Status"),
	}
	for _, row := range r.Rows {
		lines = append(lines, fmt.Sprintf("%-40s %-24s %-7s %-10s %-15s %s",
			row.ID, row.Name, row.Gender, row.DateOfBirth, row.State, row.StatusLabel()))
	}

	doc, err := buildTextPDF(lines)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

// buildTextPDF lays out lines in Courier, splitting across as many pages as
// needed.
func buildTextPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{DefaultTitle}
	}

	var pages [][]string
	for start := 0; start < len(lines); start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[start:end])
	}

	// object numbers: 1 catalog, 2 pages, 3 font, then page/content pairs
	const firstPageObj = 4
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPageObj+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}
	for i, page := range pages {
		stream := pageStream(page)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 842 595] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", firstPageObj+2*i+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xrefStart)

	return out.Bytes(), nil
}

func pageStream(lines []string) string {
	var content strings.Builder
	content.WriteString("BT\n/F1 9 Tf\n14 TL\n40 555 Td\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T* ")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")
	return content.String()
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
