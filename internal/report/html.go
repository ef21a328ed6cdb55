package report

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>{{.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 20px; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
      th { background-color: #f5f5f5; font-weight: bold; }
      h1 { text-align: center; }
      .summary { margin-bottom: 20px; }
    </style>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    <div class="summary">
      <p><strong>Total Employees:</strong> {{.Summary.Total}}</p>
      <p><strong>Active:</strong> {{.Summary.Active}}</p>
      <p><strong>Inactive:</strong> {{.Summary.Inactive}}</p>
      <p><strong>Generated:</strong> {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
    </div>
    <table>
      <thead>
        <tr>
          <th>Employee ID</th>
          <th>Name</th>
          <th>Gender</th>
          <th>DOB</th>
          <th>State</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr>
          <td>{{.ID}}</td>
          <td>{{.Name}}</td>
          <td>{{.Gender}}</td>
          <td>{{.DateOfBirth}}</td>
          <td>{{.State}}</td>
          <td>{{.StatusLabel}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
  </body>
</html>
`))

type HTML struct{}

func NewHTML() *HTML {
	return &HTML{}
}

func (*HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

func (*HTML) Render(w io.Writer, r Report) error {
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	return htmlTemplate.Execute(w, r)
}
