package report

import (
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/pingcap/errors"
)

var t = template.Must(template.New("report").Funcs(template.FuncMap{
	"table": formatTable,
}).Parse(tpl))

type Report struct {
	TaskInfoItems [][2]string // [key, value]
	Answers       Table
	Errors        []string
}

type Table struct {
	Header []string
	Data   [][]string
}

// Render writes the report to outFilename.
func Render(r *Report, outFilename string) error {
	file, err := os.Create(outFilename)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()

	return render(r, file)
}

func render(r *Report, w io.Writer) error {
	return errors.Trace(t.Execute(w, r))
}

// formatTable aligns columns with spaces, header first.
func formatTable(tb Table) string {
	if len(tb.Header) == 0 && len(tb.Data) == 0 {
		return ""
	}
	widths := make([]int, len(tb.Header))
	rows := append([][]string{tb.Header}, tb.Data...)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(" ")
		for i, cell := range row {
			b.WriteString(" ")
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
