package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Formatter renders a Report into bytes.
type Formatter interface {
	Name() string
	Format(r Report) ([]byte, error)
}

// GetFormatterByName returns the formatter for a --format value.
func GetFormatterByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "console", "text":
		return ConsoleFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#626262"))
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// ConsoleFormatter renders a human-readable report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(r Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(r.Title)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(r.Title)))
	b.WriteString("\n")

	width := 0
	for _, f := range r.Summary {
		width = max(width, lipgloss.Width(f.Label))
	}
	for _, f := range r.Summary {
		label := labelStyle.Width(width + 2).Render(f.Label + ":")
		b.WriteString(label)
		b.WriteString(valueStyle.Render(f.Value.Display))
		b.WriteString("\n")
	}

	for _, t := range r.Tables {
		b.WriteString("\n")
		if t.Title != "" {
			b.WriteString(valueStyle.Render(t.Title))
			b.WriteString("\n")
		}
		b.WriteString(renderTable(t))
		b.WriteString("\n")
	}

	if len(r.Notes) > 0 {
		b.WriteString("\n")
		for _, n := range r.Notes {
			b.WriteString(noteStyle.Render(n))
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

func renderTable(t Table) string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = v.Display
		}
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			if col == 0 {
				return cellStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})
	return tbl.Render()
}

// JSONFormatter renders the inputs and raw result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	Calculator string   `json:"calculator"`
	Title      string   `json:"title"`
	Inputs     any      `json:"inputs,omitempty"`
	Result     any      `json:"result"`
	Notes      []string `json:"notes,omitempty"`
}

func (JSONFormatter) Format(r Report) ([]byte, error) {
	out, err := json.MarshalIndent(jsonReport{
		Calculator: r.Calculator,
		Title:      r.Title,
		Inputs:     r.Inputs,
		Result:     r.Result,
		Notes:      r.Notes,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s report: %w", r.Calculator, err)
	}
	return append(out, '\n'), nil
}

// CSVFormatter writes the summary as field,value rows followed by each
// table, separated by blank records.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(r Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range r.Summary {
		if err := w.Write([]string{f.Label, f.Value.Raw}); err != nil {
			return nil, err
		}
	}
	for _, t := range r.Tables {
		if err := w.Write([]string{}); err != nil {
			return nil, err
		}
		if err := w.Write(t.Header); err != nil {
			return nil, err
		}
		for _, row := range t.Rows {
			rec := make([]string, len(row))
			for i, v := range row {
				rec[i] = v.Raw
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
