package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column configures a column in the table.
type Column struct {
	Header       string
	Align        Align // default: AlignLeft
	PaddingRight int   // default: 2 spaces
}

// Table is a minimal fixed-width text table for final reports
// (scoreboards, publish summaries).
type Table struct {
	columns []Column
	rows    [][]string

	ShowHeader    bool
	ShowSeparator bool
}

func NewTable(columns ...Column) *Table {
	for i := range columns {
		if columns[i].PaddingRight == 0 {
			columns[i].PaddingRight = 2
		}
	}
	return &Table{
		columns:       columns,
		ShowHeader:    true,
		ShowSeparator: true,
	}
}

// AddRow appends a row. Missing cells render empty, extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if t.ShowHeader {
		headers := make([]string, len(t.columns))
		for i, col := range t.columns {
			headers[i] = col.Header
		}
		t.renderRow(w, headers, widths)
		if t.ShowSeparator {
			for i, width := range widths {
				fmt.Fprint(w, strings.Repeat("-", width))
				if i < len(widths)-1 {
					fmt.Fprint(w, strings.Repeat(" ", t.columns[i].PaddingRight))
				}
			}
			fmt.Fprintln(w)
		}
	}

	for _, row := range t.rows {
		t.renderRow(w, row, widths)
	}
}

func (t *Table) renderRow(w io.Writer, cells []string, widths []int) {
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		if t.columns[i].Align == AlignRight {
			fmt.Fprint(w, strings.Repeat(" ", pad), cell)
		} else {
			fmt.Fprint(w, cell, strings.Repeat(" ", pad))
		}
		if i < len(cells)-1 {
			fmt.Fprint(w, strings.Repeat(" ", t.columns[i].PaddingRight))
		}
	}
	fmt.Fprintln(w)
}
