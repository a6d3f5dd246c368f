package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"boltgen/internal/palette"
)

// refreshTable rebuilds the table from the current bolt: the assembled path
// with normalized positions when there is one, otherwise the segment list.
func (m *Model) refreshTable() {
	cols, rows := m.buildTable()
	if len(cols) == 0 || len(rows) == 0 {
		m.showTable = false
		m.status = "nothing to tabulate"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 5})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: max(len(c)+2, 9)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	m.tblRows = trows
	// clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

func (m *Model) buildTable() ([]string, [][]string) {
	b := m.bolt
	if len(b.Path) > 0 {
		cols := []string{"x", "y", "t", "color"}
		pos := b.Path.Positions()
		rows := make([][]string, 0, len(b.Path))
		for i, p := range b.Path {
			rows = append(rows, []string{
				fmt.Sprintf("%.2f", p.X),
				fmt.Sprintf("%.2f", p.Y),
				fmt.Sprintf("%.3f", pos[i]),
				palette.Path(pos[i], b.Connected).Hex(),
			})
		}
		return cols, rows
	}
	cols := []string{"ax", "ay", "bx", "by", "origin"}
	rows := make([][]string, 0, len(b.Segments))
	for _, s := range b.Segments {
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", s.A.X),
			fmt.Sprintf("%.2f", s.A.Y),
			fmt.Sprintf("%.2f", s.B.X),
			fmt.Sprintf("%.2f", s.B.Y),
			s.Origin.String(),
		})
	}
	return cols, rows
}
