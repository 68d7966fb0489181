// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	columnStyle   = tcell.StyleDefault.Foreground(tcell.ColorAzure).Bold(true)
	rowCountStyle = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	cellStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Widest a column gets before its cells are cut off.
const maxColumnWidth = 50

// DataTable displays CSV rows with these behaviors:
//   - Add row number column to the left corner
//   - Make column names (first row) fixed in place
//   - Allow selecting entire rows and scrolling columns with vi-like keys
//
// All rows live in memory. Ragged rows are displayed as-is: the table
// sizes itself to the widest row and missing cells stay blank.
type DataTable struct {
	*tview.Box

	columns []string
	rows    [][]string

	// Net width of each column, computed when rows are set.
	colWidths   []int
	gutterWidth int

	// The number of rows/columns by which the table is scrolled.
	rowOffset, columnOffset int

	// The currently selected row.
	selectedRow int

	// The number of data rows that fit on screen the last time the
	// table was drawn.
	visibleRows int

	// An optional function which gets called when the user presses
	// Escape, Tab, or Backtab.
	done func(key tcell.Key)

	// An optional function which gets called when the user presses
	// Enter on the selected row.
	selected func(row int)
}

func NewDataTable() *DataTable {
	return &DataTable{
		Box: tview.NewBox(),
	}
}

// SetRows replaces the displayed content. The selection and offsets are
// kept where possible so reloading a changed file does not reset the
// view.
func (t *DataTable) SetRows(columns []string, rows [][]string) *DataTable {
	t.columns = columns
	t.rows = rows
	t.colWidths = make([]int, len(columns))
	for i, text := range columns {
		t.colWidths[i] = stringWidth(text)
	}
	for _, row := range rows {
		for i, text := range row {
			for i >= len(t.colWidths) {
				t.colWidths = append(t.colWidths, 0)
			}
			if w := stringWidth(text); w > t.colWidths[i] {
				t.colWidths[i] = w
			}
		}
	}
	for i, w := range t.colWidths {
		if w > maxColumnWidth {
			t.colWidths[i] = maxColumnWidth
		}
	}
	t.gutterWidth = stringWidth(strconv.Itoa(len(rows)))
	t.clampSelection()
	return t
}

// GetShape returns the number of data rows and columns.
func (t *DataTable) GetShape() (rowCount, columnCount int) {
	return len(t.rows), len(t.colWidths)
}

// SetDoneFunc sets a handler which is called whenever the user presses
// the Escape, Tab, or Backtab key.
func (t *DataTable) SetDoneFunc(handler func(key tcell.Key)) *DataTable {
	t.done = handler
	return t
}

// SetSelectedFunc sets a handler which is called whenever the user
// presses Enter on the selected row.
func (t *DataTable) SetSelectedFunc(handler func(row int)) *DataTable {
	t.selected = handler
	return t
}

// Select sets the selected row.
func (t *DataTable) Select(row int) *DataTable {
	t.selectedRow = row
	t.clampSelection()
	return t
}

// GetSelection returns the index of the selected row.
func (t *DataTable) GetSelection() int {
	return t.selectedRow
}

func (t *DataTable) clampSelection() {
	if t.selectedRow >= len(t.rows) {
		t.selectedRow = len(t.rows) - 1
	}
	if t.selectedRow < 0 {
		t.selectedRow = 0
	}
}

func (t *DataTable) clampOffsets() {
	if t.selectedRow < t.rowOffset {
		t.rowOffset = t.selectedRow
	}
	if t.visibleRows > 0 && t.selectedRow >= t.rowOffset+t.visibleRows {
		t.rowOffset = t.selectedRow - t.visibleRows + 1
	}
	if t.rowOffset > len(t.rows)-t.visibleRows {
		t.rowOffset = len(t.rows) - t.visibleRows
	}
	if t.rowOffset < 0 {
		t.rowOffset = 0
	}
	if t.columnOffset > len(t.colWidths)-1 {
		t.columnOffset = len(t.colWidths) - 1
	}
	if t.columnOffset < 0 {
		t.columnOffset = 0
	}
}

func (t *DataTable) columnName(i int) string {
	if i < len(t.columns) {
		return t.columns[i]
	}
	return ""
}

func (t *DataTable) cellText(row, i int) string {
	if i < len(t.rows[row]) {
		return t.rows[row][i]
	}
	return ""
}

func (t *DataTable) drawCell(screen tcell.Screen, text string, x, y, width int, style tcell.Style) {
	w := drawString(screen, text, x, y, width, style)
	for ; w < width; w++ {
		screen.SetContent(x+w, y, ' ', nil, style)
	}
}

func (t *DataTable) drawRow(screen tcell.Screen, x, y, width int, cell func(i int) string, style tcell.Style) {
	cx := x + t.gutterWidth + 1
	for i := t.columnOffset; i < len(t.colWidths); i++ {
		w := t.colWidths[i]
		if rem := x + width - cx; rem < w {
			w = rem
		}
		if w <= 0 {
			break
		}
		t.drawCell(screen, cell(i), cx, y, w, style)
		cx += t.colWidths[i] + 1
	}
}

// Draw draws this primitive onto the screen.
func (t *DataTable) Draw(screen tcell.Screen) {
	t.Box.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	if width < 1 || height < 1 {
		return
	}
	t.visibleRows = height - 1
	t.clampSelection()
	t.clampOffsets()
	t.drawRow(screen, x, y, width, t.columnName, columnStyle)
	for i := 0; i < t.visibleRows; i++ {
		row := t.rowOffset + i
		if row >= len(t.rows) {
			break
		}
		style := cellStyle
		if row == t.selectedRow {
			style = selectedStyle
		}
		drawString(screen, strconv.Itoa(row+1), x, y+1+i, t.gutterWidth, rowCountStyle)
		t.drawRow(screen, x, y+1+i, width, func(c int) string {
			return t.cellText(row, c)
		}, style)
	}
}

// InputHandler returns the handler for this primitive.
func (t *DataTable) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		key := event.Key()

		if key == tcell.KeyEscape || key == tcell.KeyTab || key == tcell.KeyBacktab {
			if t.done != nil {
				t.done(key)
			}
			return
		}

		var (
			home = func() {
				t.selectedRow = 0
				t.columnOffset = 0
			}

			end = func() {
				t.selectedRow = len(t.rows) - 1
			}

			down = func() {
				t.selectedRow++
			}

			up = func() {
				t.selectedRow--
			}

			left = func() {
				t.columnOffset--
			}

			right = func() {
				t.columnOffset++
			}

			pageDown = func() {
				t.selectedRow += t.visibleRows
			}

			pageUp = func() {
				t.selectedRow -= t.visibleRows
			}
		)

		switch key {
		case tcell.KeyRune:
			switch event.Rune() {
			case 'g':
				home()
			case 'G':
				end()
			case 'j':
				down()
			case 'k':
				up()
			case 'h':
				left()
			case 'l':
				right()
			}
		case tcell.KeyHome:
			home()
		case tcell.KeyEnd:
			end()
		case tcell.KeyUp:
			up()
		case tcell.KeyDown:
			down()
		case tcell.KeyLeft:
			left()
		case tcell.KeyRight:
			right()
		case tcell.KeyPgDn, tcell.KeyCtrlF:
			pageDown()
		case tcell.KeyPgUp, tcell.KeyCtrlB:
			pageUp()
		case tcell.KeyEnter:
			if t.selected != nil {
				t.clampSelection()
				t.selected(t.selectedRow)
			}
		}
		t.clampSelection()
	})
}

// MouseHandler returns the mouse handler for this primitive.
func (t *DataTable) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !t.InRect(x, y) {
			return false, nil
		}

		switch action {
		case tview.MouseLeftClick:
			_, rectY, _, _ := t.GetInnerRect()
			row := y - rectY - 1 + t.rowOffset
			if row >= 0 && row < len(t.rows) {
				t.Select(row)
			}
			setFocus(t)
			consumed = true
		case tview.MouseScrollUp:
			t.selectedRow--
			t.clampSelection()
			consumed = true
		case tview.MouseScrollDown:
			t.selectedRow++
			t.clampSelection()
			consumed = true
		}

		return
	})
}
