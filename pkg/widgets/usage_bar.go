// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// UsageBar shows key bindings as "key description" pairs, flowing them
// into as many lines as the terminal width demands.
type UsageBar struct {
	*tview.TextView
	strs           []string
	widths         []int
	margin         int
	lastTotalWidth int
	height         int
}

func NewUsageBar(entries [][2]string, margin int) *UsageBar {
	n := len(entries)
	u := &UsageBar{
		TextView: tview.NewTextView().
			SetDynamicColors(true),
		strs:   make([]string, n),
		widths: make([]int, n),
		margin: margin,
		height: 1,
	}
	for i, a := range entries {
		u.strs[i] = fmt.Sprintf("[black:white] %s [white:black] %s", a[0], a[1])
		u.widths[i] = stringWidth(a[0]) + stringWidth(a[1]) + 3
	}
	return u
}

func (b *UsageBar) printRows(totalWidth int) {
	b.TextView.Clear()
	b.height = 1
	lineWidth := 0
	for i, s := range b.strs {
		if lineWidth > 0 && lineWidth+b.margin+b.widths[i] > totalWidth {
			fmt.Fprintln(b.TextView)
			b.height++
			lineWidth = 0
		}
		if lineWidth > 0 {
			fmt.Fprint(b.TextView, strings.Repeat(" ", b.margin))
			lineWidth += b.margin
		}
		fmt.Fprint(b.TextView, s)
		lineWidth += b.widths[i]
	}
}

// BeforeDraw recomputes the layout when the terminal width changed and
// claims just enough rows of flex for itself. Hook it up with
// app.SetBeforeDrawFunc.
func (b *UsageBar) BeforeDraw(screen tcell.Screen, flex *tview.Flex) {
	_, _, width, _ := b.GetInnerRect()
	if width != b.lastTotalWidth {
		b.printRows(width)
		b.lastTotalWidth = width
	}
	flex.ResizeItem(b, b.height, 1)
}
