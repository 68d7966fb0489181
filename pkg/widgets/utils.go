// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// drawString prints text at (x, y) and returns the printed width. Text
// wider than maxWidth is cut off with an ellipsis. Zero-width runes are
// skipped so the result always matches stringWidth.
func drawString(screen tcell.Screen, text string, x, y, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	w := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if w+rw > maxWidth {
			for ; w < maxWidth-1; w++ {
				screen.SetContent(x+w, y, ' ', nil, style)
			}
			screen.SetContent(x+maxWidth-1, y, '…', nil, style)
			return maxWidth
		}
		screen.SetContent(x+w, y, r, nil, style)
		w += rw
	}
	return w
}
