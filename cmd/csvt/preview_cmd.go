// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvt

import (
	"fmt"
	"io"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/wrgl/csvt/cmd/csvt/utils"
	"github.com/wrgl/csvt/pkg/conf"
	"github.com/wrgl/csvt/pkg/csv"
	"github.com/wrgl/csvt/pkg/widgets"
)

const defaultPreviewRows = 1000

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [CSV_FILE]",
		Short: "Show a CSV stream in an interactive table",
		Long: "Show a CSV stream in an interactive table with vi-like navigation. Only the\n" +
			"first --rows rows are loaded. Press q or Escape to quit.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "preview a file",
				Line:    "csvt preview data.csv",
			},
			{
				Comment: "keep the view in sync while the file is being written to",
				Line:    "csvt preview data.csv --follow",
			},
		}),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmd.Flags().GetInt("rows")
			if err != nil {
				return err
			}
			follow, err := cmd.Flags().GetBool("follow")
			if err != nil {
				return err
			}
			c, err := getConfig(cmd)
			if err != nil {
				return err
			}
			if n == 0 {
				if c.Preview != nil && c.Preview.Rows > 0 {
					n = c.Preview.Rows
				} else {
					n = defaultPreviewRows
				}
			}
			var inFile string
			if len(args) > 0 {
				inFile = args[0]
			}
			if follow && inFile == "" {
				return fmt.Errorf("--follow requires CSV_FILE")
			}
			columns, rows, err := readPreviewRows(cmd, c, inFile, n)
			if err != nil {
				return err
			}
			return runPreviewApp(cmd, c, inFile, n, columns, rows, follow)
		},
	}
	cmd.Flags().IntP("rows", "n", 0, "max number of rows to load (defaults to preview.rows in config, else 1000)")
	cmd.Flags().Bool("follow", false, "reload the table whenever CSV_FILE changes")
	return cmd
}

func readPreviewRows(cmd *cobra.Command, c *conf.Config, inFile string, n int) (columns []string, rows [][]string, err error) {
	in, err := utils.OpenInput(inFile, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	r := csv.NewReader(in, inputCSVOptions(cmd, c)...)
	columns, err = r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty input")
	}
	if err != nil {
		return nil, nil, err
	}
	for len(rows) < n {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

func runPreviewApp(cmd *cobra.Command, c *conf.Config, inFile string, n int, columns []string, rows [][]string, follow bool) error {
	app := tview.NewApplication().EnableMouse(true)

	name := inFile
	if name == "" {
		name = "(stdin)"
	}
	titleBar := tview.NewTextView().SetDynamicColors(true)
	writeTitle := func(rowCount, colCount int) {
		titleBar.Clear()
		fmt.Fprintf(titleBar, "[yellow]%s[white]  ([teal]%d[white] x [teal]%d[white])", name, rowCount, colCount)
	}
	writeTitle(len(rows), len(columns))

	tv := widgets.NewDataTable().SetRows(columns, rows)
	tv.SetDoneFunc(func(key tcell.Key) {
		app.Stop()
	})

	usageBar := widgets.NewUsageBar([][2]string{
		{"g", "Scroll to begin"},
		{"G", "Scroll to end"},
		{"h", "Left"},
		{"j", "Down"},
		{"k", "Up"},
		{"l", "Right"},
		{"q", "Quit"},
	}, 2)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(titleBar, 1, 1, false).
		AddItem(tv, 0, 1, true).
		AddItem(usageBar, 0, 1, false)

	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		usageBar.BeforeDraw(screen, flex)
		return false
	})

	var watcher *fsnotify.Watcher
	if follow {
		var err error
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err = watcher.Add(inFile); err != nil {
			return err
		}
		go func() {
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					columns, rows, err := readPreviewRows(cmd, c, inFile, n)
					if err != nil {
						continue
					}
					app.QueueUpdateDraw(func() {
						tv.SetRows(columns, rows)
						writeTitle(len(rows), len(columns))
					})
				case _, ok := <-watcher.Errors:
					if !ok {
						return
					}
				}
			}
		}()
	}

	return app.SetRoot(flex, true).SetFocus(flex).Run()
}
