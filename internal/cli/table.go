package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mgpai22/subburn/internal/batch"
)

// one table column; colors is applied per cell when output is a terminal
type column struct {
	title  string
	right  bool
	colors func(value string) text.Colors
}

var statusColors = map[batch.Status]text.Colors{
	batch.StatusOK:      {text.FgGreen},
	batch.StatusSkipped: {text.FgYellow},
	batch.StatusFailed:  {text.FgRed, text.Bold},
	batch.StatusPending: {text.FgHiBlack},
}

func colorStatus(value string) text.Colors {
	return statusColors[batch.Status(value)]
}

func renderTable(columns []column, rows [][]string, pretty bool) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if !pretty {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		cfg := table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if c.right {
			cfg.Align = text.AlignRight
		}
		if pretty && c.colors != nil {
			colors := c.colors
			cfg.Transformer = func(val interface{}) string {
				s := fmt.Sprint(val)
				return colors(s).Sprint(s)
			}
		}
		configs[i] = cfg
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
