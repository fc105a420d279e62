package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"imageorganizer/internal/classify"
	"imageorganizer/internal/grouping"
)

// tableColumn describes one output column. Numeric columns right-align their
// cells; headers always align left.
type tableColumn struct {
	title   string
	numeric bool
}

func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		align := text.AlignLeft
		if col.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
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

// renderClusterTable summarizes a grouped batch: one row per person with
// per-role image counts and whether an identity was extracted.
func renderClusterTable(result *grouping.Result) string {
	columns := []tableColumn{
		{title: "Person"},
		{title: "Images", numeric: true},
		{title: "Front", numeric: true},
		{title: "Back", numeric: true},
		{title: "Selfie", numeric: true},
		{title: "Identified"},
	}

	rows := make([][]string, 0, len(result.Clusters()))
	for _, cluster := range result.Clusters() {
		counts := make(map[classify.Role]int, 3)
		for _, member := range cluster.Members {
			counts[member.Role]++
		}
		rows = append(rows, []string{
			cluster.Name,
			strconv.Itoa(len(cluster.Members)),
			strconv.Itoa(counts[classify.RoleFront]),
			strconv.Itoa(counts[classify.RoleBack]),
			strconv.Itoa(counts[classify.RoleSelfie]),
			yesNo(cluster.Identity() != nil),
		})
	}
	return renderTable(columns, rows)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
