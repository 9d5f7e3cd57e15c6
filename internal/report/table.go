package report

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/bft-labs/boundcheck/internal/domain"
)

type tableReporter struct {
	w      io.Writer
	status map[domain.Status]*color.Color
}

func newTableReporter(w io.Writer, colored bool) *tableReporter {
	palette := map[domain.Status]*color.Color{
		domain.StatusExact:     color.New(color.FgGreen),
		domain.StatusBoundary:  color.New(color.FgYellow),
		domain.StatusSaturated: color.New(color.FgRed, color.Bold),
	}
	for _, c := range palette {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &tableReporter{w: w, status: palette}
}

func (r *tableReporter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

func (r *tableReporter) Outcomes(outcomes []domain.Outcome) error {
	table := r.newTable([]string{"DOMAIN", "OPERATION", "START", "DELTA", "STEPS", "RESULT", "APPLIED", "STATUS"})
	for _, o := range outcomes {
		status := string(o.Status)
		if o.HaltedAt != nil {
			status += " @" + strconv.FormatUint(*o.HaltedAt, 10)
		}
		if c, ok := r.status[o.Status]; ok {
			status = c.Sprint(status)
		}
		table.Append([]string{
			o.Domain,
			string(o.Operation),
			o.Start,
			o.Delta,
			strconv.FormatUint(o.Steps, 10),
			o.Result,
			strconv.FormatUint(o.Applied, 10),
			status,
		})
	}
	table.Render()
	return nil
}

func (r *tableReporter) Domains(infos []domain.Info) error {
	table := r.newTable([]string{"DOMAIN", "KIND", "BITS", "MIN", "MAX"})
	for _, info := range infos {
		table.Append([]string{info.Name, info.Kind, strconv.Itoa(info.Bits), info.Min, info.Max})
	}
	table.Render()
	return nil
}
