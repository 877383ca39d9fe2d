// Package report renders scheduling runs for the console: the classic
// "name:start->end" transcript and an optional per-task summary table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
)

// WriteSchedule prints a run as its policy header followed by one line per
// timeline record, in emission order.
func WriteSchedule(w io.Writer, r *sim.Result) error {
	if _, err := fmt.Fprintf(w, "%s:\n", r.Policy); err != nil {
		return err
	}
	for _, line := range r.Timeline.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the per-task metrics of a run as a table, with run
// averages in the footer.
func WriteSummary(w io.Writer, m *sim.Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Task", "Arrival", "Service", "Start", "Finish", "Turnaround", "Waiting", "Status"})
	rows := make([][]string, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		row := []string{
			t.Name,
			strconv.FormatInt(t.Arrival, 10),
			fmt.Sprintf("%d/%d", t.Serviced, t.Estimated),
			optionalTick(t.Started),
			optionalTick(t.Completed),
			"-",
			"-",
			string(t.State),
		}
		if t.Completed != nil {
			row[5] = strconv.FormatInt(t.Turnaround, 10)
			row[6] = strconv.FormatInt(t.Waiting, 10)
		}
		rows = append(rows, row)
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Missed %d", m.Missed),
		fmt.Sprintf("Average %.2f", m.MeanTurnaround),
		fmt.Sprintf("Average %.2f", m.MeanWaiting),
		fmt.Sprintf("Throughput %.2f/t", m.Throughput)})
	table.Render()
}

func optionalTick(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}
