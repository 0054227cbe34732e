package tempo

import (
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Print renders the snapshot tree to stdout, one table per context.
func (s *Snapshot) Print() {
	s.Fprint(os.Stdout)
}

// Fprint renders the snapshot tree to w in a recursive manner: a table for
// this context's measures followed by the tables of its children. Each row
// carries the measure name, its duration and its timeslice, i.e. the share
// of the context's total time spent in that measure.
func (s *Snapshot) Fprint(w io.Writer) {
	s.fprint(w, "timer")
}

func (s *Snapshot) fprint(w io.Writer, path string) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	var total float64
	for _, m := range s.Measures {
		total += m.Millis()
	}

	tbl := table.New(
		"measure",
		"duration",
		"timeslice",
	)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, m := range s.Measures {
		timeslice := 0.0
		if total > 0 {
			timeslice = m.Millis() / total
		}
		tbl.AddRow(
			m.Name,
			m.Duration,
			math.Floor(timeslice*1000)/1000,
		)
	}
	color.New(color.FgGreen).Add(color.Bold).Fprintf(w, "\n⏱ Context %s\n", path)
	tbl.Print()

	for _, child := range s.Children {
		child.Snapshot.fprint(w, path+" -> "+child.Name)
	}
}
