package core

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/baxromumarov/goalie-stats/internal/normalize"
	"github.com/baxromumarov/goalie-stats/internal/partition"
)

// State is where a partition ended up. A partition moves
// discovered -> extracted -> normalized -> loaded, or stops at skipped or
// failed.
type State string

const (
	StateDiscovered State = "discovered"
	StateExtracted  State = "extracted"
	StateNormalized State = "normalized"
	StateLoaded     State = "loaded"
	StateSkipped    State = "skipped"
	StateFailed     State = "failed"
)

// RowDrop records one row excluded from a batch. Line is the row's line in
// the source file, or its <tr> position for HTML extracts.
type RowDrop struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

type PartitionResult struct {
	File           string                    `json:"file"`
	Path           string                    `json:"path"`
	Source         string                    `json:"source"`
	Key            partition.Key             `json:"key"`
	State          State                     `json:"state"`
	RowsRead       int                       `json:"rows_read"`
	RowsLoaded     int                       `json:"rows_loaded"`
	Dropped        []RowDrop                 `json:"dropped,omitempty"`
	DroppedColumns []normalize.DroppedColumn `json:"dropped_columns,omitempty"`
	Error          string                    `json:"error,omitempty"`

	err error
}

// Err is the cause of a skipped or failed partition.
func (r PartitionResult) Err() error {
	return r.err
}

type Report struct {
	RunID      string            `json:"run_id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Partitions []PartitionResult `json:"partitions"`
	Error      string            `json:"error,omitempty"`
}

type Summary struct {
	Loaded      int `json:"loaded"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
	Rows        int `json:"rows"`
	DroppedRows int `json:"dropped_rows"`
}

func (r *Report) Summary() Summary {
	var s Summary
	for _, p := range r.Partitions {
		switch p.State {
		case StateLoaded:
			s.Loaded++
		case StateSkipped:
			s.Skipped++
		case StateFailed:
			s.Failed++
		}
		s.Rows += p.RowsLoaded
		s.DroppedRows += len(p.Dropped)
	}
	return s
}

// Files lists the files that ended in state, in processing order.
func (r *Report) Files(state State) []string {
	var out []string
	for _, p := range r.Partitions {
		if p.State == state {
			out = append(out, p.File)
		}
	}
	return out
}

func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Render writes a per-partition table followed by the totals.
func (r *Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "File", "Partition", "State", "Loaded", "Dropped", "Details"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, p := range r.Partitions {
		partitionKey := ""
		if p.Key != (partition.Key{}) {
			partitionKey = p.Key.String()
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			p.File,
			partitionKey,
			colorState(p.State),
			strconv.Itoa(p.RowsLoaded),
			strconv.Itoa(len(p.Dropped)),
			p.Error,
		})
	}
	table.Render()

	s := r.Summary()
	fmt.Fprintf(w, "\nrun %s: %s loaded, %s skipped, %s failed, %d rows (%d dropped) in %s\n",
		r.RunID,
		color.GreenString(strconv.Itoa(s.Loaded)),
		color.YellowString(strconv.Itoa(s.Skipped)),
		color.RedString(strconv.Itoa(s.Failed)),
		s.Rows, s.DroppedRows, r.Duration().Round(time.Millisecond))
}

func colorState(s State) string {
	switch s {
	case StateLoaded:
		return color.GreenString(string(s))
	case StateSkipped:
		return color.YellowString(string(s))
	case StateFailed:
		return color.RedString(string(s))
	}
	return string(s)
}
