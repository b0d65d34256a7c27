package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"svw.info/advent/internal/bingo"
	"svw.info/advent/internal/domain"
)

func printAnswer(w io.Writer, ans domain.Answer) {
	for _, p := range ans.Parts {
		fmt.Fprintf(w, "%s: %d\n", p.Label, p.Value)
	}
}

// printReport writes the answer lines of every result, then the timing table.
func printReport(w io.Writer, r *domain.Report) {
	for _, res := range r.Results {
		if res.Error != "" {
			fmt.Fprintf(w, "Day %d [%s] failed: %s\n", res.Day, res.Name, res.Error)
			continue
		}
		printAnswer(w, domain.Answer{Day: res.Day, Name: res.Name, Parts: res.Parts})
	}
	fmt.Fprintln(w)
	for i, res := range r.Results {
		fmt.Fprintf(w, "Puzzle %d [%s] elapsed %d us\n", i, res.Name, res.Elapsed.Microseconds())
	}
}

func printWinners(w io.Writer, ws []bingo.Winner) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOARD\tTURN\tDRAW\tSCORE")
	for _, x := range ws {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", x.Board, x.Turn, x.Draw, x.Score)
	}
	tw.Flush()
}

func printMetas(w io.Writer, metas []domain.ReportMeta) {
	if len(metas) == 0 {
		fmt.Fprintln(w, "no saved reports")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tPUZZLES\tFAILED")
	for _, m := range metas {
		created := time.Unix(0, m.CreatedAt).Format(time.RFC3339)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", m.ID, created, m.Puzzles, m.Failed)
	}
	tw.Flush()
}
