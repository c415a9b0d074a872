package motifer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

const maxCoreShow = 40 // longer cores are cut in the summary

func status(r *BinResult) (string, lipgloss.Style) {
	switch {
	case r.Err != nil:
		return "failed", failStyle
	case r.Result == nil && r.NPep < 0 && !r.Motifs:
		return "skipped", skippedStyle
	}
	return "ok", okStyle
}

func numOrDash(n int) string {
	if n < 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

// Summary is a table of the bins for the terminal, one line per bin.
func Summary(results []BinResult) string {
	head := []string{"bin", "peptides", "aligned", "length", "core", "sequence", "status"}
	rows := [][]string{head}
	for i := range results {
		r := &results[i]
		nseq, length, ncore, core := "-", "-", "-", ""
		if res := r.Result; res != nil {
			nseq = strconv.Itoa(res.NSeq)
			length = strconv.Itoa(len(res.Consensus))
			ncore = strconv.Itoa(len(res.Core.Positions))
			core = res.Core.Seq
			if len(core) > maxCoreShow {
				core = core[:maxCoreShow] + "..."
			}
		}
		st, _ := status(r)
		rows = append(rows, []string{r.Bin.String(), numOrDash(r.NPep), nseq, length, ncore, core, st})
	}

	widths := make([]int, len(head))
	for _, row := range rows {
		for j, c := range row {
			widths[j] = max(widths[j], len(c))
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			style := cellStyle.Width(widths[j] + cellStyle.GetPaddingRight())
			switch {
			case i == 0:
				cells[j] = style.Inherit(headStyle).Render(c)
				continue
			case j == len(row)-1:
				_, st := status(&results[i-1])
				cells[j] = st.Render(c)
				continue
			}
			cells[j] = style.Render(c)
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return strings.Join(lines, "\n")
}
