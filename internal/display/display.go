// Package display renders catalog and scoring tables for the terminal.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"colosseum/internal/catalog"
	"colosseum/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// SizeGlyph returns the bracket marker for an event's display class.
func SizeGlyph(size int) string {
	switch size {
	case 1:
		return "[=]"
	case 2:
		return "[==]"
	default:
		return "[]"
	}
}

// Listing renders the full event catalog, one block per event.
func Listing(c *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("EVENT PROGRAM"))
	b.WriteString("\n\n")
	for _, ev := range c.Events() {
		b.WriteString(fmt.Sprintf("%3d %-4s %s\n",
			ev.ID, SizeGlyph(ev.Size), nameStyle.Render(ev.Name)))
		b.WriteString(fmt.Sprintf("     cost %d, scores %d\n", ev.Cost, ev.BaseScore))
		b.WriteString("     needs " + requirementSummary(ev.Requirements) + "\n")
		if len(ev.Penalties) > 0 {
			b.WriteString(dimStyle.Render("     repeat penalties "+intList(ev.Penalties)) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// requirementSummary aggregates duplicate requirements into counts, keeping
// first-appearance order.
func requirementSummary(reqs []catalog.Asset) string {
	counts := make(map[catalog.Asset]int)
	var order []catalog.Asset
	for _, a := range reqs {
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}
	parts := make([]string, len(order))
	for i, a := range order {
		parts[i] = fmt.Sprintf("%dx %s", counts[a], a)
	}
	return strings.Join(parts, ", ")
}

func intList(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "/")
}

// Scoreboard renders final scores highest first, ties broken by seat order.
func Scoreboard(entries []engine.ScoreEntry) string {
	ranked := append([]engine.ScoreEntry(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	var b strings.Builder
	b.WriteString(headerStyle.Render("FINAL SCORES"))
	b.WriteString("\n\n")
	for rank, e := range ranked {
		line := fmt.Sprintf("%d. %-12s %3d  (play %d, coins %d, medals %d, podiums %d, tickets %d, loge %d, arena %d)",
			rank+1, e.PlayerName, e.Total,
			e.PlayScore, e.CoinScore, e.MedalScore, e.PodiumScore,
			e.TicketScore, e.LogeScore, e.ArenaScore)
		if rank == 0 {
			line = winnerStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Batch renders a market batch as a short comma list.
func Batch(assets []catalog.Asset) string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
