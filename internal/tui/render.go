package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/paikeys/paikeys/internal/router"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	primaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// RenderDecision formats a routing result for the terminal. With scores set it
// appends the factor breakdown for every eligible model.
func RenderDecision(req router.RoutingRequest, result *router.RoutingResult, scores bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Routing decision"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s · %s · ~%s tokens\n",
		headerStyle.Render("Request:"), req.Modality.Label(), req.Priority.Label(),
		humanize.Comma(int64(result.Insights.EstimatedTokens)))
	if result.ModalityFallback {
		b.WriteString(warnStyle.Render("No model supports this modality; ranked the full catalog."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Primary:"), primaryStyle.Render(modelLine(result.Primary)))

	if len(result.Contenders) > 0 {
		b.WriteString(headerStyle.Render("Contenders:"))
		b.WriteString("\n")
		for i, m := range result.Contenders {
			fmt.Fprintf(&b, "  %d. %s\n", i+2, modelLine(m))
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Reasoning:"))
	b.WriteString("\n")
	for _, r := range result.Insights.Reasoning {
		fmt.Fprintf(&b, "  • %s\n", r)
	}

	if scores {
		b.WriteString("\n")
		b.WriteString(RenderScores(result.Ranking))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderScores tabulates the factor breakdown of a ranking.
func RenderScores(ranking []router.ScoredModel) string {
	rows := make([][]string, 0, len(ranking))
	for i, s := range ranking {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Model.ID,
			fmt.Sprintf("%.3f", s.Score),
			fmt.Sprintf("%.3f", s.Intelligence),
			fmt.Sprintf("%.3f", s.Speed),
			fmt.Sprintf("%.3f", s.Economy),
			fmt.Sprintf("%.3f", s.Capacity),
		})
	}

	return newTable().
		Headers("#", "MODEL", "SCORE", "INTELLIGENCE", "SPEED", "ECONOMY", "CAPACITY").
		Rows(rows...).
		String()
}

// RenderModels tabulates catalog entries.
func RenderModels(models []router.ModelDefinition) string {
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		caps := make([]string, len(m.Capabilities))
		for i, c := range m.Capabilities {
			caps[i] = string(c)
		}
		open := ""
		if m.OpenSource {
			open = "yes"
		}
		rows = append(rows, []string{
			m.ID,
			m.Provider,
			strings.Join(caps, ","),
			humanize.Comma(int64(m.ContextWindow)),
			fmt.Sprintf("$%.2f", m.CostPerMillion),
			open,
		})
	}

	return newTable().
		Headers("ID", "PROVIDER", "CAPABILITIES", "CONTEXT", "$/M TOKENS", "OPEN").
		Rows(rows...).
		String()
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

func modelLine(m router.ModelDefinition) string {
	line := fmt.Sprintf("%s (%s) · %s ctx · $%.2f/M", m.Name, m.Provider,
		humanize.Comma(int64(m.ContextWindow)), m.CostPerMillion)
	if m.OpenSource {
		line += " · open weights"
	}
	return line
}
