package router

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/paikeys/paikeys/internal/domain"
)

// decisionTrace carries the scoring inputs the reasoning trail is built from.
type decisionTrace struct {
	request         RoutingRequest
	weights         Weights
	ranking         []ScoredModel
	eligible        int
	catalogSize     int
	fallback        bool
	estimatedTokens int
}

// factorName describes what each priority's factor measures.
func factorName(p domain.Priority) string {
	switch p {
	case domain.PriorityIntelligence:
		return "strength breadth and context capacity"
	case domain.PrioritySpeed:
		return "the latency heuristic (smaller context, cheaper tier)"
	default:
		return "price per million tokens"
	}
}

// buildReasoning renders the reasoning trail. Output depends only on the trace,
// so identical requests produce identical trails.
func buildReasoning(t decisionTrace) []string {
	primary := t.ranking[0]
	dominant := t.weights.For(t.request.Priority)

	reasons := []string{
		fmt.Sprintf("Priority %q (%s) weighted %s at %.0f%% of the score; the other factors shared the remaining %.0f%%.",
			t.request.Priority, t.request.Priority.Label(), factorName(t.request.Priority), dominant*100, (1-dominant)*100),
	}

	if t.fallback {
		reasons = append(reasons, fmt.Sprintf("No catalog model lists %s support, so all %d models were ranked on score alone.",
			t.request.Modality, t.catalogSize))
	} else {
		reasons = append(reasons, fmt.Sprintf("%d of %d catalog models support %s; only those were ranked.",
			t.eligible, t.catalogSize, t.request.Modality))
	}

	lead := fmt.Sprintf("%s (%s) ranked first with a score of %.3f", primary.Model.Name, primary.Model.Provider, primary.Score)
	if s := primary.Model.StandoutStrength(); s != "" {
		lead += fmt.Sprintf("; standout strength: %s", s)
	}
	reasons = append(reasons, lead+".")

	reasons = append(reasons, runnerUpReason(t.ranking))
	reasons = append(reasons, contextReason(primary.Model, t.estimatedTokens))

	if primary.Model.OpenSource {
		reasons = append(reasons, fmt.Sprintf("%s has open weights and can be self-hosted.", primary.Model.Name))
	}

	return reasons
}

func runnerUpReason(ranking []ScoredModel) string {
	if len(ranking) < 2 {
		return "No other eligible model was available to compare against."
	}

	first, second := ranking[0], ranking[1]
	switch tieBreaker(first, second) {
	case "open-source":
		return fmt.Sprintf("Tied with %s on score; the open-source option was preferred.", second.Model.Name)
	case "cost":
		return fmt.Sprintf("Tied with %s on score; the lower price ($%.2f vs $%.2f per million tokens) broke the tie.",
			second.Model.Name, first.Model.CostPerMillion, second.Model.CostPerMillion)
	case "catalog-order":
		return fmt.Sprintf("Tied with %s on every signal; catalog order decided.", second.Model.Name)
	}

	return fmt.Sprintf("Led %s by %.3f points at $%.2f vs $%.2f per million tokens.",
		second.Model.Name, first.Score-second.Score, first.Model.CostPerMillion, second.Model.CostPerMillion)
}

func contextReason(m ModelDefinition, tokens int) string {
	if m.ContextWindow >= tokens {
		return fmt.Sprintf("The prompt is ~%s tokens, well within the %s-token context window.",
			humanize.Comma(int64(tokens)), humanize.Comma(int64(m.ContextWindow)))
	}
	return fmt.Sprintf("The prompt is ~%s tokens, beyond the %s-token context window; consider splitting it.",
		humanize.Comma(int64(tokens)), humanize.Comma(int64(m.ContextWindow)))
}
