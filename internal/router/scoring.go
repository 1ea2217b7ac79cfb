package router

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/paikeys/paikeys/internal/domain"
)

const (
	// maxStrengths caps how many strengths count toward breadth.
	maxStrengths = 5

	// breadthShare is the part of the intelligence factor driven by strengths;
	// the rest comes from context capacity.
	breadthShare = 0.6

	// reasoningBonus is added to breadth when a strength names a reasoning-class skill.
	reasoningBonus = 0.2

	// scoreResolution is the granularity at which two scores count as tied.
	scoreResolution = 1e6
)

// reasoningSkills mark strengths that indicate heavier analytical capability.
var reasoningSkills = []string{"reason", "analysis", "math", "research", "planning", "science"}

// Weights is the share each factor contributes to the final score.
type Weights struct {
	Intelligence float64
	Speed        float64
	Economy      float64
}

// weightsFor gives the priority's factor the dominant weight and splits the
// remainder evenly between the other two.
func weightsFor(priority domain.Priority, dominant float64) Weights {
	rest := (1 - dominant) / 2
	w := Weights{Intelligence: rest, Speed: rest, Economy: rest}
	switch priority {
	case domain.PriorityIntelligence:
		w.Intelligence = dominant
	case domain.PrioritySpeed:
		w.Speed = dominant
	case domain.PriorityEconomy:
		w.Economy = dominant
	}
	return w
}

// For returns the weight applied to the priority's own factor.
func (w Weights) For(priority domain.Priority) float64 {
	switch priority {
	case domain.PriorityIntelligence:
		return w.Intelligence
	case domain.PrioritySpeed:
		return w.Speed
	default:
		return w.Economy
	}
}

// scoreModels computes factor scores for candidates and returns them ranked best first.
// candidates must be non-empty and satisfy catalog invariants.
func scoreModels(candidates []ModelDefinition, indexes []int, w Weights, estimatedTokens int) []ScoredModel {
	maxContext := 1
	for _, m := range candidates {
		maxContext = max(maxContext, m.ContextWindow)
	}
	logMax := math.Log1p(float64(maxContext))

	scored := make([]ScoredModel, len(candidates))
	for i, m := range candidates {
		size := math.Log1p(float64(m.ContextWindow)) / logMax

		// A window that cannot hold the prompt contributes no capacity.
		capacity := 0.0
		if m.ContextWindow >= estimatedTokens {
			capacity = size
		}

		economy := 1 / (1 + m.CostPerMillion)
		intelligence := breadthShare*breadth(m.Strengths) + (1-breadthShare)*capacity
		speed := 0.5*(1-size) + 0.5*economy

		scored[i] = ScoredModel{
			Model:        m,
			Intelligence: intelligence,
			Speed:        speed,
			Economy:      economy,
			Capacity:     capacity,
			Score:        w.Intelligence*intelligence + w.Speed*speed + w.Economy*economy,
			index:        indexes[i],
		}
	}

	slices.SortStableFunc(scored, compareScored)
	return scored
}

// breadth rates a strengths list in [0,1].
func breadth(strengths []string) float64 {
	b := float64(min(len(strengths), maxStrengths)) / maxStrengths
	if hasReasoningSkill(strengths) {
		b += reasoningBonus
	}
	return min(b, 1)
}

func hasReasoningSkill(strengths []string) bool {
	for _, s := range strengths {
		lower := strings.ToLower(s)
		for _, skill := range reasoningSkills {
			if strings.Contains(lower, skill) {
				return true
			}
		}
	}
	return false
}

// scoreKey quantizes a score so float noise never decides a ranking.
func scoreKey(score float64) int64 {
	return int64(math.Round(score * scoreResolution))
}

// compareScored orders by score descending, then open source first,
// then lower cost, then catalog declaration order.
func compareScored(a, b ScoredModel) int {
	if c := cmp.Compare(scoreKey(b.Score), scoreKey(a.Score)); c != 0 {
		return c
	}
	if a.Model.OpenSource != b.Model.OpenSource {
		if a.Model.OpenSource {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Model.CostPerMillion, b.Model.CostPerMillion); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

// tieBreaker names the rule that ordered a ahead of b, or "" when their
// scores differ.
func tieBreaker(a, b ScoredModel) string {
	if scoreKey(a.Score) != scoreKey(b.Score) {
		return ""
	}
	switch {
	case a.Model.OpenSource != b.Model.OpenSource:
		return "open-source"
	case a.Model.CostPerMillion != b.Model.CostPerMillion:
		return "cost"
	default:
		return "catalog-order"
	}
}
