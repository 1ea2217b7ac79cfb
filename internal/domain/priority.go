package domain

import "fmt"

// Priority is the optimization objective a routing request asks for.
// This is a value object that enforces valid priority values.
type Priority string

// Valid priorities
const (
	PriorityIntelligence Priority = "intelligence" // Best reasoning quality
	PrioritySpeed        Priority = "speed"        // Lowest latency
	PriorityEconomy      Priority = "economy"      // Best value per token
)

// Priorities returns every recognized priority in declaration order.
func Priorities() []Priority {
	return []Priority{PriorityIntelligence, PrioritySpeed, PriorityEconomy}
}

// NewPriority creates a new Priority value object with validation
func NewPriority(value string) (Priority, error) {
	p := Priority(value)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks if the priority is valid
func (p Priority) Validate() error {
	switch p {
	case PriorityIntelligence, PrioritySpeed, PriorityEconomy:
		return nil
	default:
		return fmt.Errorf("invalid priority %q: must be intelligence, speed, or economy", string(p))
	}
}

// String returns the string representation
func (p Priority) String() string {
	return string(p)
}

// Label returns the human-facing name used in explanations.
func (p Priority) Label() string {
	switch p {
	case PriorityIntelligence:
		return "best intelligence"
	case PrioritySpeed:
		return "lowest latency"
	case PriorityEconomy:
		return "best value"
	default:
		return string(p)
	}
}
