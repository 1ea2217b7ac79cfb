package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/paikeys/paikeys/internal/domain"
)

// RouteAnswers holds the fields of an interactive routing request.
type RouteAnswers struct {
	Prompt   string
	Modality domain.Modality
	Priority domain.Priority
}

// ExamplePrompt is a ready-made task offered at the top of the route form.
type ExamplePrompt struct {
	Label  string
	Prompt string
}

// ExamplePrompts are offered in order; the first one pre-fills the form.
var ExamplePrompts = []ExamplePrompt{
	{
		Label:  "Ship-grade product spec",
		Prompt: "Draft a detailed product strategy for a realtime multiplayer whiteboard with pricing tiers, rollout steps, and competitive analysis.",
	},
	{
		Label:  "Code review & refactor",
		Prompt: "Review this Typescript function for race conditions and refactor it for better performance in a serverless environment.",
	},
	{
		Label:  "Vision to insights",
		Prompt: "You are given a product photo and need to extract SKU details, materials, defects, and marketing copy from it.",
	},
}

// ownPrompt is the preset choice that keeps whatever prompt was given.
const ownPrompt = "own"

// newPresetForm asks which example prompt to start from.
func newPresetForm(choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(ExamplePrompts)+1)
	for _, p := range ExamplePrompts {
		options = append(options, huh.NewOption(p.Label, p.Label))
	}
	options = append(options, huh.NewOption("Write my own", ownPrompt))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start from an example").
				Options(options...).
				Value(choice),
		),
	)
}

// presetPrompt returns the prompt of the example labelled choice, or own
// when choice names no example.
func presetPrompt(choice, own string) string {
	for _, p := range ExamplePrompts {
		if p.Label == choice {
			return p.Prompt
		}
	}
	return own
}

// defaultChoice starts on the first example unless a prompt was supplied.
func defaultChoice(defaults RouteAnswers) string {
	if defaults.Prompt != "" || len(ExamplePrompts) == 0 {
		return ownPrompt
	}
	return ExamplePrompts[0].Label
}

// withDefaults fills an unset modality and priority the way the web form did.
func withDefaults(defaults RouteAnswers) RouteAnswers {
	answers := defaults
	if answers.Modality == "" {
		answers.Modality = domain.ModalityText
	}
	if answers.Priority == "" {
		answers.Priority = domain.PriorityIntelligence
	}
	return answers
}

// newRouteForm builds the form that fills answers in place.
func newRouteForm(answers *RouteAnswers) *huh.Form {
	modalities := make([]huh.Option[domain.Modality], 0, len(domain.Modalities()))
	for _, m := range domain.Modalities() {
		modalities = append(modalities, huh.NewOption(m.Label(), m))
	}

	priorities := make([]huh.Option[domain.Priority], 0, len(domain.Priorities()))
	for _, p := range domain.Priorities() {
		priorities = append(priorities, huh.NewOption(fmt.Sprintf("%s (%s)", p, p.Label()), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Describe the task").
				Placeholder("e.g. Write a Python function to parse JSON").
				Value(&answers.Prompt).
				Validate(validatePrompt),
			huh.NewSelect[domain.Modality]().
				Title("Modality").
				Options(modalities...).
				Value(&answers.Modality),
			huh.NewSelect[domain.Priority]().
				Title("Optimize for").
				Options(priorities...).
				Value(&answers.Priority),
		),
	)
}

func validatePrompt(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

// PromptForRoute asks for a routing request interactively. An example prompt
// is picked first and pre-fills the editable task text; non-empty fields of
// defaults pre-fill the form.
func PromptForRoute(defaults RouteAnswers) (RouteAnswers, error) {
	answers := withDefaults(defaults)

	choice := defaultChoice(defaults)
	if err := newPresetForm(&choice).Run(); err != nil {
		return RouteAnswers{}, fmt.Errorf("prompt failed: %w", err)
	}
	answers.Prompt = presetPrompt(choice, defaults.Prompt)

	if err := newRouteForm(&answers).Run(); err != nil {
		return RouteAnswers{}, fmt.Errorf("prompt failed: %w", err)
	}

	return answers, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment
// Prompts are disabled in CI environments or when stdin is not a terminal
func ShouldPrompt() bool {
	for _, envVar := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "BUILDKITE"} {
		if os.Getenv(envVar) != "" {
			return false
		}
	}
	return IsInteractive()
}
