package router

import "github.com/paikeys/paikeys/internal/domain"

var (
	textCode         = []domain.Modality{domain.ModalityText, domain.ModalityCode}
	textCodeVision   = []domain.Modality{domain.ModalityText, domain.ModalityCode, domain.ModalityVision}
	everyInputOutput = []domain.Modality{domain.ModalityText, domain.ModalityCode, domain.ModalityVision, domain.ModalityAudio, domain.ModalityMultimodal}
)

// DefaultModels returns the built-in catalog of frontier and open models.
// Each call returns fresh slices.
func DefaultModels() []ModelDefinition {
	return []ModelDefinition{
		// OpenAI
		{
			ID:             "gpt-4o",
			Name:           "GPT-4o",
			Provider:       "OpenAI",
			Capabilities:   append([]domain.Modality(nil), everyInputOutput...),
			Strengths:      []string{"Multimodal reasoning", "Tool use", "Broad world knowledge", "Fast responses"},
			ContextWindow:  128000,
			CostPerMillion: 5.00,
		},
		{
			ID:             "gpt-4o-mini",
			Name:           "GPT-4o mini",
			Provider:       "OpenAI",
			Capabilities:   append([]domain.Modality(nil), textCodeVision...),
			Strengths:      []string{"Low latency", "Cost efficiency", "Structured output"},
			ContextWindow:  128000,
			CostPerMillion: 0.15,
		},
		{
			ID:             "o1",
			Name:           "o1",
			Provider:       "OpenAI",
			Capabilities:   append([]domain.Modality(nil), textCode...),
			Strengths:      []string{"Deep reasoning", "Math and science", "Complex planning", "Code analysis"},
			ContextWindow:  200000,
			CostPerMillion: 15.00,
		},
		{
			ID:             "whisper-large-v3",
			Name:           "Whisper large-v3",
			Provider:       "OpenAI",
			Capabilities:   []domain.Modality{domain.ModalityAudio},
			Strengths:      []string{"Speech recognition", "Speech translation", "Open weights"},
			ContextWindow:  448,
			CostPerMillion: 0.10,
			OpenSource:     true,
		},
		{
			ID:             "dall-e-3",
			Name:           "DALL·E 3",
			Provider:       "OpenAI",
			Capabilities:   []domain.Modality{domain.ModalityImage},
			Strengths:      []string{"Prompt fidelity", "Legible typography", "Safety filtering"},
			ContextWindow:  4000,
			CostPerMillion: 40.00,
		},

		// Anthropic
		{
			ID:             "claude-3-5-sonnet",
			Name:           "Claude 3.5 Sonnet",
			Provider:       "Anthropic",
			Capabilities:   append([]domain.Modality(nil), textCodeVision...),
			Strengths:      []string{"Code generation", "Careful analysis", "Long-form writing", "Tool use"},
			ContextWindow:  200000,
			CostPerMillion: 3.00,
		},
		{
			ID:             "claude-3-5-haiku",
			Name:           "Claude 3.5 Haiku",
			Provider:       "Anthropic",
			Capabilities:   append([]domain.Modality(nil), textCode...),
			Strengths:      []string{"Low latency", "Summarization", "Classification"},
			ContextWindow:  200000,
			CostPerMillion: 0.80,
		},

		// Google
		{
			ID:             "gemini-1.5-pro",
			Name:           "Gemini 1.5 Pro",
			Provider:       "Google",
			Capabilities:   append([]domain.Modality(nil), everyInputOutput...),
			Strengths:      []string{"Massive context", "Video understanding", "Research synthesis", "Multilingual"},
			ContextWindow:  2000000,
			CostPerMillion: 1.25,
		},
		{
			ID:             "gemini-1.5-flash",
			Name:           "Gemini 1.5 Flash",
			Provider:       "Google",
			Capabilities:   []domain.Modality{domain.ModalityText, domain.ModalityVision, domain.ModalityAudio, domain.ModalityMultimodal},
			Strengths:      []string{"Low latency", "Long context", "Cost efficiency"},
			ContextWindow:  1000000,
			CostPerMillion: 0.075,
		},

		// Open models
		{
			ID:             "llama-3.1-405b",
			Name:           "Llama 3.1 405B",
			Provider:       "Meta",
			Capabilities:   append([]domain.Modality(nil), textCode...),
			Strengths:      []string{"Open weights", "Reasoning", "Multilingual", "Fine-tunable"},
			ContextWindow:  128000,
			CostPerMillion: 3.00,
			OpenSource:     true,
		},
		{
			ID:             "llama-3.1-8b",
			Name:           "Llama 3.1 8B",
			Provider:       "Meta",
			Capabilities:   []domain.Modality{domain.ModalityText},
			Strengths:      []string{"Low latency", "Edge deployment", "Open weights"},
			ContextWindow:  128000,
			CostPerMillion: 0.05,
			OpenSource:     true,
		},
		{
			ID:             "llama-3.2-90b-vision",
			Name:           "Llama 3.2 90B Vision",
			Provider:       "Meta",
			Capabilities:   []domain.Modality{domain.ModalityText, domain.ModalityVision},
			Strengths:      []string{"Image understanding", "Chart and document reading", "Open weights"},
			ContextWindow:  128000,
			CostPerMillion: 0.90,
			OpenSource:     true,
		},
		{
			ID:             "mistral-large-2",
			Name:           "Mistral Large 2",
			Provider:       "Mistral",
			Capabilities:   append([]domain.Modality(nil), textCode...),
			Strengths:      []string{"Multilingual", "Function calling", "Code generation"},
			ContextWindow:  128000,
			CostPerMillion: 2.00,
		},
		{
			ID:             "codestral",
			Name:           "Codestral",
			Provider:       "Mistral",
			Capabilities:   []domain.Modality{domain.ModalityCode},
			Strengths:      []string{"Code completion", "Fill-in-the-middle", "80+ programming languages"},
			ContextWindow:  32000,
			CostPerMillion: 0.30,
			OpenSource:     true,
		},
		{
			ID:             "qwen-2.5-coder-32b",
			Name:           "Qwen 2.5 Coder 32B",
			Provider:       "Alibaba",
			Capabilities:   []domain.Modality{domain.ModalityCode},
			Strengths:      []string{"Code generation", "Code repair", "Open weights"},
			ContextWindow:  128000,
			CostPerMillion: 0.20,
			OpenSource:     true,
		},
		{
			ID:             "deepseek-v3",
			Name:           "DeepSeek V3",
			Provider:       "DeepSeek",
			Capabilities:   append([]domain.Modality(nil), textCode...),
			Strengths:      []string{"Reasoning", "Math", "Code generation", "Cost efficiency"},
			ContextWindow:  64000,
			CostPerMillion: 0.27,
			OpenSource:     true,
		},

		// Image generation
		{
			ID:             "stable-diffusion-3.5-large",
			Name:           "Stable Diffusion 3.5 Large",
			Provider:       "Stability AI",
			Capabilities:   []domain.Modality{domain.ModalityImage},
			Strengths:      []string{"Open weights", "Style control", "Fine-tunable"},
			ContextWindow:  256,
			CostPerMillion: 6.50,
			OpenSource:     true,
		},
		{
			ID:             "flux-1.1-pro",
			Name:           "FLUX1.1 [pro]",
			Provider:       "Black Forest Labs",
			Capabilities:   []domain.Modality{domain.ModalityImage},
			Strengths:      []string{"Photorealism", "Prompt adherence", "Fast generation"},
			ContextWindow:  512,
			CostPerMillion: 4.00,
		},
	}
}

// DefaultCatalog builds a Catalog from DefaultModels.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultModels())
	if err != nil {
		// The built-in models are covered by tests; failing here is a programming error.
		panic(err)
	}
	return c
}
