package domain

import "fmt"

// Modality is the input/output medium a task requires.
type Modality string

// Valid modalities
const (
	ModalityText       Modality = "text"
	ModalityCode       Modality = "code"
	ModalityVision     Modality = "vision"
	ModalityAudio      Modality = "audio"
	ModalityImage      Modality = "image" // Image generation
	ModalityMultimodal Modality = "multimodal"
)

// Modalities returns every recognized modality in declaration order.
func Modalities() []Modality {
	return []Modality{
		ModalityText,
		ModalityCode,
		ModalityVision,
		ModalityAudio,
		ModalityImage,
		ModalityMultimodal,
	}
}

// NewModality creates a new Modality value object with validation
func NewModality(value string) (Modality, error) {
	m := Modality(value)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks if the modality is valid
func (m Modality) Validate() error {
	switch m {
	case ModalityText, ModalityCode, ModalityVision, ModalityAudio, ModalityImage, ModalityMultimodal:
		return nil
	default:
		return fmt.Errorf("invalid modality %q: must be text, code, vision, audio, image, or multimodal", string(m))
	}
}

// String returns the string representation
func (m Modality) String() string {
	return string(m)
}

// Label returns the human-facing name shown in the playground and CLI.
func (m Modality) Label() string {
	switch m {
	case ModalityText:
		return "Natural Language"
	case ModalityCode:
		return "Code"
	case ModalityVision:
		return "Vision"
	case ModalityAudio:
		return "Audio"
	case ModalityImage:
		return "Image Generation"
	case ModalityMultimodal:
		return "Multimodal"
	default:
		return string(m)
	}
}
