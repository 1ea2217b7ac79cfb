package domain

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestNewModality(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Modality
		wantErr bool
	}{
		{name: "text", value: "text", want: ModalityText},
		{name: "code", value: "code", want: ModalityCode},
		{name: "vision", value: "vision", want: ModalityVision},
		{name: "audio", value: "audio", want: ModalityAudio},
		{name: "image", value: "image", want: ModalityImage},
		{name: "multimodal", value: "multimodal", want: ModalityMultimodal},
		{name: "wrong case", value: "Text", wantErr: true},
		{name: "trailing space", value: "code ", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "unknown", value: "video", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewModality(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewModality() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NewModality() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestModality_UnknownValuesFail checks that nothing outside the declared set is coerced.
func TestModality_UnknownValuesFail(t *testing.T) {
	known := make(map[string]bool)
	for _, m := range Modalities() {
		known[string(m)] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		value := rapid.StringMatching(`[A-Za-z ]{0,12}`).Filter(func(s string) bool {
			return !known[s]
		}).Draw(t, "value")

		_, err := NewModality(value)
		if err == nil {
			t.Fatalf("modality %q should fail validation", value)
		}
		if !strings.Contains(err.Error(), "must be text, code") {
			t.Errorf("error should list valid values: %v", err)
		}
	})
}

func TestModalityLabels(t *testing.T) {
	if got := ModalityImage.Label(); got != "Image Generation" {
		t.Errorf("ModalityImage.Label() = %q, want %q", got, "Image Generation")
	}
	if got := Modality("other").Label(); got != "other" {
		t.Errorf("unknown Label() = %q, want passthrough", got)
	}
}
