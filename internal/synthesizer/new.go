package synthesizer

import (
	"lectureiq/internal/config"
	"lectureiq/internal/logger"
)

type implSynthesizer struct {
	gen             Generator
	transcriptLimit int
	slidesLimit     int
	logger          logger.Logger
}

// New selects a generation backend from config: Gemini when API keys are
// present, otherwise an OpenAI-compatible endpoint, otherwise none (the
// synthesizer then reports itself unconfigured).
func New(cfg *config.Config, log logger.Logger) Synthesizer {
	var gen Generator
	switch {
	case len(cfg.Gemini.APIKeys) > 0:
		gen = newGeminiGenerator(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	case cfg.OpenAI.APIKey != "":
		gen = newOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	}

	return &implSynthesizer{
		gen:             gen,
		transcriptLimit: cfg.Generation.TranscriptCharLimit,
		slidesLimit:     cfg.Generation.SlidesCharLimit,
		logger:          log,
	}
}

// NewWithGenerator wires an explicit backend.
func NewWithGenerator(gen Generator, transcriptLimit, slidesLimit int, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		gen:             gen,
		transcriptLimit: transcriptLimit,
		slidesLimit:     slidesLimit,
		logger:          log,
	}
}
