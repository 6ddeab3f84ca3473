package synthesizer

import (
	"context"

	"lectureiq/internal/domain"
)

// Synthesizer turns a transcript (plus optional slide text) into study
// artifacts via an LLM backend. Each operation fails independently; callers
// decide what a missing artifact means.
type Synthesizer interface {
	// Configured reports whether a generation backend credential is present.
	Configured() bool
	Notes(ctx context.Context, transcript, slidesContent string) (string, error)
	Flashcards(ctx context.Context, transcript, slidesContent string, count int) ([]domain.Flashcard, error)
	Quiz(ctx context.Context, transcript, slidesContent string, count int) ([]domain.QuizItem, error)
}

// Generator is one LLM backend: a prompt in, a complete free-form text
// response out. No streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
