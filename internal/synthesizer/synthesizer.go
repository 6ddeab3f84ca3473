package synthesizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lectureiq/internal/domain"
)

// Configured reports whether a generation backend was wired at construction.
func (s *implSynthesizer) Configured() bool {
	return s.gen != nil
}

// Notes generates markdown study notes. The response is a scalar text
// document; no JSON extraction applies.
func (s *implSynthesizer) Notes(ctx context.Context, transcript, slidesContent string) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("no generation backend configured")
	}

	s.logger.Info(ctx, "Generating notes")
	response, err := s.gen.Generate(ctx, notesPrompt(transcript, slidesContent))
	if err != nil {
		s.logger.Error(ctx, "Notes generation failed: %v", err)
		return "", fmt.Errorf("generate notes: %w", err)
	}

	notes := strings.TrimSpace(response)
	if notes == "" {
		s.logger.Error(ctx, "Notes generation returned empty text")
		return "", fmt.Errorf("empty notes response")
	}

	s.logger.Info(ctx, "Notes generated: %d characters", len(notes))
	return notes, nil
}

// Flashcards generates count study cards and parses them out of the model's
// loosely-bounded JSON response.
func (s *implSynthesizer) Flashcards(ctx context.Context, transcript, slidesContent string, count int) ([]domain.Flashcard, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("no generation backend configured")
	}

	s.logger.Info(ctx, "Generating %d flashcards", count)
	response, err := s.gen.Generate(ctx, flashcardsPrompt(transcript, slidesContent, count))
	if err != nil {
		s.logger.Error(ctx, "Flashcard generation failed: %v", err)
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		s.logger.Error(ctx, "Flashcard generation returned empty response")
		return nil, fmt.Errorf("empty flashcard response")
	}

	raw, err := extractJSONArray(response)
	if err != nil {
		s.logger.Error(ctx, "Flashcard response had no JSON array: %v", err)
		return nil, err
	}

	var cards []domain.Flashcard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		s.logger.Error(ctx, "Failed to parse flashcard JSON: %v", err)
		return nil, fmt.Errorf("parse flashcards: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("flashcard response parsed to an empty list")
	}

	s.logger.Info(ctx, "Generated %d flashcards", len(cards))
	return cards, nil
}

// Quiz generates count multiple-choice questions. The prompt demands
// letter-keyed options but the parser does not trust the model to obey;
// options and correct_answer stay raw for the normalizer to reshape.
func (s *implSynthesizer) Quiz(ctx context.Context, transcript, slidesContent string, count int) ([]domain.QuizItem, error) {
	if s.gen == nil {
		return nil, fmt.Errorf("no generation backend configured")
	}

	s.logger.Info(ctx, "Generating %d quiz questions", count)
	response, err := s.gen.Generate(ctx, quizPrompt(transcript, slidesContent, count, s.transcriptLimit, s.slidesLimit))
	if err != nil {
		s.logger.Error(ctx, "Quiz generation failed: %v", err)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		s.logger.Error(ctx, "Quiz generation returned empty response")
		return nil, fmt.Errorf("empty quiz response")
	}

	raw, err := extractJSONArray(response)
	if err != nil {
		s.logger.Error(ctx, "Quiz response had no JSON array: %v", err)
		return nil, err
	}

	var questions []domain.QuizItem
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		s.logger.Error(ctx, "Failed to parse quiz JSON: %v", err)
		return nil, fmt.Errorf("parse quiz: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz response parsed to an empty list")
	}

	s.logger.Info(ctx, "Generated %d quiz questions", len(questions))
	return questions, nil
}
