// Package normalizer maps the pipeline's internal status vocabulary and raw
// synthesizer output onto the stable contract promised to callers. Everything
// here is pure; no I/O.
package normalizer

import (
	"encoding/json"
	"fmt"

	"lectureiq/internal/domain"
)

const (
	messageSuccess    = "Lecture processed successfully"
	messageWithErrors = "Processing completed with errors"
	messageInProgress = "Processing in progress"
)

var letterIndex = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}

// ToResponse reshapes one finished (or in-flight) job record into the
// external response. Internal statuses outside the external enum collapse to
// "failed", with the original status folded into the error text so the
// diagnostic detail survives the 3-value enum.
func ToResponse(lectureID string, status domain.Status, result *domain.ProcessingResult) domain.UploadResponse {
	resp := domain.UploadResponse{
		LectureID: lectureID,
	}

	internalError := ""
	if result != nil {
		internalError = result.Error
	}

	switch status {
	case domain.StatusProcessing, domain.StatusQueued:
		resp.Status = domain.ExternalProcessing
		resp.Message = messageInProgress
	case domain.StatusCompleted:
		resp.Status = domain.ExternalCompleted
		resp.Message = messageSuccess
		resp.Error = optional(internalError)
	case domain.Status(domain.ExternalFailed):
		resp.Status = domain.ExternalFailed
		resp.Message = messageWithErrors
		resp.Error = optional(internalError)
	default:
		resp.Status = domain.ExternalFailed
		resp.Message = messageWithErrors
		diag := fmt.Sprintf("%s: %s", status, internalError)
		resp.Error = &diag
	}

	if result != nil {
		resp.Transcript = optional(result.Transcript)
		resp.Notes = optional(result.Notes)
		resp.Flashcards = result.Flashcards
		resp.Quiz = NormalizeQuiz(result.Quiz)
	}

	return resp
}

// NormalizeQuiz converts raw quiz items to the 4-option array contract.
// Letter-keyed options become an ordered array with the letter answer mapped
// to its index; entries already in array form pass through unchanged, so the
// function is idempotent on normalized input. Unknown or missing answer
// letters default to index 0.
func NormalizeQuiz(items []domain.QuizItem) []domain.QuizQuestion {
	if items == nil {
		return nil
	}

	questions := make([]domain.QuizQuestion, 0, len(items))
	for _, item := range items {
		questions = append(questions, normalizeItem(item))
	}
	return questions
}

func normalizeItem(item domain.QuizItem) domain.QuizQuestion {
	q := domain.QuizQuestion{
		Question:    item.Question,
		Explanation: item.Explanation,
	}

	var byLetter map[string]string
	if err := json.Unmarshal(item.Options, &byLetter); err == nil && byLetter != nil {
		q.Options = []string{byLetter["A"], byLetter["B"], byLetter["C"], byLetter["D"]}
		q.CorrectAnswer = letterToIndex(item.CorrectAnswer)
		return q
	}

	// already array-shaped
	if err := json.Unmarshal(item.Options, &q.Options); err != nil {
		q.Options = []string{"", "", "", ""}
	}

	var idx int
	if err := json.Unmarshal(item.CorrectAnswer, &idx); err == nil {
		q.CorrectAnswer = idx
	} else {
		q.CorrectAnswer = letterToIndex(item.CorrectAnswer)
	}
	return q
}

func letterToIndex(raw json.RawMessage) int {
	var letter string
	if err := json.Unmarshal(raw, &letter); err != nil {
		return 0
	}
	return letterIndex[letter]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
