package normalizer

import (
	"encoding/json"
	"reflect"
	"testing"

	"lectureiq/internal/domain"
)

func TestToResponseStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.Status
		err        string
		wantStatus string
		wantError  string
	}{
		{"completed passes through", domain.StatusCompleted, "", "completed", ""},
		{"processing passes through", domain.StatusProcessing, "", "processing", ""},
		{"stage failure collapses to failed", domain.StatusAudioExtractionFailed, "", "failed", "audio_extraction_failed: "},
		{"generation failure keeps diagnostic", domain.StatusGenerationFailed, "Missing outputs: notes", "failed", "generation_failed: Missing outputs: notes"},
		{"synthetic status preserved", domain.Status("error: collaborator blew up"), "", "failed", "error: collaborator blew up: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &domain.ProcessingResult{Status: tt.status, Error: tt.err}
			resp := ToResponse("id-1", tt.status, result)

			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if tt.wantError == "" {
				if resp.Error != nil {
					t.Errorf("Error = %q, want nil", *resp.Error)
				}
			} else {
				if resp.Error == nil || *resp.Error != tt.wantError {
					t.Errorf("Error = %v, want %q", resp.Error, tt.wantError)
				}
			}
		})
	}
}

func TestToResponseMessages(t *testing.T) {
	completed := ToResponse("id", domain.StatusCompleted, &domain.ProcessingResult{})
	if completed.Message != "Lecture processed successfully" {
		t.Errorf("completed message = %q", completed.Message)
	}

	failed := ToResponse("id", domain.StatusTranscriptionFailed, &domain.ProcessingResult{})
	if failed.Message != "Processing completed with errors" {
		t.Errorf("failed message = %q", failed.Message)
	}
}

func TestToResponsePreservesPartialResults(t *testing.T) {
	result := &domain.ProcessingResult{
		Transcript: "the transcript",
		Status:     domain.StatusAPIKeyMissing,
	}

	resp := ToResponse("id", domain.StatusAPIKeyMissing, result)

	if resp.Status != "failed" {
		t.Errorf("Status = %q, want failed", resp.Status)
	}
	if resp.Transcript == nil || *resp.Transcript != "the transcript" {
		t.Error("transcript should be preserved on failure paths")
	}
	if resp.Notes != nil || resp.Flashcards != nil || resp.Quiz != nil {
		t.Error("artifacts for unreached stages must stay null")
	}
}

func TestNormalizeQuizLetterKeyed(t *testing.T) {
	items := []domain.QuizItem{
		{
			Question:      "Pick one",
			Options:       json.RawMessage(`{"A": "x", "B": "y", "C": "z", "D": "w"}`),
			CorrectAnswer: json.RawMessage(`"C"`),
			Explanation:   "because",
		},
	}

	got := NormalizeQuiz(items)
	want := []domain.QuizQuestion{
		{
			Question:      "Pick one",
			Options:       []string{"x", "y", "z", "w"},
			CorrectAnswer: 2,
			Explanation:   "because",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeQuiz() = %+v, want %+v", got, want)
	}
}

func TestNormalizeQuizIdempotent(t *testing.T) {
	items := []domain.QuizItem{
		{
			Question:      "Already normalized",
			Options:       json.RawMessage(`["a", "b", "c", "d"]`),
			CorrectAnswer: json.RawMessage(`1`),
			Explanation:   "e",
		},
	}

	got := NormalizeQuiz(items)
	if !reflect.DeepEqual(got[0].Options, []string{"a", "b", "c", "d"}) {
		t.Errorf("Options = %v, want unchanged array", got[0].Options)
	}
	if got[0].CorrectAnswer != 1 {
		t.Errorf("CorrectAnswer = %d, want 1", got[0].CorrectAnswer)
	}
}

func TestNormalizeQuizEdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		options    string
		correct    string
		wantIndex  int
		wantOption string // value expected at index 0
	}{
		{"unknown letter defaults to 0", `{"A": "x", "B": "y", "C": "z", "D": "w"}`, `"Z"`, 0, "x"},
		{"missing letter key yields empty slot", `{"A": "x", "C": "z", "D": "w"}`, `"A"`, 0, "x"},
		{"numeric answer with letter map defaults to 0", `{"A": "x"}`, `7`, 0, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []domain.QuizItem{{
				Question:      "q",
				Options:       json.RawMessage(tt.options),
				CorrectAnswer: json.RawMessage(tt.correct),
			}}
			got := NormalizeQuiz(items)
			if got[0].CorrectAnswer != tt.wantIndex {
				t.Errorf("CorrectAnswer = %d, want %d", got[0].CorrectAnswer, tt.wantIndex)
			}
			if len(got[0].Options) != 4 {
				t.Fatalf("len(Options) = %d, want 4", len(got[0].Options))
			}
			if got[0].Options[0] != tt.wantOption {
				t.Errorf("Options[0] = %q, want %q", got[0].Options[0], tt.wantOption)
			}
		})
	}
}

func TestNormalizeQuizNil(t *testing.T) {
	if got := NormalizeQuiz(nil); got != nil {
		t.Errorf("NormalizeQuiz(nil) = %v, want nil", got)
	}
}
