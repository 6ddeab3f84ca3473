package domain

import (
	"encoding/json"
	"time"
)

// Status tracks a lecture job through the processing pipeline. Besides the
// enumerated values a job can end up in a synthetic "error: <message>" status
// when something unexpected escapes a stage; Terminal treats every
// non-queued/non-processing value as final.
type Status string

const (
	StatusQueued                Status = "queued"
	StatusProcessing            Status = "processing"
	StatusAudioExtractionFailed Status = "audio_extraction_failed"
	StatusTranscriptionFailed   Status = "transcription_failed"
	StatusAPIKeyMissing         Status = "gemini_api_key_missing"
	StatusGenerationFailed      Status = "generation_failed"
	StatusCompleted             Status = "completed"
)

// Terminal reports whether no further stage will run for this status.
func (s Status) Terminal() bool {
	return s != StatusQueued && s != StatusProcessing
}

// Job is one submitted lecture and its mutable execution record. It is owned
// exclusively by the pipeline while running; pollers only ever see snapshots.
type Job struct {
	ID          string
	Title       string
	Status      Status
	StartedAt   time.Time
	CompletedAt time.Time // zero until the job reaches a terminal status
	VideoPath   string
	SlidesPath  string // empty when no slide deck was uploaded
	WorkDir     string // per-job scratch dir, removed on every exit path
	Result      *ProcessingResult
}

// ProcessingResult accumulates the output of one pipeline run. Fields for
// stages that were never reached keep their zero value.
type ProcessingResult struct {
	Transcript    string
	SlidesContent string
	Notes         string
	Flashcards    []Flashcard
	Quiz          []QuizItem
	Status        Status
	Error         string
}

// Flashcard is a single question/answer study card.
type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// QuizItem is a quiz question exactly as the generation backend produced it.
// The prompt asks for letter-keyed options ({"A": ..., "D": ...}) and a letter
// correct_answer, but models do not always obey, so both fields stay raw until
// normalization.
type QuizItem struct {
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
}

// QuizQuestion is the normalized external form: four ordered options and a
// zero-based answer index.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// UploadResponse is the wire contract returned to the frontend. Keys match
// what the web client reads from IndexedDB imports, so they stay snake_case.
type UploadResponse struct {
	LectureID  string         `json:"lecture_id"`
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	Transcript *string        `json:"transcript"`
	Notes      *string        `json:"notes"`
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
	Error      *string        `json:"error"`
}

// External status values exposed to callers.
const (
	ExternalProcessing = "processing"
	ExternalCompleted  = "completed"
	ExternalFailed     = "failed"
)
