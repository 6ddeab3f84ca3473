package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lectureiq/internal/domain"
	"lectureiq/internal/metrics"
)

// Run executes the full pipeline for one job: audio extraction, transcription,
// optional slide extraction, then the three synthesis calls. The job record is
// mutated through processing to exactly one terminal status; stages after a
// hard failure never run, and fields for unreached stages keep their zero
// values. The job's work dir is removed on every exit path.
func (p *implOrchestrator) Run(ctx context.Context, jobID string) {
	job, err := p.registry.Get(jobID)
	if err != nil {
		p.logger.Error(ctx, "Cannot run unknown job %s: %v", jobID, err)
		return
	}

	p.logger.Info(ctx, "Starting lecture processing: %s (%s)", job.Title, job.ID)
	start := time.Now()

	result := &domain.ProcessingResult{Status: domain.StatusProcessing}
	_ = p.registry.Update(jobID, func(j *domain.Job) {
		j.Status = domain.StatusProcessing
	})

	// Deferred blocks run last-declared-first: the recover converts a panic
	// into the synthetic error status, then cleanup removes the work dir,
	// then finish publishes the terminal record. finish must run last so it
	// sees whatever status the recover left behind.
	defer p.finish(ctx, jobID, result, start)
	defer p.cleanup(ctx, job.WorkDir)
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "Unexpected failure in job %s: %v", jobID, r)
			result.Status = domain.Status(fmt.Sprintf("error: %v", r))
		}
	}()

	p.process(ctx, &job, result)
}

func (p *implOrchestrator) process(ctx context.Context, job *domain.Job, result *domain.ProcessingResult) {
	// Stage 1: audio extraction. Hard stop on failure.
	audioPath := filepath.Join(job.WorkDir, "audio.wav")
	stageStart := time.Now()
	if err := p.media.ExtractAudio(ctx, job.VideoPath, audioPath); err != nil {
		p.logger.Error(ctx, "Audio extraction failed for %s: %v", job.ID, err)
		result.Status = domain.StatusAudioExtractionFailed
		return
	}
	metrics.ObserveStage("audio_extraction", time.Since(stageStart))

	// Stage 2: transcription. Hard stop on failure.
	stageStart = time.Now()
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		p.logger.Error(ctx, "Transcription failed for %s: %v", job.ID, err)
		result.Status = domain.StatusTranscriptionFailed
		return
	}
	result.Transcript = transcript
	metrics.ObserveStage("transcription", time.Since(stageStart))

	// Stage 3: slides are optional; failure only costs the slides content.
	if job.SlidesPath != "" {
		stageStart = time.Now()
		text, err := p.slides.ExtractText(job.SlidesPath)
		if err != nil {
			p.logger.Warn(ctx, "Slide extraction failed for %s, continuing without slides: %v", job.ID, err)
		} else {
			result.SlidesContent = text
			metrics.ObserveStage("slide_extraction", time.Since(stageStart))
		}
	}

	// The backend check sits after transcription on purpose: callers should
	// be able to recover the transcript even when synthesis is impossible.
	if !p.synth.Configured() {
		p.logger.Warn(ctx, "No generation backend configured, skipping synthesis for %s", job.ID)
		result.Status = domain.StatusAPIKeyMissing
		return
	}

	// Stage 4: always attempt all three generations, they fail independently.
	stageStart = time.Now()
	if notes, err := p.synth.Notes(ctx, transcript, result.SlidesContent); err == nil {
		result.Notes = notes
	}
	if cards, err := p.synth.Flashcards(ctx, transcript, result.SlidesContent, p.generation.FlashcardCount); err == nil {
		result.Flashcards = cards
	}
	if quiz, err := p.synth.Quiz(ctx, transcript, result.SlidesContent, p.generation.QuizCount); err == nil {
		result.Quiz = quiz
	}
	metrics.ObserveStage("synthesis", time.Since(stageStart))

	var missing []string
	if result.Notes == "" {
		missing = append(missing, "notes")
	}
	if len(result.Flashcards) == 0 {
		missing = append(missing, "flashcards")
	}
	if len(result.Quiz) == 0 {
		missing = append(missing, "quiz")
	}

	if len(missing) > 0 {
		result.Status = domain.StatusGenerationFailed
		result.Error = "Missing outputs: " + strings.Join(missing, ", ")
		return
	}

	result.Status = domain.StatusCompleted
	p.exportArtifacts(ctx, job, result)
}

// exportArtifacts writes DOCX copies of the finished notes and transcript.
// Best effort only; failures never alter the job outcome.
func (p *implOrchestrator) exportArtifacts(ctx context.Context, job *domain.Job, result *domain.ProcessingResult) {
	if p.exporter == nil || !p.export.Enabled {
		return
	}

	if err := os.MkdirAll(p.export.OutputDir, 0755); err != nil {
		p.logger.Warn(ctx, "Cannot create export dir: %v", err)
		return
	}

	notesPath := filepath.Join(p.export.OutputDir, job.ID+"_notes.docx")
	if err := p.exporter.Notes(job.Title, result.Notes, notesPath); err != nil {
		p.logger.Warn(ctx, "Notes export failed for %s: %v", job.ID, err)
	}

	transcriptPath := filepath.Join(p.export.OutputDir, job.ID+"_transcript.docx")
	if err := p.exporter.Transcript(job.Title, result.Transcript, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Transcript export failed for %s: %v", job.ID, err)
	}
}

// finish publishes the terminal result on the job record.
func (p *implOrchestrator) finish(ctx context.Context, jobID string, result *domain.ProcessingResult, start time.Time) {
	if !result.Status.Terminal() {
		// process() returned without deciding; treat as an unmodeled failure
		result.Status = domain.Status("error: pipeline exited without a terminal status")
	}

	_ = p.registry.Update(jobID, func(j *domain.Job) {
		j.Status = result.Status
		j.Result = result
		j.CompletedAt = time.Now()
	})

	metrics.RecordJob(string(result.Status))
	p.logger.Info(ctx, "Job %s finished with status %q in %s", jobID, result.Status, time.Since(start))
}

// cleanup removes the per-job scratch directory. A cleanup failure is logged
// and never masks the job result.
func (p *implOrchestrator) cleanup(ctx context.Context, workDir string) {
	if workDir == "" {
		return
	}
	if err := os.RemoveAll(workDir); err != nil {
		p.logger.Warn(ctx, "Failed to clean up %s: %v", workDir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up work dir: %s", workDir)
	}
}
