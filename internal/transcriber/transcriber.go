package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
	reSrtIndex = regexp.MustCompile(`^\d+$`)
)

// Transcribe decodes the audio file, normalizes it to 16kHz mono, runs the
// whisper binary over it and returns the concatenated transcript text.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	samples, rate, err := loadWAV(audioPath)
	if err != nil {
		return "", fmt.Errorf("load audio: %w", err)
	}

	t.logger.Info(ctx, "Audio loaded: %d samples at %d Hz", len(samples), rate)

	if rate != targetSampleRate {
		t.logger.Info(ctx, "Resampling %d Hz -> %d Hz", rate, targetSampleRate)
		samples = resample(samples, rate, targetSampleRate)
	}

	normalizedPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_norm.wav"
	if err := writeWAV(normalizedPath, samples); err != nil {
		return "", fmt.Errorf("write normalized audio: %w", err)
	}
	defer t.removeQuiet(ctx, normalizedPath)

	text, err := t.runWhisper(ctx, normalizedPath)
	if err != nil {
		return "", err
	}

	if text == "" {
		return "", fmt.Errorf("transcription returned empty text")
	}

	t.logger.Info(ctx, "Transcription complete: %d characters", len(text))
	return text, nil
}

// runWhisper invokes whisper.cpp with SRT output, then flattens the subtitle
// segments into plain text.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Threads, audioPath)

	// -l forces the target language to prevent hallucinated language switches.
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	defer t.removeQuiet(ctx, srtPath)

	content, err := os.ReadFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	return joinSegments(string(content)), nil
}

// joinSegments strips SRT sequence numbers, timestamps and blank lines,
// joining the remaining text spans with single spaces.
func joinSegments(srt string) string {
	var segments []string
	for _, line := range strings.Split(srt, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		segments = append(segments, trimmed)
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func (t *implTranscriber) removeQuiet(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}
