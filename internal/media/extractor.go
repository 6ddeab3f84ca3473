package media

import (
	"context"
	"fmt"
	"os"

	"lectureiq/internal/logger"
	"lectureiq/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor backed by the ffmpeg binary.
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}

// ExtractAudio converts the video's audio track to 16kHz mono 16-bit PCM.
// This is the format the transcription model expects.
func (e *implExtractor) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	e.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	// -vn: drop video
	// -ar 16000: 16kHz sample rate
	// -ac 1: mono
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	// ffmpeg can exit zero without producing output when the container has no
	// audio stream and a partial arg set is tolerated; verify the file exists.
	if info, err := os.Stat(audioPath); err != nil || info.Size() == 0 {
		return fmt.Errorf("ffmpeg produced no audio output for %s", videoPath)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return nil
}
