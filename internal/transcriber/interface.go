package transcriber

import "context"

// Transcriber converts a PCM WAV file into plain transcript text. An empty
// transcript is a failure, not a valid result.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
