package media

import "context"

// Extractor pulls the audio track out of a video container and writes it as a
// 16kHz mono PCM WAV file. Any failure (no audio track, unreadable container,
// codec error) comes back as an error; nothing is written on failure paths
// beyond whatever ffmpeg left behind.
type Extractor interface {
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
}
