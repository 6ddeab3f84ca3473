package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lectureiq/internal/logger"
)

// fakeExecutor records the invoked command and optionally writes the output
// file the way ffmpeg would.
type fakeExecutor struct {
	name      string
	args      []string
	err       error
	writeFile bool
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	if f.writeFile {
		// output path is the last argument
		if err := os.WriteFile(args[len(args)-1], []byte("RIFFdata"), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{writeFile: true}
	e := New(exec, logger.New("error"))

	audioPath := filepath.Join(t.TempDir(), "audio.wav")
	if err := e.ExtractAudio(context.Background(), "lecture.mp4", audioPath); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}

	if exec.name != "ffmpeg" {
		t.Errorf("command = %q, want ffmpeg", exec.name)
	}

	want := map[string]string{"-ar": "16000", "-ac": "1", "-c:a": "pcm_s16le"}
	for i := 0; i < len(exec.args)-1; i++ {
		if v, ok := want[exec.args[i]]; ok {
			if exec.args[i+1] != v {
				t.Errorf("arg %s = %q, want %q", exec.args[i], exec.args[i+1], v)
			}
			delete(want, exec.args[i])
		}
	}
	for flag := range want {
		t.Errorf("missing ffmpeg arg %s", flag)
	}
}

func TestExtractAudioCommandFails(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("no audio stream")}
	e := New(exec, logger.New("error"))

	audioPath := filepath.Join(t.TempDir(), "audio.wav")
	if err := e.ExtractAudio(context.Background(), "lecture.mp4", audioPath); err == nil {
		t.Fatal("ExtractAudio() should fail when ffmpeg fails")
	}
}

func TestExtractAudioNoOutput(t *testing.T) {
	exec := &fakeExecutor{writeFile: false}
	e := New(exec, logger.New("error"))

	audioPath := filepath.Join(t.TempDir(), "audio.wav")
	if err := e.ExtractAudio(context.Background(), "lecture.mp4", audioPath); err == nil {
		t.Fatal("ExtractAudio() should fail when no output file was produced")
	}
}
