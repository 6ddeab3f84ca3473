package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/ggml-base.bin",
				},
			},
			wantErr: false,
		},
		{
			name: "missing whisper binary",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/ggml-base.bin",
				},
			},
			wantErr: true,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
				},
			},
			wantErr: true,
		},
		{
			name: "watch enabled without input dir",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/ggml-base.bin",
				},
				Watch: WatchConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper",
			ModelPath:  "models/ggml-base.bin",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Whisper.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Whisper.Language, "en")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Generation.QuizCount != 10 {
		t.Errorf("QuizCount = %d, want 10", cfg.Generation.QuizCount)
	}
	if cfg.Generation.TranscriptCharLimit != 3000 {
		t.Errorf("TranscriptCharLimit = %d, want 3000", cfg.Generation.TranscriptCharLimit)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  port: 9000

whisper:
  binary_path: "./whisper"
  model_path: "models/ggml-base.bin"
  language: "en"

gemini:
  api_keys: ["key-a", "key-b"]

generation:
  quiz_count: 5
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
	if cfg.Generation.QuizCount != 5 {
		t.Errorf("QuizCount = %d, want 5", cfg.Generation.QuizCount)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-a, env-b")
	t.Setenv("OPENAI_API_KEY", "env-openai")

	cfg := &Config{Gemini: GeminiConfig{APIKeys: []string{"file-key"}}}
	applyEnv(cfg)

	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "env-a" || cfg.Gemini.APIKeys[1] != "env-b" {
		t.Errorf("APIKeys = %v, want [env-a env-b]", cfg.Gemini.APIKeys)
	}
	if cfg.OpenAI.APIKey != "env-openai" {
		t.Errorf("OpenAI.APIKey = %q, want env-openai", cfg.OpenAI.APIKey)
	}
}
