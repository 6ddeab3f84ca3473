package config

import "fmt"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	Watch      WatchConfig      `yaml:"watch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
	// Async defers pipeline execution to a background goroutine; the upload
	// response then carries a processing snapshot instead of the full result.
	Async bool `yaml:"async"`
}

type StorageConfig struct {
	UploadDir string `yaml:"upload_dir"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type GenerationConfig struct {
	FlashcardCount int `yaml:"flashcard_count"`
	QuizCount      int `yaml:"quiz_count"`
	// Prefix budgets applied before transcript/slide text is embedded in a
	// quiz prompt. Cost control, not correctness.
	TranscriptCharLimit int `yaml:"transcript_char_limit"`
	SlidesCharLimit     int `yaml:"slides_char_limit"`
}

type ExportConfig struct {
	Enabled   bool   `yaml:"enabled"`
	OutputDir string `yaml:"output_dir"`
}

type WatchConfig struct {
	Enabled       bool   `yaml:"enabled"`
	InputDir      string `yaml:"input_dir"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Watch.Enabled && c.Watch.InputDir == "" {
		return fmt.Errorf("watch.input_dir is required when watch is enabled")
	}

	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "storage/uploads"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.Export.Enabled && c.Export.OutputDir == "" {
		c.Export.OutputDir = "storage/exports"
	}
	if c.Generation.FlashcardCount == 0 {
		c.Generation.FlashcardCount = 10
	}
	if c.Generation.QuizCount == 0 {
		c.Generation.QuizCount = 10
	}
	if c.Generation.TranscriptCharLimit == 0 {
		c.Generation.TranscriptCharLimit = 3000
	}
	if c.Generation.SlidesCharLimit == 0 {
		c.Generation.SlidesCharLimit = 1000
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
