package pipeline

import (
	"lectureiq/internal/config"
	"lectureiq/internal/exporter"
	"lectureiq/internal/jobs"
	"lectureiq/internal/logger"
	"lectureiq/internal/media"
	"lectureiq/internal/slides"
	"lectureiq/internal/synthesizer"
	"lectureiq/internal/transcriber"
)

// Deps bundles the stage collaborators and supporting services.
type Deps struct {
	Registry    *jobs.Registry
	Media       media.Extractor
	Transcriber transcriber.Transcriber
	Slides      slides.Extractor
	Synthesizer synthesizer.Synthesizer
	Exporter    exporter.Exporter // optional; nil disables DOCX export
	Logger      logger.Logger
}

type implOrchestrator struct {
	registry    *jobs.Registry
	media       media.Extractor
	transcriber transcriber.Transcriber
	slides      slides.Extractor
	synth       synthesizer.Synthesizer
	exporter    exporter.Exporter
	generation  config.GenerationConfig
	export      config.ExportConfig
	logger      logger.Logger
}

// New creates an Orchestrator.
func New(deps Deps, generation config.GenerationConfig, export config.ExportConfig) Orchestrator {
	return &implOrchestrator{
		registry:    deps.Registry,
		media:       deps.Media,
		transcriber: deps.Transcriber,
		slides:      deps.Slides,
		synth:       deps.Synthesizer,
		exporter:    deps.Exporter,
		generation:  generation,
		export:      export,
		logger:      deps.Logger,
	}
}
