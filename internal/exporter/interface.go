package exporter

// Exporter writes finished study artifacts to DOCX files for offline use.
type Exporter interface {
	Notes(title, markdown, outputPath string) error
	Transcript(title, text, outputPath string) error
}
