package slides

// Extractor pulls plain text out of a paginated slide document. A failed or
// empty extraction returns an error; the pipeline treats that as "no slides
// content", never as a job failure.
type Extractor interface {
	ExtractText(documentPath string) (string, error)
}
