package domain

import "io"

// Extractor turns a raw dish description into a fully shaped record.
// Implementations must be safe for concurrent use and must only fail with
// ErrNotText.
type Extractor interface {
	Extract(payload []byte) (*DishAnalysis, error)
}

// ResultStore keeps parsed results in memory. Implementations must be safe
// for concurrent access.
type ResultStore interface {
	Save(result *Result) error
	Load(source string) (*Result, error)
	Delete(source string) error
	List() ([]*Result, error)
}

// Renderer writes a record in some output format.
type Renderer interface {
	Render(w io.Writer, analysis *DishAnalysis) error
}
