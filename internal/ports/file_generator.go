package ports

import "errors"

// MaxChunkSize caps the working buffer a generator may allocate for one chunk.
const MaxChunkSize int64 = 256 << 20

var (
	ErrEmptyOutputPath  = errors.New("output path is empty")
	ErrInvalidFileSize  = errors.New("file size must not be negative")
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")
	ErrChunkTooLarge    = errors.New("chunk size exceeds maximum")
)

// FileSpec describes one file to generate.
type FileSpec struct {
	OutputPath string
	FileSize   int64 // bytes requested
	ChunkSize  int64 // bytes generated and written per iteration
}

// Iterations is the number of whole chunks that fit in FileSize.
func (s FileSpec) Iterations() int64 {
	if s.ChunkSize <= 0 {
		return 0
	}
	return s.FileSize / s.ChunkSize
}

// ExpectedSize is the length of the file once every iteration has been written.
// It is smaller than FileSize whenever FileSize is not a multiple of ChunkSize.
func (s FileSpec) ExpectedSize() int64 {
	return s.Iterations() * s.ChunkSize
}

// Remainder is the number of requested bytes that are not written.
func (s FileSpec) Remainder() int64 {
	return s.FileSize - s.ExpectedSize()
}

// Validate reports whether the spec can be generated.
func (s FileSpec) Validate() error {
	switch {
	case s.OutputPath == "":
		return ErrEmptyOutputPath
	case s.FileSize < 0:
		return ErrInvalidFileSize
	case s.ChunkSize <= 0:
		return ErrInvalidChunkSize
	case s.ChunkSize > MaxChunkSize:
		return ErrChunkTooLarge
	}
	return nil
}

// FileGenerator is the port for anything that can produce a file.
type FileGenerator interface {
	// Generate writes spec.OutputPath in chunks and returns the bytes written.
	// progress may be nil.
	Generate(spec FileSpec, progress ProgressReporter) (int64, error)
}
