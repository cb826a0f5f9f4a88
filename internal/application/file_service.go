package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hailam/largefile/internal/ports"
	"github.com/hailam/largefile/internal/utils"
)

// Compiled-in defaults for the zero-argument run.
const (
	DefaultFileSize  int64 = 1_000_000_000
	DefaultChunkSize int64 = 10_000_000
)

// Result summarises one generated file.
type Result struct {
	Path       string
	Requested  int64
	Written    int64
	Iterations int64
	Dropped    int64 // requested bytes lost to integer division
}

// FileService orchestrates file generation by parsing sizes, resolving the
// output path, and invoking the generator.
type FileService struct {
	generator ports.FileGenerator
	parser    ports.SizeParser
	progress  ports.ProgressReporter
	logger    *slog.Logger
}

// NewFileService constructs a FileService. progress may be nil.
func NewFileService(generator ports.FileGenerator, parser ports.SizeParser, progress ports.ProgressReporter, logger *slog.Logger) *FileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileService{generator: generator, parser: parser, progress: progress, logger: logger}
}

// DefaultOutputPath names the file after its size in whole gigabytes,
// e.g. ./large_file_1_gb.txt.
func DefaultOutputPath(fileSize int64) string {
	return fmt.Sprintf("./large_file_%d_gb.txt", fileSize/1_000_000_000)
}

// CreateFile generates a file at outPath of size sizeSpec (e.g. "1GB"),
// written in chunks of chunkSpec. An empty outPath uses DefaultOutputPath.
func (s *FileService) CreateFile(outPath, sizeSpec, chunkSpec string) (Result, error) {
	fileSize, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return Result{}, fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}
	chunkSize, err := s.parser.Parse(chunkSpec)
	if err != nil {
		return Result{}, fmt.Errorf("invalid chunk size '%s': %w", chunkSpec, err)
	}
	return s.Generate(ports.FileSpec{OutputPath: outPath, FileSize: fileSize, ChunkSize: chunkSize})
}

// Generate runs the generator for an already parsed spec.
func (s *FileService) Generate(spec ports.FileSpec) (Result, error) {
	if spec.OutputPath == "" {
		spec.OutputPath = DefaultOutputPath(spec.FileSize)
	}
	if err := spec.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid file spec: %w", err)
	}

	logger := s.logger.With("path", spec.OutputPath)
	if r := spec.Remainder(); r > 0 {
		logger.Warn("size is not a multiple of chunk size, remainder dropped",
			"requested", spec.FileSize, "chunk", spec.ChunkSize, "dropped", r)
	}
	logger.Debug("generating",
		"size", utils.FormatSize(spec.ExpectedSize()), "chunks", spec.Iterations())

	start := time.Now()
	written, err := s.generator.Generate(spec, &chunkLogger{next: s.progress, logger: logger})
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate %s: %w", spec.OutputPath, err)
	}
	logger.Info("file written", "bytes", written, "elapsed", time.Since(start).Round(time.Millisecond))

	return Result{
		Path:       spec.OutputPath,
		Requested:  spec.FileSize,
		Written:    written,
		Iterations: spec.Iterations(),
		Dropped:    spec.Remainder(),
	}, nil
}
