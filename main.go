package main

import (
	"fmt"
	"os"

	"github.com/hailam/largefile/internal/adapters/txt"
	adapterutils "github.com/hailam/largefile/internal/adapters/utils"
	"github.com/hailam/largefile/internal/application"
	"github.com/hailam/largefile/internal/logutils"
	"github.com/hailam/largefile/internal/ports"
)

// Writes ./large_file_1_gb.txt with the compiled-in sizes. See cmd/cli for flags.
func main() {
	service := application.NewFileService(
		txt.New(),
		adapterutils.NewHumanSizeParser(),
		nil,
		logutils.New(os.Stderr, false),
	)
	result, err := service.Generate(defaultSpec())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d bytes)\n", result.Path, result.Written)
}

// defaultSpec is the compiled-in run: 1 GB in 10 MB chunks to ./large_file_1_gb.txt.
func defaultSpec() ports.FileSpec {
	return ports.FileSpec{
		OutputPath: application.DefaultOutputPath(application.DefaultFileSize),
		FileSize:   application.DefaultFileSize,
		ChunkSize:  application.DefaultChunkSize,
	}
}
