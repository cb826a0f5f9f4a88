package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultFileSize  = "1GB"
	DefaultChunkSize = "10MB"

	EnvOutput    = "LARGEFILE_OUTPUT"
	EnvSize      = "LARGEFILE_SIZE"
	EnvChunkSize = "LARGEFILE_CHUNK_SIZE"
)

// Config holds unparsed size specs; an empty Output means "derive from Size".
type Config struct {
	Output    string
	Size      string
	ChunkSize string
}

// Load reads an optional .env file at path into the process environment and
// returns the resulting configuration. A missing file is not an error;
// variables already set in the environment win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return Config{
		Output:    getEnv(EnvOutput, ""),
		Size:      getEnv(EnvSize, DefaultFileSize),
		ChunkSize: getEnv(EnvChunkSize, DefaultChunkSize),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
