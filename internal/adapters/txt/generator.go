package txt

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hailam/largefile/internal/ports"
	"github.com/hailam/largefile/internal/utils"
)

// AlphanumericGenerator writes files made of whole chunks of random
// alphanumeric text. A trailing partial chunk is never written.
type AlphanumericGenerator struct {
	rng *rand.Rand
}

func New() ports.FileGenerator {
	return &AlphanumericGenerator{rng: utils.NewRand()}
}

func (g *AlphanumericGenerator) Generate(spec ports.FileSpec, progress ports.ProgressReporter) (written int64, err error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", spec.OutputPath, cerr)
		}
	}()

	n := spec.Iterations()
	if progress != nil {
		progress.Start(n)
		defer progress.Stop()
	}

	// One buffer, refilled completely before every write.
	var buf []byte
	if n > 0 {
		buf = make([]byte, spec.ChunkSize)
	}
	for i := int64(0); i < n; i++ {
		utils.FillAlphanumeric(g.rng, buf)
		m, err := f.Write(buf)
		written += int64(m)
		if err != nil {
			return written, fmt.Errorf("write chunk %d/%d: %w", i+1, n, err)
		}
		if progress != nil {
			progress.Advance(i+1, n)
		}
	}
	if err := f.Sync(); err != nil {
		return written, fmt.Errorf("sync %s: %w", spec.OutputPath, err)
	}
	return written, nil
}
