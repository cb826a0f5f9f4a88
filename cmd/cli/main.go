package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/largefile/internal/adapters/progress"
	"github.com/hailam/largefile/internal/adapters/txt"
	adapterutils "github.com/hailam/largefile/internal/adapters/utils"
	"github.com/hailam/largefile/internal/application"
	"github.com/hailam/largefile/internal/config"
	"github.com/hailam/largefile/internal/logutils"
	"github.com/hailam/largefile/internal/ports"
	"github.com/hailam/largefile/internal/utils"
)

type options struct {
	output    string
	size      string
	chunkSize string
	envFile   string
	quiet     bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code. Errors are
// printed here once, since the command silences cobra's own reporting.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "largefile",
		Short: "Writes a large file of random alphanumeric text.",
		Long: `largefile fills a file with characters drawn uniformly from A-Z, a-z and 0-9,
generated and written one fixed-size chunk at a time.

Only whole chunks are written: when --size is not a multiple of --chunk-size
the remainder is dropped, and a chunk larger than the file yields an empty file.

Defaults may also come from LARGEFILE_OUTPUT, LARGEFILE_SIZE and
LARGEFILE_CHUNK_SIZE, read from the environment or the --env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			// Flags set on the command line win over env and .env values.
			if cmd.Flags().Changed("output") {
				cfg.Output = opts.output
			}
			if cmd.Flags().Changed("size") {
				cfg.Size = opts.size
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.ChunkSize = opts.chunkSize
			}

			var reporter ports.ProgressReporter = progress.NewSpinner(stderr)
			if opts.quiet {
				reporter = progress.Noop()
			}

			// --- Composition Root ---
			fileService := application.NewFileService(
				txt.New(),
				adapterutils.NewHumanSizeParser(),
				reporter,
				logutils.New(stderr, opts.verbose),
			)

			result, err := fileService.CreateFile(cfg.Output, cfg.Size, cfg.ChunkSize)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Successfully generated %s (%s, %d chunks)\n",
				result.Path, utils.FormatSize(result.Written), result.Iterations)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path to the output file (default ./large_file_<N>_gb.txt)")
	cmd.Flags().StringVarP(&opts.size, "size", "s", config.DefaultFileSize, "Total size (e.g., 100, 500KB, 1GB, 2GiB)")
	cmd.Flags().StringVarP(&opts.chunkSize, "chunk-size", "c", config.DefaultChunkSize, "Bytes generated and written per chunk")
	cmd.Flags().StringVar(&opts.envFile, "env", ".env", "Optional dotenv file with LARGEFILE_* defaults")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Disable the progress spinner")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
