package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/largefile/internal/ports"
)

func TestHumanSizeParser_Parse(t *testing.T) {
	var parser ports.SizeParser = NewHumanSizeParser()

	n, err := parser.Parse("1GB")
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000_000), n)

	n, err = parser.Parse("10MiB")
	require.NoError(t, err)
	require.Equal(t, int64(10<<20), n)

	_, err = parser.Parse("lots")
	require.Error(t, err)
}

func TestSizeParserFunc(t *testing.T) {
	var calledWith string
	parser := SizeParserFunc(func(spec string) (int64, error) {
		calledWith = spec
		if spec == "bad" {
			return 0, errors.New("bad spec")
		}
		return 42, nil
	})

	n, err := parser.Parse("anything")
	require.NoError(t, err)
	require.Equal(t, int64(42), n)
	require.Equal(t, "anything", calledWith)

	_, err = parser.Parse("bad")
	require.EqualError(t, err, "bad spec")
}
