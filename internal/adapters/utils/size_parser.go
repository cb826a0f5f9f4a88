package utils

import (
	"github.com/hailam/largefile/internal/ports"
	"github.com/hailam/largefile/internal/utils"
)

// SizeParserFunc lets an ordinary function serve as a ports.SizeParser.
type SizeParserFunc func(spec string) (int64, error)

func (f SizeParserFunc) Parse(spec string) (int64, error) {
	return f(spec)
}

// NewHumanSizeParser accepts SI ("1GB"), IEC ("10MiB") and plain byte counts.
func NewHumanSizeParser() ports.SizeParser {
	return SizeParserFunc(utils.ParseSize)
}
