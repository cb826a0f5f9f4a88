package ports

// ProgressReporter receives chunk-level progress from a FileGenerator.
type ProgressReporter interface {
	Start(total int64)
	Advance(done, total int64)
	Stop()
}

// SizeParser turns size specs such as "1GB" or "10MiB" into a byte count.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
