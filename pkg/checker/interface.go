package checker

// Typo is one unknown word found in a checked file.
type Typo struct {
	Path string
	// Word is the decomposed, lowercased word that failed the lookup
	Word string
	// Token is the identifier Word was split from
	Token string
	// Line is zero-based
	Line int
}

// Reporter receives the events of a checking run, in order.
type Reporter interface {
	// FileStarted is called before a file is read
	FileStarted(path string)

	// Typo is called for each reported word
	Typo(typo Typo)

	// FileError is called when a target cannot be read; the run continues
	FileError(path string, err error)

	// FileDone is called after FileStarted, whether or not the file failed
	FileDone(path string)

	// Summary is called once at the end of a completed run
	Summary(stats Stats)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) FileStarted(string)      {}
func (NopReporter) Typo(Typo)               {}
func (NopReporter) FileError(string, error) {}
func (NopReporter) FileDone(string)         {}
func (NopReporter) Summary(Stats)           {}
