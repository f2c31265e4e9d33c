package report

import (
	"encoding/json"
	"io"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/aqbifzl/rscheck/pkg/checker"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Event kinds.
const (
	KindFile    = "file"
	KindTypo    = "typo"
	KindError   = "error"
	KindDone    = "done"
	KindSummary = "summary"
)

// FileEvent marks the start or the end of a file.
type FileEvent struct {
	Kind string `json:"kind" msgpack:"k"`
	Path string `json:"path" msgpack:"p"`
}

// TypoEvent carries one reported word.
type TypoEvent struct {
	Kind  string `json:"kind" msgpack:"k"`
	Path  string `json:"path" msgpack:"p"`
	Word  string `json:"word" msgpack:"w"`
	Token string `json:"token" msgpack:"t"`
	Line  int    `json:"line" msgpack:"l"`
}

// ErrorEvent carries a target that could not be read.
type ErrorEvent struct {
	Kind    string `json:"kind" msgpack:"k"`
	Path    string `json:"path" msgpack:"p"`
	Reason  string `json:"reason" msgpack:"r"`
	Message string `json:"message" msgpack:"m"`
}

// SummaryEvent closes the stream.
type SummaryEvent struct {
	Kind  string        `json:"kind" msgpack:"k"`
	Stats checker.Stats `json:"stats" msgpack:"s"`
}

type encoder interface {
	Encode(v any) error
}

// StreamReporter writes one record per event.
// The first write error is kept and later events are dropped.
type StreamReporter struct {
	enc encoder
	err error
}

// NewJSONReporter writes newline separated JSON records to w.
func NewJSONReporter(w io.Writer) *StreamReporter {
	return &StreamReporter{enc: json.NewEncoder(w)}
}

// NewMsgpackReporter writes a stream of msgpack maps to w.
func NewMsgpackReporter(w io.Writer) *StreamReporter {
	return &StreamReporter{enc: msgpack.NewEncoder(w)}
}

// Err returns the first write error, if any.
func (s *StreamReporter) Err() error {
	return s.err
}

func (s *StreamReporter) send(v any) {
	if s.err != nil {
		return
	}
	if err := s.enc.Encode(v); err != nil {
		log.Errorf("Writing report record: %v", err)
		s.err = err
	}
}

func (s *StreamReporter) FileStarted(path string) {
	s.send(FileEvent{Kind: KindFile, Path: path})
}

func (s *StreamReporter) Typo(t checker.Typo) {
	s.send(TypoEvent{
		Kind:  KindTypo,
		Path:  t.Path,
		Word:  t.Word,
		Token: t.Token,
		Line:  t.Line,
	})
}

func (s *StreamReporter) FileError(path string, err error) {
	s.send(ErrorEvent{
		Kind:    KindError,
		Path:    path,
		Reason:  utils.ClassifyError(err).String(),
		Message: err.Error(),
	})
}

func (s *StreamReporter) FileDone(path string) {
	s.send(FileEvent{Kind: KindDone, Path: path})
}

func (s *StreamReporter) Summary(stats checker.Stats) {
	s.send(SummaryEvent{Kind: KindSummary, Stats: stats})
}
