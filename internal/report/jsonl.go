package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sourcescout/treescout/internal/rules"
)

// EncoderFunc converts a value of type T to JSON bytes.
type EncoderFunc[T any] func(T) ([]byte, error)

// JSONLEmitter writes one JSON object per line (JSONL).
type JSONLEmitter[T any] struct {
	outPath      string
	encode       EncoderFunc[T]
	addRunHeader bool
	runID        string
}

// NewJSONLEmitter creates a JSONLEmitter with a fixed output path.
// path == "" writes to stdout. If encode is nil, it falls back to
// json.Marshal. When addRunHeader is set, the first write is preceded by a
// comment line carrying a fresh run id and timestamp so appended runs stay
// distinguishable.
func NewJSONLEmitter[T any](outPath string, encode EncoderFunc[T], addRunHeader bool) *JSONLEmitter[T] {
	if encode == nil {
		encode = func(v T) ([]byte, error) { return json.Marshal(v) }
	}
	return &JSONLEmitter[T]{
		outPath:      outPath,
		encode:       encode,
		addRunHeader: addRunHeader,
		runID:        uuid.NewString(),
	}
}

// Emit writes a slice of records.
func (je *JSONLEmitter[T]) Emit(records []T) error {
	for _, rec := range records {
		if err := je.EmitOne(rec); err != nil {
			return err
		}
	}
	return nil
}

// EmitOne writes a single record.
func (je *JSONLEmitter[T]) EmitOne(record T) error {
	var f *os.File
	var err error

	if je.outPath == "" {
		f = os.Stdout
	} else {
		if _, statErr := os.Stat(je.outPath); statErr == nil {
			f, err = os.OpenFile(je.outPath, os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
		} else {
			f, err = os.Create(je.outPath)
			if err != nil {
				return err
			}
		}
	}
	if f != os.Stdout {
		defer f.Close()
	}

	w := bufio.NewWriter(f)
	defer w.Flush()

	if je.addRunHeader {
		header := fmt.Sprintf("# run %s at %s\n", je.runID, time.Now().Format(time.RFC3339))
		if _, err := w.Write([]byte(header)); err != nil {
			return err
		}
		je.addRunHeader = false
	}

	b, err := je.encode(record)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// JSONLSink adapts the generic emitter to the Sink interface.
type JSONLSink struct {
	emitter *JSONLEmitter[rules.Finding]
}

func NewJSONLSink(outPath string) *JSONLSink {
	return &JSONLSink{emitter: NewJSONLEmitter[rules.Finding](outPath, nil, true)}
}

func (s *JSONLSink) Write(findings []rules.Finding) error { return s.emitter.Emit(findings) }

func (s *JSONLSink) Close() error { return nil }
