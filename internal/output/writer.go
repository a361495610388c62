package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/errors"
)

// GameWriter is the interface for writing game records to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single record to the output.
	WriteGame(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured format.
func NewGameWriter(cfg config.OutputConfig, w io.Writer) (GameWriter, error) {
	switch strings.ToLower(cfg.Format) {
	case config.OutputText, "":
		return NewTextWriter(w, cfg.MaxLineLength), nil
	case config.OutputJSON:
		if cfg.JSONArray {
			return NewJSONWriter(w, cfg.IncludeFEN), nil
		}
		return NewJSONWriterSingle(w, cfg.IncludeFEN), nil
	case config.OutputNone:
		return discardWriter{}, nil
	default:
		return nil, fmt.Errorf("output format %q: %w", cfg.Format, errors.ErrInvalidConfig)
	}
}

// TextWriter writes records as tag pairs and a move list.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// WriteGame writes a record in text format.
func (tw *TextWriter) WriteGame(rec *Record) error {
	WriteText(tw.w, rec, tw.maxLineLength)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w          io.Writer
	includeFEN bool
	games      []*JSONGame
	single     bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer, includeFEN bool) *JSONWriter {
	return &JSONWriter{
		w:          w,
		includeFEN: includeFEN,
		games:      make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, includeFEN bool) *JSONWriter {
	return &JSONWriter{
		w:          w,
		includeFEN: includeFEN,
		single:     true,
	}
}

// WriteGame buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *Record) error {
	jsonGame := RecordToJSON(rec, jw.includeFEN)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonGame)
	}

	// Converted now: the game may keep changing after it is handed over.
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// discardWriter drops every record, for runs that only want the summary.
type discardWriter struct{}

func (discardWriter) WriteGame(*Record) error { return nil }
func (discardWriter) Flush() error            { return nil }
func (discardWriter) Close() error            { return nil }
