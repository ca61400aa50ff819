// Package trace records a compact per-generation log of a simulation:
// the number of agents playing each strategy and the total score.
// A trace is an output log for analysis; it cannot be used to resume a run.
package trace

import (
	"encoding/gob"
	"io"

	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/rpsnet/strategy"
)

// Record summarizes the population after one generation.
type Record struct {
	Generation int
	Counts     strategy.Counts
	TotalScore int64
	NumChanged int
}

// Writer appends gob-encoded Records to a gzip stream.
type Writer struct {
	gz  *gzip.Writer
	enc *gob.Encoder
	n   int
}

// NewWriter starts a trace written to w. The caller must Close the
// Writer to flush the stream, and remains responsible for closing w.
func NewWriter(w io.Writer) *Writer {
	gz := gzip.NewWriter(w)
	return &Writer{
		gz:  gz,
		enc: gob.NewEncoder(gz),
	}
}

// Write appends one Record.
func (w *Writer) Write(r Record) error {
	if err := w.enc.Encode(&r); err != nil {
		return errors.Wrapf(err, "writing record for generation %d", r.Generation)
	}

	w.n++
	return nil
}

// Len returns the number of Records written.
func (w *Writer) Len() int {
	return w.n
}

// Close flushes the compressed stream.
func (w *Writer) Close() error {
	return w.gz.Close()
}

// Reader iterates over the Records of a trace.
type Reader struct {
	gz  *gzip.Reader
	dec *gob.Decoder
}

// NewReader opens a trace for reading.
func NewReader(r io.Reader) (*Reader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening trace")
	}

	return &Reader{
		gz:  gz,
		dec: gob.NewDecoder(gz),
	}, nil
}

// Next returns the next Record, or io.EOF at the end of the trace.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return rec, io.EOF
		}

		return rec, errors.Wrap(err, "reading record")
	}

	return rec, nil
}

// ReadAll returns all remaining Records.
func (r *Reader) ReadAll() ([]Record, error) {
	var result []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return result, nil
		} else if err != nil {
			return result, err
		}

		result = append(result, rec)
	}
}

// Close releases the decompressor.
func (r *Reader) Close() error {
	return r.gz.Close()
}
