// Package batch runs the normalizer and chunker over line-oriented input and
// writes one JSON record per line.
package batch

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/json"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/canon/pkg/canon/logging"
)

// Normalizer produces the canonical form of a text.
type Normalizer interface {
	Normalize(raw string) (string, error)
}

// Chunker splits a sentence into chunks.
type Chunker interface {
	Chunk(sentence string) ([]string, error)
}

// Record is one line of batch output.
type Record struct {
	ID         string   `json:"id"`
	Source     string   `json:"source,omitempty"`
	Input      string   `json:"input"`
	Normalized string   `json:"normalized,omitempty"`
	Chunks     []string `json:"chunks,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Stats summarizes a batch run.
type Stats struct {
	Records int
	Failed  int
}

// Processor turns docs into records. Record IDs are monotonic ULIDs, so
// output sorts in processing order.
type Processor struct {
	entropy    *ulid.MonotonicEntropy
	normalizer Normalizer
	chunker    Chunker
	logger     logging.Logger
}

// NewProcessor creates a processor. chunker may be nil to skip chunking.
func NewProcessor(normalizer Normalizer, chunker Chunker) *Processor {
	return &Processor{
		entropy:    ulid.Monotonic(rand.Reader, 0),
		normalizer: normalizer,
		chunker:    chunker,
		logger:     logging.Nop(),
	}
}

// SetLogger assigns the logger used for per-record failures.
func (p *Processor) SetLogger(logger logging.Logger) {
	p.logger = logging.OrNop(logger)
}

// Process handles one doc. Failures are reported in Record.Error.
func (p *Processor) Process(doc Doc) Record {
	rec := Record{
		ID:     ulid.MustNew(ulid.Now(), p.entropy).String(),
		Source: doc.Source,
		Input:  doc.Text,
	}
	if err := doc.Validate(); err != nil {
		rec.Error = err.Error()
		return rec
	}

	normalized, err := p.normalizer.Normalize(doc.Text)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	rec.Normalized = normalized

	if p.chunker != nil {
		chunks, err := p.chunker.Chunk(doc.Text)
		if err != nil {
			rec.Error = err.Error()
			return rec
		}
		rec.Chunks = chunks
	}
	return rec
}

// Run reads docs from r, one per line, and writes JSON records to w.
// Empty lines are skipped. A bad line yields a record with Error set and the
// run continues; only I/O errors and cancellation stop it.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := sc.Text()
		if len(line) == 0 {
			continue
		}

		var rec Record
		doc, err := ParseLine(line)
		if err != nil {
			rec = Record{ID: ulid.MustNew(ulid.Now(), p.entropy).String(), Input: line, Error: err.Error()}
		} else {
			rec = p.Process(doc)
		}

		stats.Records++
		if rec.Error != "" {
			stats.Failed++
			p.logger.Warn("batch record failed", "id", rec.ID, "error", rec.Error)
		}
		if err := enc.Encode(rec); err != nil {
			return stats, err
		}
	}
	return stats, sc.Err()
}
