// Package normalize turns raw text into a canonical lemmatized form.
package normalize

import (
	"github.com/cognicore/canon/pkg/canon/fold"
	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/lemma"
	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/logging"
	"github.com/cognicore/canon/pkg/canon/numwords"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/segment"
)

// Stage names, in execution order.
const (
	StageLower       = "lower"
	StageAccents     = "accents"
	StageCompound    = "compound"
	StageNumbers     = "numbers"
	StagePunctuation = "punctuation"
	StageLemmatize   = "lemmatize"
)

// AccentFolder replaces accented characters with ASCII equivalents.
type AccentFolder interface {
	FoldAccents(s string) (string, error)
}

// Segmenter splits run-together text into words.
type Segmenter interface {
	Segment(s string) ([]string, error)
}

// NumberSpeller spells a numeric string as words.
type NumberSpeller interface {
	Spell(numeric string) (string, error)
}

// Pipeline orchestrates the normalization flow:
// lower-case → accent fold → compound split → numbers to words →
// punctuation strip → lemmatize by part of speech.
//
// Each stage consumes the whole output string of the previous one, so token
// boundaries are recomputed at every step. A Pipeline is not safe for
// concurrent use.
type Pipeline struct {
	folder     AccentFolder
	segmenter  Segmenter
	speller    NumberSpeller
	tagger     pos.Tagger
	lemmatizer lemma.Lemmatizer
	logger     logging.Logger
}

// NewPipeline creates a normalization pipeline with the given collaborators.
func NewPipeline(folder AccentFolder, segmenter Segmenter, speller NumberSpeller, tagger pos.Tagger, lemmatizer lemma.Lemmatizer) *Pipeline {
	return &Pipeline{
		folder:     folder,
		segmenter:  segmenter,
		speller:    speller,
		tagger:     tagger,
		lemmatizer: lemmatizer,
		logger:     logging.Nop(),
	}
}

// NewDefaultPipeline wires the built-in collaborators around lex.
func NewDefaultPipeline(lex *lexicon.Lexicon) *Pipeline {
	return NewPipeline(
		fold.NewFolder(),
		segment.New(lex),
		numwords.NewSpeller(),
		pos.NewPerceptronTagger(),
		lemma.NewMorphy(lex),
	)
}

// SetLogger assigns the logger used for masked stage failures.
func (p *Pipeline) SetLogger(logger logging.Logger) {
	p.logger = logging.OrNop(logger)
}

// StageResult is the output of one stage.
type StageResult struct {
	Stage  string `json:"stage"`
	Output string `json:"output"`
}

// Process runs raw through all six stages and returns the normalized string.
// Failures of the number stage are masked; any other collaborator failure is
// returned as a *internalerr.StageError.
func (p *Pipeline) Process(raw string) (string, error) {
	out := raw
	err := p.run(raw, func(_ string, s string) { out = s })
	if err != nil {
		return "", err
	}
	return out, nil
}

// Trace runs the same stages as Process and records each stage's output.
func (p *Pipeline) Trace(raw string) ([]StageResult, error) {
	results := make([]StageResult, 0, 6)
	err := p.run(raw, func(stage, s string) {
		results = append(results, StageResult{Stage: stage, Output: s})
	})
	return results, err
}

func (p *Pipeline) run(raw string, emit func(stage, out string)) error {
	// 1. Case fold
	s := fold.Lower(raw)
	emit(StageLower, s)

	// 2. Accent fold
	folded, err := p.folder.FoldAccents(s)
	if err != nil {
		return internalerr.Wrap(StageAccents, s, err)
	}
	s = folded
	emit(StageAccents, s)

	// 3. Compound split over the whole string
	s, err = CompoundSplit(p.segmenter, s)
	if err != nil {
		return err
	}
	emit(StageCompound, s)

	// 4. Numbers to words (per token, failures masked)
	s = ConvertNumbers(p.speller, s, p.logger)
	emit(StageNumbers, s)

	// 5. Punctuation strip
	s = StripPunctuation(s)
	emit(StagePunctuation, s)

	// 6. Tag once, lemmatize each token by its coarse category
	s, err = Lemmatize(p.tagger, p.lemmatizer, s)
	if err != nil {
		return err
	}
	emit(StageLemmatize, s)
	return nil
}
