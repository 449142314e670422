// Package assistant turns a user utterance into a response: it
// classifies the intent, extracts entities, records the turn and
// routes to the matching handler. Side effects toward the hosting
// application (file picker, chart rendering, export) are best-effort
// and never surface as errors in the response.
package assistant

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/halcyonlab/tablechat/internal/chart"
	"github.com/halcyonlab/tablechat/internal/dataset"
	"github.com/halcyonlab/tablechat/internal/files"
	"github.com/halcyonlab/tablechat/internal/nlu"
	"github.com/halcyonlab/tablechat/internal/report"
	"github.com/halcyonlab/tablechat/internal/session"
)

// Host is the surrounding application. Implementations own the
// current-dataset slot; the assistant only reads it and, after a
// cleaning pass, offers a replacement.
type Host interface {
	Dataset() *dataset.Dataset
	SetDataset(*dataset.Dataset)
	CurrentFile() report.FileMeta
	OpenFilePicker() error
	RenderChart(panels []chart.Panel) error
	ExportDataset(name string) error
	SearchRoot() string
}

// Assistant is single-session: callers exposing one instance to
// concurrent requests must serialize Respond.
type Assistant struct {
	classifier   *nlu.Classifier
	extractor    *nlu.Extractor
	context      *session.Context
	reports      *report.Builder
	host         Host
	rng          *rand.Rand
	log          *slog.Logger
	searchLimit  int
	exportFormat string
}

// Option customizes a new Assistant.
type Option func(*Assistant)

// WithLogger sets the logger for side-effect failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) { a.log = l }
}

// WithRand fixes the source used for template selection.
func WithRand(r *rand.Rand) Option {
	return func(a *Assistant) { a.rng = r }
}

// WithContext supplies a pre-existing conversation context.
func WithContext(c *session.Context) Option {
	return func(a *Assistant) { a.context = c }
}

// WithSearchLimit caps the number of results a file search returns.
// Non-positive values keep the default.
func WithSearchLimit(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.searchLimit = n
		}
	}
}

// WithExportFormat sets the file extension used when the user asks to
// save results (xlsx, csv or json).
func WithExportFormat(ext string) Option {
	return func(a *Assistant) {
		if ext != "" {
			a.exportFormat = ext
		}
	}
}

func New(host Host, opts ...Option) *Assistant {
	a := &Assistant{
		classifier:   nlu.NewClassifier(nlu.DefaultKeywordSets()),
		extractor:    nlu.NewExtractor(nlu.DefaultVocabularies()),
		context:      session.New(),
		reports:      &report.Builder{},
		host:         host,
		log:          slog.Default(),
		searchLimit:  files.DefaultMaxResults,
		exportFormat: "xlsx",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Context exposes the conversation log for summaries and history.
func (a *Assistant) Context() *session.Context { return a.context }

// Respond processes one utterance to completion and returns the
// response text.
func (a *Assistant) Respond(utterance string) string {
	result := a.classifier.Classify(utterance)
	entities := a.extractor.Extract(utterance)
	a.context.Record(utterance, result, entities)

	a.log.Debug("utterance classified",
		"intent", result.Intent.String(),
		"confidence", result.Confidence,
		"entities", len(entities))

	switch result.Intent {
	case nlu.IntentGreeting:
		return a.handleGreeting()
	case nlu.IntentFileOpen:
		return a.handleFileOpen(entities)
	case nlu.IntentDataAnalysis:
		return a.handleDataAnalysis(entities, utterance)
	case nlu.IntentExcelWork:
		return a.handleExcelWork(utterance)
	case nlu.IntentChartCreate:
		return a.handleChartCreate(entities)
	case nlu.IntentReportGenerate:
		return a.handleReportGenerate()
	case nlu.IntentHelpRequest:
		return a.handleHelpRequest(utterance)
	case nlu.IntentFileSave:
		return a.handleFileSave()
	case nlu.IntentDataClean:
		return a.handleDataClean()
	case nlu.IntentSearchFile:
		return a.handleSearchFile(entities)
	case nlu.IntentCompareData:
		return a.handleCompareData(entities)
	case nlu.IntentTrendAnalysis:
		return a.handleTrendAnalysis()
	case nlu.IntentProblemSolve:
		return a.handleProblemSolve()
	default:
		return a.handleUnknown()
	}
}
