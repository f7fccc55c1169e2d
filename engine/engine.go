// Package engine wires the pagetrail stores into the narrow operation
// surface exposed to the hosting application: status, page-status,
// index, search and lookup. The engine owns the initialization
// lifecycle (Uninitialized -> Ready | Failed) and never lets an error
// escape an operation boundary as a panic.
package engine

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mjaros/pagetrail"
	"github.com/mjaros/pagetrail/bloom"
	"github.com/mjaros/pagetrail/sqlite"
	"golang.org/x/sync/singleflight"
)

// defaultExpectedURLs sizes the seen-URL filter when the caller does not.
const defaultExpectedURLs = 100_000

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateFailed
)

// Options configures an Engine.
type Options struct {
	// DB is the primary store. Opened (and migrated) during Init.
	DB *sqlite.DB

	// Staging is the best-effort mirror store. Optional; opened during
	// Init when set.
	Staging *sqlite.DB

	Documents pagetrail.DocumentService
	Fragments pagetrail.FragmentService
	Searcher  pagetrail.SearchService

	// Segmenter splits document bodies into fragments. Defaults to
	// pagetrail.NewSegmenter().
	Segmenter pagetrail.Segmenter

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// ExpectedURLs sizes the seen-URL bloom filter.
	ExpectedURLs uint
}

// Engine coordinates the document, fragment and search services behind
// the external operations.
type Engine struct {
	db        *sqlite.DB
	staging   *sqlite.DB
	documents pagetrail.DocumentService
	fragments pagetrail.FragmentService
	searcher  pagetrail.SearchService
	segmenter pagetrail.Segmenter
	logger    *slog.Logger

	// seen answers "has this URL ever been indexed?" without a store
	// lookup when the answer is a definitive no.
	seen *bloom.SeenFilter

	// group collapses concurrent page-status checks for the same URL.
	group singleflight.Group

	mu      sync.RWMutex
	state   state
	initErr error
}

// New creates an Engine. Call Init before issuing operations.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	segmenter := opts.Segmenter
	if segmenter == nil {
		segmenter = pagetrail.NewSegmenter()
	}
	expected := opts.ExpectedURLs
	if expected == 0 {
		expected = defaultExpectedURLs
	}

	return &Engine{
		db:        opts.DB,
		staging:   opts.Staging,
		documents: opts.Documents,
		fragments: opts.Fragments,
		searcher:  opts.Searcher,
		segmenter: segmenter,
		logger:    logger,
		seen:      bloom.NewSeenFilter(expected, 0.001),
	}
}

// Init opens both stores, applies migrations and warms the seen-URL
// filter. A failure is fatal: the engine stays in the Failed state and
// every subsequent operation reports ENOTREADY. Calling Init again
// returns the original outcome.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateUninitialized {
		return e.initErr
	}

	if err := e.initialize(ctx); err != nil {
		e.state = stateFailed
		e.initErr = err
		e.logger.Error("engine initialization failed", "error", err)
		return err
	}

	e.state = stateReady
	return nil
}

func (e *Engine) initialize(ctx context.Context) error {
	if err := e.db.Open(); err != nil {
		return err
	}
	if e.staging != nil {
		if err := e.staging.Open(); err != nil {
			return err
		}
	}

	urls, err := e.documents.FindURLs(ctx)
	if err != nil {
		return err
	}
	e.seen.Warm(urls)
	e.logger.Info("engine ready", "known_urls", len(urls))
	return nil
}

// Close closes both stores.
func (e *Engine) Close() error {
	var firstErr error
	if e.db != nil {
		firstErr = e.db.Close()
	}
	if e.staging != nil {
		if err := e.staging.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Status reports whether the engine completed initialization without
// error. It is a pure query of the lifecycle state.
func (e *Engine) Status() pagetrail.StatusReport {
	e.mu.RLock()
	defer e.mu.RUnlock()

	switch e.state {
	case stateReady:
		return pagetrail.StatusReport{OK: true}
	case stateFailed:
		return pagetrail.StatusReport{OK: false, Err: e.initErr.Error()}
	default:
		return pagetrail.StatusReport{OK: false, Err: "engine not initialized"}
	}
}

// ready returns ENOTREADY unless initialization succeeded.
func (e *Engine) ready() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state != stateReady {
		return pagetrail.Errorf(pagetrail.ENOTREADY, "engine not ready")
	}
	return nil
}

// PageStatus reports whether a URL is new or missing content and should
// therefore be indexed. As a side effect it touches an existing
// document's visit timestamps. Concurrent checks for the same URL
// collapse into one store lookup.
func (e *Engine) PageStatus(ctx context.Context, rawURL string) (*pagetrail.PageStatus, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, pagetrail.Errorf(pagetrail.EINVALID, "failed to parse url %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return nil, pagetrail.Errorf(pagetrail.EINVALID, "url %q has no host", rawURL)
	}

	logger := e.logger.With("op", uuid.New().String(), "url", rawURL)

	v, err, _ := e.group.Do("status:"+rawURL, func() (any, error) {
		return e.pageStatus(ctx, logger, rawURL)
	})
	if err != nil {
		return nil, err
	}
	return v.(*pagetrail.PageStatus), nil
}

func (e *Engine) pageStatus(ctx context.Context, logger *slog.Logger, rawURL string) (*pagetrail.PageStatus, error) {
	// A bloom-negative is definitive: the URL was never indexed.
	if !e.seen.Seen(rawURL) {
		logger.Debug("url never seen, should index")
		return &pagetrail.PageStatus{ShouldIndex: true}, nil
	}

	doc, err := e.documents.FindByURL(ctx, rawURL)
	if pagetrail.ErrorCode(err) == pagetrail.ENOTFOUND {
		return &pagetrail.PageStatus{ShouldIndex: true}, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := e.documents.Touch(ctx, doc.ID, now, now.UnixMilli(), now.Format(time.DateOnly)); err != nil {
		logger.Error("failed to touch visit timestamps", "error", err)
		return nil, err
	}

	return &pagetrail.PageStatus{ShouldIndex: doc.MDContent == ""}, nil
}

// IndexPage runs the upsert, decomposition and fragment-indexing
// pipeline for one page-visit event. Failures are reported in the
// result, never panicked across the boundary.
func (e *Engine) IndexPage(ctx context.Context, payload pagetrail.PagePayload, rawURL string, visit pagetrail.VisitMeta) *pagetrail.IndexResult {
	logger := e.logger.With("op", uuid.New().String(), "url", rawURL)

	if err := e.ready(); err != nil {
		return &pagetrail.IndexResult{OK: false, Message: pagetrail.ErrorMessage(err)}
	}

	var hostname string
	if u, err := url.Parse(rawURL); err == nil {
		hostname = u.Hostname()
	} else {
		logger.Warn("failed to parse url for hostname", "error", err)
	}

	now := time.Now().UTC()
	if visit.LastVisit == 0 {
		visit.LastVisit = now.UnixMilli()
	}
	if visit.LastVisitDate == "" {
		visit.LastVisitDate = now.Format(time.DateOnly)
	}

	doc := &pagetrail.Document{
		Title:           payload.Title,
		URL:             rawURL,
		Excerpt:         payload.Excerpt,
		MDContent:       payload.MDContent,
		PublicationDate: payload.PublicationDate,
		Hostname:        hostname,
		LastVisit:       visit.LastVisit,
		LastVisitDate:   visit.LastVisitDate,
		Extractor:       payload.Extractor,
	}

	created, err := e.documents.Upsert(ctx, doc)
	if err != nil {
		logger.Error("index failed at upsert", "error", err)
		return &pagetrail.IndexResult{OK: false, Message: pagetrail.ErrorMessage(err)}
	}
	e.seen.Add(rawURL)

	if !created {
		logger.Info("document refreshed")
		return &pagetrail.IndexResult{OK: true, Message: "document updated"}
	}

	fragments := pagetrail.Decompose(doc.ID, doc.Title, doc.Excerpt, doc.URL, doc.MDContent, e.segmenter)
	if err := e.fragments.CreateFragments(ctx, fragments); err != nil {
		logger.Error("index failed at fragments", "error", err)
		return &pagetrail.IndexResult{OK: false, Message: pagetrail.ErrorMessage(err)}
	}

	logger.Info("document indexed", "fragments", len(fragments))
	return &pagetrail.IndexResult{OK: true, Message: "document indexed"}
}

// NothingToIndex acknowledges a page an external filter deemed
// non-indexable. No storage side effects.
func (e *Engine) NothingToIndex(rawURL string) pagetrail.Ack {
	e.logger.Debug("nothing to index", "url", rawURL)
	return pagetrail.Ack{OK: true}
}

// Search executes a full-text query. Zero limit/offset fall back to the
// defaults; no upper bound is enforced here.
func (e *Engine) Search(ctx context.Context, query string, limit, offset int) (*pagetrail.SearchResponse, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	e.logger.Debug("search", "op", uuid.New().String(), "query", query)
	return e.searcher.Search(ctx, query, pagetrail.SearchOptions{Limit: limit, Offset: offset})
}

// FindOne retrieves the document for an exact URL match.
// Returns ENOTFOUND if no document exists for the URL.
func (e *Engine) FindOne(ctx context.Context, rawURL string) (*pagetrail.Document, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	e.logger.Debug("find one", "op", uuid.New().String(), "url", rawURL)
	return e.documents.FindByURL(ctx, rawURL)
}
