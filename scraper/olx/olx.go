package olx

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"olx-scraper/config"
	"olx-scraper/models"
	"olx-scraper/storage"
	"olx-scraper/utils"
)

// Scraper drives the two-stage crawl: list pages are enumerated into
// candidates, each candidate's detail page is fetched, gated, extracted and
// emitted as one Record. A blocked or failed page abandons only itself; the
// rest of the crawl continues.
type Scraper struct {
	cfg     *config.Config
	logger  *log.Logger
	schema  Schema
	browser *Browser
	blocks  *BlockDetector
	gate    *ReadinessGate
	phone   *PhoneRevealer
	pool    *utils.WorkerPool
	visited *utils.URLSet
	sink    storage.RecordSink

	mu       sync.Mutex
	records  []*models.Record
	failures []error
}

// New creates a ready-to-use Scraper emitting finished records to sink.
func New(cfg *config.Config, logger *log.Logger, sink storage.RecordSink) *Scraper {
	schema := DefaultSchema()
	return &Scraper{
		cfg:     cfg,
		logger:  logger,
		schema:  schema,
		browser: NewBrowser(cfg, logger),
		blocks:  NewBlockDetector(schema, cfg.BlockCooldown, logger),
		gate:    NewReadinessGate(schema, logger),
		phone:   NewPhoneRevealer(schema, logger),
		pool:    utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RequestDelay),
		visited: utils.NewURLSet(),
		sink:    sink,
	}
}

// Crawl walks every configured list page and returns the records it managed
// to complete. The returned error aggregates unexpected extraction failures;
// it is non-nil even when records were produced, so the caller can report
// both.
func (s *Scraper) Crawl() ([]*models.Record, error) {
	defer s.browser.Close()

	s.logger.Info("starting crawl",
		"pages", s.cfg.PagesToCrawl,
		"concurrency", s.cfg.MaxConcurrency,
		"delay", s.cfg.RequestDelay)

	for page := 1; page <= s.cfg.PagesToCrawl; page++ {
		if page > 1 {
			time.Sleep(s.cfg.RequestDelay)
		}

		pageURL := s.cfg.ListPageURL(page)
		if err := s.crawlListPage(pageURL); err != nil {
			s.logger.Error("list page abandoned", "page", page, "url", pageURL, "err", err)
			continue
		}
		s.logger.Info("list page done", "page", page, "records", len(s.records))
	}

	if n := s.blocks.Detections(); n > 0 {
		s.logger.Warn("interstitial blocks were hit this run", "count", n)
	}

	s.logger.Info("crawl complete", "records", len(s.records), "failed_candidates", len(s.failures))
	return s.records, errors.Join(s.failures...)
}

// crawlListPage fetches one list page, gates it, and schedules a detail
// fetch per candidate. Returning an error abandons only this page.
func (s *Scraper) crawlListPage(pageURL string) error {
	sess, err := s.browser.OpenPage(pageURL)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := s.blocks.CheckBlocked(sess, "list page"); err != nil {
		return err
	}

	// The list gate is strict: no ad cards within budget means the page
	// never rendered, so it is aborted rather than scraped empty.
	if err := s.gate.WaitListReady(sess); err != nil {
		return err
	}

	markup, err := sess.Content()
	if err != nil {
		return err
	}
	sess.Close()

	candidates, err := ExtractCandidates(markup, s.schema, pageURL)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		s.logger.Warn("no ads found on the page", "url", pageURL)
		return nil
	}
	s.logger.Info("candidates collected", "url", pageURL, "count", len(candidates))

	for _, c := range candidates {
		c := c
		if !s.visited.Add(c.DetailURL) {
			s.logger.Debug("skipping duplicate candidate", "url", c.DetailURL)
			continue
		}
		s.pool.Submit(func() {
			s.processCandidate(c)
		})
	}
	s.pool.Wait()

	return nil
}

// processCandidate runs the full detail flow for one candidate and emits the
// finished Record. Every exit path closes the session; failures abandon only
// this candidate.
func (s *Scraper) processCandidate(c *models.ListingCandidate) {
	rec := models.FromCandidate(c)

	sess, err := s.browser.OpenPage(c.DetailURL)
	if err != nil {
		s.logger.Error("detail page abandoned", "url", c.DetailURL, "err", err)
		return
	}
	defer sess.Close()

	if err := s.blocks.CheckBlocked(sess, "detail page"); err != nil {
		s.logger.Error("detail page abandoned", "url", c.DetailURL, "err", err)
		return
	}

	s.gate.WaitDetailReady(sess)

	markup, err := sess.Content()
	if err != nil {
		s.logger.Error("detail content unavailable", "url", c.DetailURL, "err", err)
		return
	}

	detail, err := ExtractDetail(markup, s.schema)
	if err != nil {
		// Unexpected extraction failure: force-close, surface to the run's
		// supervision, move on to the next candidate.
		s.logger.Error("detail extraction failed", "url", c.DetailURL, "err", err)
		sess.Close()
		s.mu.Lock()
		s.failures = append(s.failures, fmt.Errorf("extract %s: %w", c.DetailURL, err))
		s.mu.Unlock()
		return
	}
	rec.MergeDetail(detail)

	// The record is only finalized after the reveal was attempted; an absent
	// phone is valid output. The page is re-read even when the reveal
	// degraded, since some ads show the number without a button.
	s.phone.RevealPhone(sess)
	if revealed, err := sess.Content(); err == nil {
		rec.PhoneNumber = ExtractPhone(revealed, s.schema)
	}
	if rec.PhoneNumber != "" {
		s.logger.Info("phone collected", "url", c.DetailURL, "phone", rec.PhoneNumber)
	}

	s.emit(rec)
}

// emit hands one finished record to the sink and keeps it for the run result.
func (s *Scraper) emit(rec *models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sink.Write(rec); err != nil {
		s.logger.Error("sink write failed", "url", rec.URL, "err", err)
	}
	s.records = append(s.records, rec)
	s.logger.Info("record emitted", "url", rec.URL, "title", rec.Title, "price", rec.Price)
}
