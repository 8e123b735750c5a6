package olx

import (
	"time"

	"github.com/charmbracelet/log"
)

// Wait budgets for the readiness gates. The list gate is strict; every
// detail-stage wait degrades instead of aborting because detail-page
// richness is best-effort.
const (
	listReadyBudget   = 10 * time.Second
	footerBudget      = 20 * time.Second
	userNameBudget    = 10 * time.Second
	descriptionBudget = 10 * time.Second
	scrollBudget      = 5 * time.Second
)

// ReadinessGate waits for the DOM elements a page must have before it is
// safe to extract from it.
type ReadinessGate struct {
	schema Schema
	logger *log.Logger
}

// NewReadinessGate creates a gate bound to the given schema.
func NewReadinessGate(schema Schema, logger *log.Logger) *ReadinessGate {
	return &ReadinessGate{schema: schema, logger: logger}
}

// WaitListReady blocks until the ad-card title anchors are visible. A
// timeout here means the list page never rendered its cards, so it returns
// the TimeoutError and the caller aborts the page.
func (g *ReadinessGate) WaitListReady(sess *PageSession) error {
	return sess.WaitVisible("list-ready", g.schema.AdTitleURL, listReadyBudget)
}

// WaitDetailReady drives the detail page to a scrapeable state: wait for the
// footer marker, scroll it into view, then wait for the user-name and
// description blocks. Every timeout is logged and tolerated — the crawl
// continues with whatever partial content loaded.
func (g *ReadinessGate) WaitDetailReady(sess *PageSession) {
	if err := sess.WaitVisible("detail-footer", g.schema.FooterBar, footerBudget); err != nil {
		g.logger.Warn("footer marker never appeared, proceeding with partial page",
			"url", sess.URL, "err", err)
		return
	}

	if err := sess.ScrollIntoView("detail-footer", g.schema.FooterBar, scrollBudget); err != nil {
		g.logger.Warn("could not scroll to footer marker", "url", sess.URL, "err", err)
		return
	}

	if err := sess.WaitVisible("detail-user", g.schema.UserName, userNameBudget); err != nil {
		g.logger.Warn("user profile block not loaded", "url", sess.URL, "err", err)
	}
	if err := sess.WaitVisible("detail-description", g.schema.DescriptionParts, descriptionBudget); err != nil {
		g.logger.Warn("description block not loaded", "url", sess.URL, "err", err)
	}

	g.logger.Debug("detail page ready", "url", sess.URL)
}
