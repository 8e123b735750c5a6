package olx

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// BlockDetector recognizes the anti-bot interstitial served instead of real
// content and backs the crawler off before abandoning the request.
type BlockDetector struct {
	schema   Schema
	cooldown time.Duration
	logger   *log.Logger

	detections atomic.Int64
}

// NewBlockDetector creates a detector with the given cooldown (45s in the
// production configuration).
func NewBlockDetector(schema Schema, cooldown time.Duration, logger *log.Logger) *BlockDetector {
	return &BlockDetector{schema: schema, cooldown: cooldown, logger: logger}
}

// CheckBlocked inspects the loaded page for the interstitial heading. On
// detection it logs a warning, holds the session idle for the cooldown so the
// block is not hammered, closes the session and returns a BlockedError. A
// clean page returns nil with no side effects.
func (d *BlockDetector) CheckBlocked(sess *PageSession, contextLabel string) error {
	script := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).some(h => h.textContent.includes(%q))`,
		d.schema.BlockedHeading, d.schema.BlockedMarker)

	var blocked bool
	if err := sess.Evaluate(script, &blocked); err != nil {
		// Cannot even run a script against the page; treat as navigation loss.
		sess.Close()
		return &NavigationError{URL: sess.URL, Err: err}
	}

	if !blocked {
		return nil
	}

	occurrences := d.detections.Add(1)
	d.logger.Warn("blocked by interstitial, cooling down",
		"context", contextLabel, "url", sess.URL,
		"cooldown", d.cooldown, "occurrences", occurrences)

	time.Sleep(d.cooldown)
	sess.Close()
	return &BlockedError{URL: sess.URL}
}

// Detections reports how many interstitials this run has hit, for operator
// visibility in the final summary.
func (d *BlockDetector) Detections() int {
	return int(d.detections.Load())
}
