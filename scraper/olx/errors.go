package olx

import "fmt"

// NavigationError reports a network or navigation failure opening a page.
// The orchestrator abandons the page and continues the crawl.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// BlockedError reports an anti-bot interstitial. It means "abandon this
// request, do not retry immediately" — the session has already been held
// through the cooldown and closed by the time the caller sees it.
type BlockedError struct {
	URL string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("blocked by interstitial: %s", e.URL)
}

// TimeoutError reports that a bounded wait on a page element did not
// complete in its time budget.
type TimeoutError struct {
	Op       string
	Selector string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out waiting for %q: %v", e.Op, e.Selector, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
