package olx

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chromedp/chromedp"

	"olx-scraper/utils"
)

// newDeadSession returns a session whose context is already cancelled, so
// every wait against it fails immediately. That is enough to assert the
// gates' failure policies without a live browser.
func newDeadSession() *PageSession {
	ctx, cancel := chromedp.NewContext(context.Background())
	// chromedp's cancel func blocks if invoked twice; the helper cancels
	// here and Close cancels again, so guard it with a Once.
	var once sync.Once
	cancelOnce := func() { once.Do(cancel) }
	sess := &PageSession{URL: "https://www.olx.ua/d/uk/obyavlenie/dead", ctx: ctx, cancel: cancelOnce}
	cancelOnce()
	return sess
}

func TestListGateFailureAbortsPage(t *testing.T) {
	g := NewReadinessGate(DefaultSchema(), utils.NewLogger("error"))

	err := g.WaitListReady(newDeadSession())
	if err == nil {
		t.Fatal("list gate must surface its failure so the page is aborted")
	}

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected TimeoutError, got %T: %v", err, err)
	}
	if te.Selector != DefaultSchema().AdTitleURL {
		t.Errorf("timeout should name the list selector, got %q", te.Selector)
	}
}

func TestDetailGateDegradesInsteadOfFailing(t *testing.T) {
	g := NewReadinessGate(DefaultSchema(), utils.NewLogger("error"))

	// Must return normally even though the page never becomes ready; the
	// candidate continues with whatever content loaded.
	g.WaitDetailReady(newDeadSession())
}

func TestRevealPhoneDegradesWhenButtonUnreachable(t *testing.T) {
	p := NewPhoneRevealer(DefaultSchema(), utils.NewLogger("error"))

	if p.RevealPhone(newDeadSession()) {
		t.Error("reveal against an unreachable button must report no phone")
	}
}

func TestPageSessionCloseIdempotent(t *testing.T) {
	sess := newDeadSession()
	sess.Close()
	sess.Close()
}
