package olx

import (
	"time"

	"github.com/charmbracelet/log"
)

const (
	revealBtnBudget    = 2 * time.Second
	revealScrollBudget = time.Second
	revealClickBudget  = 5 * time.Second
	revealPhoneBudget  = 3 * time.Second
)

// PhoneRevealer performs the in-page click that swaps the "show phone"
// button for the actual number. Every branch is non-fatal: extraction always
// proceeds, with or without a revealed phone.
type PhoneRevealer struct {
	schema Schema
	logger *log.Logger
}

// NewPhoneRevealer creates a revealer bound to the given schema.
func NewPhoneRevealer(schema Schema, logger *log.Logger) *PhoneRevealer {
	return &PhoneRevealer{schema: schema, logger: logger}
}

// RevealPhone clicks the reveal control and waits for the phone anchor to
// appear. It returns true when the number became visible, false when the
// control is absent or the reveal never completed.
func (p *PhoneRevealer) RevealPhone(sess *PageSession) bool {
	if err := sess.WaitVisible("show-phone", p.schema.ShowPhoneBtn, revealBtnBudget); err != nil {
		p.logger.Info("show-phone button not present", "url", sess.URL)
		return false
	}

	if err := sess.ScrollIntoView("show-phone", p.schema.ShowPhoneBtn, revealScrollBudget); err != nil {
		p.logger.Warn("could not scroll to show-phone button", "url", sess.URL, "err", err)
		return false
	}

	if err := sess.Click("show-phone", p.schema.ShowPhoneBtn, revealClickBudget); err != nil {
		p.logger.Warn("show-phone click failed", "url", sess.URL, "err", err)
		return false
	}
	p.logger.Debug("show-phone button clicked", "url", sess.URL)

	if err := sess.WaitVisible("contact-phone", p.schema.ContactPhone, revealPhoneBudget); err != nil {
		p.logger.Warn("phone did not appear after click", "url", sess.URL, "err", err)
		return false
	}

	p.logger.Debug("phone revealed", "url", sess.URL)
	return true
}
