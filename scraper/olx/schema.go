package olx

// Schema maps record fields to the markup locators that produce them.
// Site markup changes are a data change here, not a logic change: the
// extractors and gates receive a Schema instead of reaching for constants.
type Schema struct {
	// List page
	AdsBlock   string
	AdTitleURL string
	AdTitle    string
	AdPrice    string

	// Detail page, contact section
	AdPostedAt   string
	ShowPhoneBtn string
	ContactPhone string

	// Detail page, user profile
	UserName         string
	UserScore        string
	UserRegistration string
	UserLastSeen     string

	// Detail page, body
	MapOverlay       string
	PhotoBlock       string
	AdTags           string
	DescriptionParts string

	// Detail page, footer
	FooterBar   string
	AdID        string
	ViewCounter string

	// Interstitial
	BlockedHeading string
	BlockedMarker  string
}

// DefaultSchema returns the locator set for the current olx.ua markup.
func DefaultSchema() Schema {
	return Schema{
		AdsBlock:   `div[data-testid="l-card"]`,
		AdTitleURL: `div[data-cy="ad-card-title"] a`,
		AdTitle:    `div[data-cy="ad-card-title"] a > h4`,
		AdPrice:    `p[data-testid="ad-price"]`,

		AdPostedAt:   `span[data-cy="ad-posted-at"]`,
		ShowPhoneBtn: `button[data-testid="show-phone"]`,
		ContactPhone: `a[data-testid="contact-phone"]`,

		UserName:         `a[data-testid="user-profile-link"] h4`,
		UserScore:        `article[data-testid="score-widget"] > div > p`,
		UserRegistration: `a[data-testid="user-profile-link"] > div > div > p > span`,
		UserLastSeen:     `p[data-testid="lastSeenBox"] > span`,

		MapOverlay:       `div[data-testid="qa-map-overlay-hidden"]`,
		PhotoBlock:       `div[data-testid="ad-photo"]`,
		AdTags:           `div[data-testid="qa-advert-slot"] + ul`,
		DescriptionParts: `div[data-cy="ad_description"] > div`,

		FooterBar:   `div[data-testid="ad-footer-bar-section"]`,
		AdID:        `div[data-testid="ad-footer-bar-section"] > span`,
		ViewCounter: `span[data-testid="page-view-counter"]`,

		BlockedHeading: `h1`,
		BlockedMarker:  "403 ERROR",
	}
}
