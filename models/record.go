package models

import "time"

// ListingCandidate is one ad discovered on a list page. It only carries the
// fields the list page exposes; the rest of the record is filled from the
// detail page.
type ListingCandidate struct {
	Title     string
	Price     string
	DetailURL string
}

// Record is the final structured output for one listing. Title, Price and
// URL come from the list stage; everything else is best-effort from the
// detail stage. An empty string (or nil slice) means the field was not found
// on the page, which is valid output, not an error.
type Record struct {
	Title        string
	Price        string
	URL          string
	Tags         []string
	UserName     string
	UserScore    string
	UserSince    string
	UserLastSeen string

	AnnouncementID string
	ViewCounter    string
	Location       string
	PublishedAt    string
	Description    string
	ImageURLs      []string
	PhoneNumber    string

	ScrapedAt time.Time
}

// FromCandidate seeds a Record with the list-stage fields.
func FromCandidate(c *ListingCandidate) *Record {
	return &Record{
		Title:     c.Title,
		Price:     c.Price,
		URL:       c.DetailURL,
		ScrapedAt: time.Now(),
	}
}

// MergeDetail copies every detail-stage field that d managed to extract into
// r, leaving the list-stage fields untouched.
func (r *Record) MergeDetail(d *Record) {
	r.Tags = d.Tags
	r.UserName = d.UserName
	r.UserScore = d.UserScore
	r.UserSince = d.UserSince
	r.UserLastSeen = d.UserLastSeen
	r.AnnouncementID = d.AnnouncementID
	r.ViewCounter = d.ViewCounter
	r.Location = d.Location
	r.PublishedAt = d.PublishedAt
	r.Description = d.Description
	r.ImageURLs = d.ImageURLs
}

// CrawlReport holds the computed summary over a finished run.
type CrawlReport struct {
	TotalRecords      int
	WithPhone         int
	WithDescription   int
	RecordsByLocation map[string]int
	MostViewed        *Record
}
