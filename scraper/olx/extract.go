package olx

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"olx-scraper/models"
)

// ExtractCandidates parses a list page's markup into listing candidates.
// Cards missing the title or the link are expected noise and are skipped
// silently; an empty result is valid (the caller decides whether to warn).
func ExtractCandidates(markup string, schema Schema, pageURL string) ([]*models.ListingCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse list markup: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url %q: %w", pageURL, err)
	}

	var candidates []*models.ListingCandidate
	doc.Find(schema.AdsBlock).Each(func(_ int, card *goquery.Selection) {
		href, _ := card.Find(schema.AdTitleURL).First().Attr("href")
		title := strings.TrimSpace(card.Find(schema.AdTitle).First().Text())
		if href == "" || title == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		candidates = append(candidates, &models.ListingCandidate{
			Title:     title,
			Price:     strings.TrimSpace(card.Find(schema.AdPrice).First().Text()),
			DetailURL: base.ResolveReference(ref).String(),
		})
	})

	return candidates, nil
}

// ExtractDetail parses a detail page's markup into the detail-stage fields
// of a Record. Every field is extracted independently; a missing selector
// match leaves the field absent and never blocks the others.
func ExtractDetail(markup string, schema Schema) (*models.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse detail markup: %w", err)
	}

	rec := &models.Record{
		PublishedAt:  strings.TrimSpace(doc.Find(schema.AdPostedAt).First().Text()),
		UserName:     strings.TrimSpace(doc.Find(schema.UserName).First().Text()),
		UserScore:    strings.TrimSpace(doc.Find(schema.UserScore).First().Text()),
		UserSince:    strings.TrimSpace(doc.Find(schema.UserRegistration).First().Text()),
		UserLastSeen: strings.TrimSpace(doc.Find(schema.UserLastSeen).First().Text()),
		ViewCounter:  strings.TrimSpace(doc.Find(schema.ViewCounter).First().Text()),
	}

	// The footer exposes the announcement id as a bare text node inside the
	// section's span, so it is read through the child path and re-spaced.
	rec.AnnouncementID = strings.Join(strings.Fields(doc.Find(schema.AdID).First().Text()), " ")

	// Location lives in the sibling subtree of the hidden map overlay.
	overlay := doc.Find(schema.MapOverlay).First()
	if overlay.Length() > 0 {
		rec.Location = strings.Join(textNodes(overlay.Parent().Find("svg + div")), " ")
	}

	doc.Find(schema.PhotoBlock).Each(func(_ int, block *goquery.Selection) {
		block.Find("img").Each(func(_ int, img *goquery.Selection) {
			if src, ok := img.Attr("src"); ok && src != "" {
				rec.ImageURLs = append(rec.ImageURLs, src)
			}
		})
	})

	rec.Tags = textNodes(doc.Find(schema.AdTags).First())
	rec.Description = strings.Join(textNodes(doc.Find(schema.DescriptionParts)), " ")

	return rec, nil
}

// ExtractPhone reads the revealed contact phone from the page markup.
// Returns the empty string when no phone is visible.
func ExtractPhone(markup string, schema Schema) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find(schema.ContactPhone).First().Text())
}

// textNodes collects the trimmed, non-empty text nodes under sel in document
// order.
func textNodes(sel *goquery.Selection) []string {
	var parts []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			node := c.Get(0)
			if node.Type == html.TextNode {
				if t := strings.TrimSpace(node.Data); t != "" {
					parts = append(parts, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(sel)
	return parts
}
