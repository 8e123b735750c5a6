package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"olx-scraper/models"
)

// viewsRegexp pulls the first integer out of the view-counter text.
var viewsRegexp = regexp.MustCompile(`\d+`)

// ReportService computes the post-run summary over the stored dataset.
type ReportService struct {
	logger *log.Logger
}

// NewReportService creates a ReportService with the given logger.
func NewReportService(logger *log.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate computes the crawl report for a set of records.
func (s *ReportService) Generate(records []*models.Record) *models.CrawlReport {
	report := &models.CrawlReport{
		RecordsByLocation: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	maxViews := -1
	for _, r := range records {
		if r.PhoneNumber != "" {
			report.WithPhone++
		}
		if r.Description != "" {
			report.WithDescription++
		}
		if r.Location != "" {
			report.RecordsByLocation[r.Location]++
		}
		if v, ok := parseViews(r.ViewCounter); ok && v > maxViews {
			maxViews = v
			report.MostViewed = r
		}
	}

	return report
}

// Print renders the report to stdout.
func (s *ReportService) Print(r *models.CrawlReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n%s\n", sep)
	fmt.Printf("  OLX CRAWL SUMMARY\n")
	fmt.Printf("%s\n\n", sep)

	fmt.Printf("  Overview\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Records collected   : %d\n", r.TotalRecords)
	fmt.Printf("  With phone number   : %d\n", r.WithPhone)
	fmt.Printf("  With description    : %d\n", r.WithDescription)
	fmt.Println()

	if r.MostViewed != nil {
		fmt.Printf("  Most Viewed Listing\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.MostViewed.Title, 50))
		fmt.Printf("  Views : %s\n", r.MostViewed.ViewCounter)
		fmt.Printf("  URL   : %s\n", r.MostViewed.URL)
		fmt.Println()
	}

	fmt.Printf("  Records by Location\n")
	fmt.Printf("  %s\n", thin)
	if len(r.RecordsByLocation) == 0 {
		fmt.Printf("  No location data\n")
	} else {
		type locCount struct {
			loc   string
			count int
		}
		var locs []locCount
		for loc, cnt := range r.RecordsByLocation {
			locs = append(locs, locCount{loc, cnt})
		}
		sort.Slice(locs, func(i, j int) bool {
			if locs[i].count != locs[j].count {
				return locs[i].count > locs[j].count
			}
			return locs[i].loc < locs[j].loc
		})
		for _, lc := range locs {
			fmt.Printf("  %-36s (%d)\n", truncate(lc.loc, 34), lc.count)
		}
	}

	fmt.Printf("\n%s\n\n", sep)
}

func parseViews(raw string) (int, bool) {
	m := viewsRegexp.FindString(raw)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
