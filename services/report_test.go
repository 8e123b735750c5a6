package services

import (
	"testing"

	"olx-scraper/models"
)

func TestReportEmptyDataset(t *testing.T) {
	s := NewReportService(newTestLogger())
	r := s.Generate(nil)

	if r.TotalRecords != 0 || r.WithPhone != 0 || r.MostViewed != nil {
		t.Errorf("empty dataset should produce zero report, got %+v", r)
	}
}

func TestReportCounts(t *testing.T) {
	s := NewReportService(newTestLogger())
	records := []*models.Record{
		{URL: "u1", PhoneNumber: "+380501234567", Description: "desc", Location: "Київ, Оболонський"},
		{URL: "u2", Location: "Київ, Оболонський"},
		{URL: "u3", PhoneNumber: "+380671112233", Location: "Львів"},
		{URL: "u4"},
	}

	r := s.Generate(records)

	if r.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", r.TotalRecords)
	}
	if r.WithPhone != 2 {
		t.Errorf("WithPhone = %d, want 2", r.WithPhone)
	}
	if r.WithDescription != 1 {
		t.Errorf("WithDescription = %d, want 1", r.WithDescription)
	}
	if r.RecordsByLocation["Київ, Оболонський"] != 2 {
		t.Errorf("location count = %d, want 2", r.RecordsByLocation["Київ, Оболонський"])
	}
	if r.RecordsByLocation["Львів"] != 1 {
		t.Errorf("location count = %d, want 1", r.RecordsByLocation["Львів"])
	}
}

func TestReportMostViewed(t *testing.T) {
	s := NewReportService(newTestLogger())
	records := []*models.Record{
		{URL: "u1", ViewCounter: "Переглядів: 17"},
		{URL: "u2", ViewCounter: "Переглядів: 230"},
		{URL: "u3", ViewCounter: ""},
		{URL: "u4", ViewCounter: "no digits here"},
	}

	r := s.Generate(records)

	if r.MostViewed == nil {
		t.Fatal("MostViewed should be set")
	}
	if r.MostViewed.URL != "u2" {
		t.Errorf("MostViewed = %s, want u2", r.MostViewed.URL)
	}
}
