package storage

import "olx-scraper/models"

// RecordSink consumes finished records one at a time, in the order the
// crawler completes them. Ownership of the record transfers to the sink.
type RecordSink interface {
	Write(rec *models.Record) error
	Close() error
}

// RecordStore is the durable backend for the cleaned dataset.
type RecordStore interface {
	WriteAll(records []*models.Record) error
	FetchAll() ([]*models.Record, error)
	Close() error
}
