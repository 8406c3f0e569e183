package store

import "readerd/pkg/domain"

// Store defines persistence operations for readers.
//
// Mutating operations report the affected-row count; a zero count is the
// sole not-found signal and is never an error.
type Store interface {
	CreateReader(name, email string) (domain.Reader, error)
	ListReaders() ([]domain.Reader, error)
	GetReader(id int64) (domain.Reader, bool, error)
	UpdateReader(id int64, fields domain.ReaderUpdate) (int64, error)
	DeleteReader(id int64) (int64, error)
}
