package service

import "io"

// DocumentStore is the slice of the storage layer the services need.
type DocumentStore interface {
	Save(userID int64, filename string, r io.Reader) (string, error)
	Remove(userID int64, filename string) error
	Path(userID int64, filename string) string
}
