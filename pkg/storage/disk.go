// Package storage abstracts where LocalShop's flat data files live.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once (e.g. in internal/server/server.go):
//	storage.Connect()
//
//	// default disk
//	storage.Put("data/orders.json", data)
//	data, _ := storage.Get("data/products.json")
//
//	// named disk
//	storage.Use("s3").Put("data/orders.json", data)
package storage

// Disk is the filesystem driver interface. The JSON collection store only
// needs whole-file reads and writes, so the surface is deliberately small.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path (meaningful for public disks / S3).
	URL(path string) string
}
