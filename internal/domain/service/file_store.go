package service

import "context"

// FileStore abstracts image/document storage for account pictures, shop
// pictures and permit scans. The core only persists the returned path; the
// bytes never enter a database transaction.
type FileStore interface {
	// Store writes the content under the given category (e.g. "user_pics",
	// "shop_pics/<shop id>") with a randomized filename derived from the
	// original one, and returns the storage path.
	Store(ctx context.Context, category, filename string, content []byte) (string, error)
}
