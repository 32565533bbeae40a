package interfaces

import "context"

// Scanner extracts a barcode and an expiry date from a product label image
// already written to disk.
type Scanner interface {
	ReadBarcode(ctx context.Context, imagePath string) (string, error)
	ReadExpiry(ctx context.Context, imagePath string) (string, error)
}
