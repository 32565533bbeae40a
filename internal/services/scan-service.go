package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/interfaces"
	"github.com/dristi2006/expiry-date-tracker/pkg/imageutil"
	"github.com/google/uuid"
)

const scanMaxWidth = 1600

type ScanService interface {
	Scan(ctx context.Context, image []byte) (*dto.ScanResponse, error)
}

type scanService struct {
	scanner   interfaces.Scanner
	uploadDir string
}

func NewScanService(scanner interfaces.Scanner, uploadDir string) ScanService {
	return &scanService{scanner: scanner, uploadDir: uploadDir}
}

// Scan normalizes the upload, hands it to both readers, and cleans up the
// temp file regardless of outcome. A reader finding nothing is not an error;
// the response just carries an empty barcode or nil expiry.
func (s *scanService) Scan(ctx context.Context, image []byte) (*dto.ScanResponse, error) {
	if len(image) == 0 {
		return nil, ErrValidation
	}

	normalized, err := imageutil.NormalizeToJPEG(image, scanMaxWidth, 90)
	if err != nil {
		return nil, ErrValidation
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, err
	}
	imagePath := filepath.Join(s.uploadDir, fmt.Sprintf("%s.jpg", uuid.NewString()))
	if err := os.WriteFile(imagePath, normalized, 0o644); err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(imagePath); err != nil {
			log.Printf("remove scan temp file error: %v", err)
		}
	}()

	barcode, err := s.scanner.ReadBarcode(ctx, imagePath)
	if err != nil {
		log.Printf("barcode reader error: %v", err)
		barcode = ""
	}

	var expiry *string
	expiryStr, err := s.scanner.ReadExpiry(ctx, imagePath)
	if err != nil {
		log.Printf("expiry reader error: %v", err)
	} else if expiryStr != "" {
		expiry = &expiryStr
	}

	if barcode == "" {
		barcode = "Not found"
	}

	return &dto.ScanResponse{
		Barcode:    barcode,
		ExpiryDate: expiry,
	}, nil
}
