package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dristi2006/expiry-date-tracker/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newServiceDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Item{},
		&domain.Reminder{},
		&domain.LookbookEntry{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

type stubProducer struct {
	published [][]byte
	fail      bool
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, value)
	return nil
}
