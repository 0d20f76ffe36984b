package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/voltmart/internal/models"
)

func setupStorageRepositoryTest(t *testing.T) *GormStorageRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		t.Fatalf("migrate storage entries failed: %v", err)
	}
	return NewStorageRepository(db)
}

func TestStorageGetByKeyMissing(t *testing.T) {
	repo := setupStorageRepositoryTest(t)
	entry, err := repo.GetByKey("orders")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for missing key, got %+v", entry)
	}
}

func TestStorageUpsertCreatesAndUpdates(t *testing.T) {
	repo := setupStorageRepositoryTest(t)
	created, err := repo.Upsert("orders", "[]")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Value != "[]" {
		t.Fatalf("unexpected value: %s", created.Value)
	}

	updated, err := repo.Upsert("orders", `[{"id":"ORD1"}]`)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update should reuse the same row: %d vs %d", updated.ID, created.ID)
	}

	entry, err := repo.GetByKey("orders")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry == nil || entry.Value != `[{"id":"ORD1"}]` {
		t.Fatalf("unexpected stored value: %+v", entry)
	}
}

func TestStoragePreservesRawText(t *testing.T) {
	repo := setupStorageRepositoryTest(t)
	raw := "{definitely not json"
	if _, err := repo.Upsert("orders", raw); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	entry, err := repo.GetByKey("orders")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if entry == nil || entry.Value != raw {
		t.Fatalf("raw text should round trip unchanged, got %+v", entry)
	}
}
