package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/listeningclub/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	gdb := setupServiceTestDB(t, &db.GalleryImage{})
	svc := NewGalleryService(gdb)

	_, err := svc.Create(GalleryInput{Caption: "no image"})
	if !errors.Is(err, ErrGalleryImageMissing) {
		t.Fatalf("expected ErrGalleryImageMissing, got %v", err)
	}
}

func TestGalleryCreateDefaultsActive(t *testing.T) {
	gdb := setupServiceTestDB(t, &db.GalleryImage{})
	svc := NewGalleryService(gdb)

	item, err := svc.Create(GalleryInput{Caption: "  club meetup  ", ImageURL: "/uploads/a.webp", ImageWidth: 800, ImageHeight: 600})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !item.IsActive {
		t.Fatalf("new images default to active")
	}
	if item.Caption != "club meetup" {
		t.Fatalf("expected trimmed caption, got %q", item.Caption)
	}
}

func TestGalleryListActivePagination(t *testing.T) {
	gdb := setupServiceTestDB(t, &db.GalleryImage{})
	svc := NewGalleryService(gdb)

	inactive := false
	for i := 0; i < 15; i++ {
		input := GalleryInput{ImageURL: fmt.Sprintf("/uploads/%d.webp", i), DisplayOrder: i}
		if i%5 == 0 {
			input.IsActive = &inactive
		}
		if _, err := svc.Create(input); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	result, err := svc.ListActive(1, 12)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 12 {
		t.Fatalf("expected 12 active images, got %d", result.Total)
	}
	if result.TotalPages != 1 {
		t.Fatalf("expected 1 page, got %d", result.TotalPages)
	}
	for _, item := range result.Items {
		if !item.IsActive {
			t.Fatalf("public listing leaked an inactive image: %+v", item)
		}
	}

	small, err := svc.ListActive(2, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if small.TotalPages != 3 {
		t.Fatalf("expected 3 pages of 5, got %d", small.TotalPages)
	}
	if len(small.Items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(small.Items))
	}
}

func TestGalleryUpdateAndDelete(t *testing.T) {
	gdb := setupServiceTestDB(t, &db.GalleryImage{})
	svc := NewGalleryService(gdb)

	item, err := svc.Create(GalleryInput{ImageURL: "/uploads/old.webp"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	inactive := false
	updated, err := svc.Update(item.ID, GalleryInput{Caption: "updated", ImageURL: "/uploads/new.webp", IsActive: &inactive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImageURL != "/uploads/new.webp" || updated.IsActive {
		t.Fatalf("unexpected updated item %+v", updated)
	}

	url, err := svc.Delete(item.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if url != "/uploads/new.webp" {
		t.Fatalf("delete must report the stored URL, got %q", url)
	}

	if _, err := svc.Get(item.ID); !errors.Is(err, ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound after delete, got %v", err)
	}
}

func TestGalleryNotFound(t *testing.T) {
	gdb := setupServiceTestDB(t, &db.GalleryImage{})
	svc := NewGalleryService(gdb)

	if _, err := svc.Update(999, GalleryInput{ImageURL: "/uploads/x.webp"}); !errors.Is(err, ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound, got %v", err)
	}
	if _, err := svc.Delete(999); !errors.Is(err, ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound, got %v", err)
	}
}
