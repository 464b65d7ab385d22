package registration

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"churchfeed-app/internal/domain/plans"
)

func testPending() Pending {
	return Pending{
		RegistrationData: Input{
			ChurchName:    "Grace Fellowship",
			ChurchAddress: "1 Main St",
			IsHq:          true,
			AdminName:     "Jamie Doe",
			AdminRole:     "Head Pastor",
			AdminPhone:    "+15550001111",
			AdminEmail:    "jamie@example.com",
			AdminPassword: "s3cretpass",
			MemberCount:   plans.Tier1,
			WantsTrial:    true,
		},
		SelectedTier: plans.Tier1,
		CreatedAt:    time.Now().UnixMilli(),
	}
}

func newTestFileCache(t *testing.T) *FileCache {
	t.Helper()
	return NewFileCache(filepath.Join(t.TempDir(), "pending.json"))
}

func TestFileCache_SaveLoad(t *testing.T) {
	t.Run("load after save returns a deep-equal value", func(t *testing.T) {
		cache := newTestFileCache(t)
		p := testPending()

		if err := cache.Save(p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := cache.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected a pending registration, got nil")
		}
		if !reflect.DeepEqual(*got, p) {
			t.Errorf("loaded value differs:\n got %+v\nwant %+v", *got, p)
		}
	})

	t.Run("save overwrites the existing entry", func(t *testing.T) {
		cache := newTestFileCache(t)
		first := testPending()
		second := testPending()
		second.RegistrationData.ChurchName = "New Hope Chapel"

		if err := cache.Save(first); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := cache.Save(second); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, _ := cache.Load()
		if got == nil || got.RegistrationData.ChurchName != "New Hope Chapel" {
			t.Errorf("expected second save to win, got %+v", got)
		}
	})
}

func TestFileCache_Clear(t *testing.T) {
	t.Run("load returns nil after clear", func(t *testing.T) {
		cache := newTestFileCache(t)
		if err := cache.Save(testPending()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := cache.Clear(); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		got, err := cache.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after clear, got %+v", got)
		}
	})

	t.Run("clearing an empty slot is not an error", func(t *testing.T) {
		cache := newTestFileCache(t)
		if err := cache.Clear(); err != nil {
			t.Errorf("Clear on empty slot failed: %v", err)
		}
		if err := cache.Clear(); err != nil {
			t.Errorf("second Clear failed: %v", err)
		}
	})
}

func TestFileCache_Load(t *testing.T) {
	t.Run("empty slot loads as nil", func(t *testing.T) {
		cache := newTestFileCache(t)
		got, err := cache.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("unparseable content loads as absent, not as an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pending.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatal(err)
		}
		cache := NewFileCache(path)

		got, err := cache.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil for corrupt content, got %+v", got)
		}
	})
}
