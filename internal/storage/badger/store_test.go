package badger

import (
	"context"
	"testing"
	"time"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionStorage_RoundTrip(t *testing.T) {
	storage := NewSessionStorage(newTestStore(t), common.NewSilentLogger())
	ctx := context.Background()

	session := &models.Session{
		ID: "session-rt",
		Profile: models.ClientProfile{
			Name:   "山田太郎",
			Region: "東京都",
			Holdings: []models.Asset{
				{ID: "asset-1", Name: "トヨタ自動車", Type: models.AssetTypeStock, Amount: 500000},
			},
		},
		Settings:  models.NewProposalSettings(),
		CreatedAt: time.Now(),
	}
	session.Settings.Counts[models.AssetTypeStock] = 2

	if err := storage.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := storage.GetSession(ctx, "session-rt")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Profile.Name != "山田太郎" {
		t.Errorf("Profile.Name = %q", got.Profile.Name)
	}
	if len(got.Profile.Holdings) != 1 || got.Profile.Holdings[0].Amount != 500000 {
		t.Errorf("Holdings = %+v", got.Profile.Holdings)
	}
	if got.Settings.Counts[models.AssetTypeStock] != 2 {
		t.Errorf("Settings.Counts = %+v", got.Settings.Counts)
	}
}

func TestSessionStorage_GetMissing(t *testing.T) {
	storage := NewSessionStorage(newTestStore(t), common.NewSilentLogger())

	if _, err := storage.GetSession(context.Background(), "session-missing"); err == nil {
		t.Error("expected error for missing session")
	}
}

func TestSessionStorage_DeleteAndList(t *testing.T) {
	storage := NewSessionStorage(newTestStore(t), common.NewSilentLogger())
	ctx := context.Background()

	for _, id := range []string{"session-a", "session-b"} {
		if err := storage.SaveSession(ctx, &models.Session{ID: id}); err != nil {
			t.Fatalf("SaveSession(%s): %v", id, err)
		}
	}

	if err := storage.DeleteSession(ctx, "session-a"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}

	ids, err := storage.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(ids) != 1 || ids[0] != "session-b" {
		t.Errorf("ids = %v, want [session-b]", ids)
	}
}

func TestSessionStorage_DeleteMissingIsNoOp(t *testing.T) {
	storage := NewSessionStorage(newTestStore(t), common.NewSilentLogger())

	if err := storage.DeleteSession(context.Background(), "session-missing"); err != nil {
		t.Errorf("DeleteSession(missing) = %v, want nil", err)
	}
}

func TestPresentationStorage_RoundTrip(t *testing.T) {
	storage := NewPresentationStorage(newTestStore(t), common.NewSilentLogger())
	ctx := context.Background()

	p := &models.PresentationData{
		ID:         "pres-rt",
		Title:      "山田太郎様 資産運用のご提案",
		ClientName: "山田太郎",
		Slides: []models.SlideContent{
			{ID: "slide-1", Type: models.SlideTitle, Title: "ご提案"},
		},
		GeneratedAt: time.Now(),
	}

	if err := storage.SavePresentation(ctx, p); err != nil {
		t.Fatalf("SavePresentation: %v", err)
	}

	got, err := storage.GetPresentation(ctx, "pres-rt")
	if err != nil {
		t.Fatalf("GetPresentation: %v", err)
	}
	if got.ClientName != "山田太郎" || len(got.Slides) != 1 {
		t.Errorf("got = %+v", got)
	}

	if err := storage.DeletePresentation(ctx, "pres-rt"); err != nil {
		t.Fatalf("DeletePresentation: %v", err)
	}
	if _, err := storage.GetPresentation(ctx, "pres-rt"); err == nil {
		t.Error("expected error after delete")
	}
}
