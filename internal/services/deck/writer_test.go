package deck

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kotaratanaka/IFA/internal/models"
)

func TestWriteDeck_FilenameFromClientName(t *testing.T) {
	w := NewJSONWriter()

	filename, data, err := w.WriteDeck(context.Background(), &models.PresentationData{
		ID:         "pres-1",
		ClientName: "山田太郎",
		Slides:     []models.SlideContent{{ID: "slide-1", Type: models.SlideTitle}},
	})
	if err != nil {
		t.Fatalf("WriteDeck: %v", err)
	}
	if filename != "山田太郎_proposal.json" {
		t.Errorf("filename = %q, want 山田太郎_proposal.json", filename)
	}

	var decoded models.PresentationData
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("deck bytes are not valid JSON: %v", err)
	}
	if decoded.ID != "pres-1" || len(decoded.Slides) != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteDeck_MissingClientName(t *testing.T) {
	w := NewJSONWriter()

	filename, _, err := w.WriteDeck(context.Background(), &models.PresentationData{ID: "pres-2"})
	if err != nil {
		t.Fatalf("WriteDeck: %v", err)
	}
	if filename != "proposal.json" {
		t.Errorf("filename = %q, want proposal.json", filename)
	}
}
