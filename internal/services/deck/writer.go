// Package deck renders finished presentations into downloadable deck files.
package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/models"
)

// Compile-time interface check
var _ interfaces.DeckWriter = (*JSONWriter)(nil)

// JSONWriter writes the presentation as a JSON deck document. Slide
// rendering proper happens in an external tool; this is the interchange
// format it consumes.
type JSONWriter struct{}

// NewJSONWriter creates a new JSON deck writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// WriteDeck renders the presentation to JSON bytes. The suggested file
// name derives from the client's display name.
func (w *JSONWriter) WriteDeck(_ context.Context, presentation *models.PresentationData) (string, []byte, error) {
	data, err := json.MarshalIndent(presentation, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encode deck: %w", err)
	}

	filename := "proposal.json"
	if name := strings.TrimSpace(presentation.ClientName); name != "" {
		filename = fmt.Sprintf("%s_proposal.json", name)
	}
	return filename, data, nil
}
