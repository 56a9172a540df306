package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kotaratanaka/IFA/internal/models"
	"github.com/kotaratanaka/IFA/internal/services/ledger"
	"github.com/kotaratanaka/IFA/internal/services/settings"
	"github.com/kotaratanaka/IFA/internal/services/slides"
)

const maxUploadSize = 20 << 20 // 20MB

// loadSession fetches the session or writes a 404.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request, id string) (*models.Session, bool) {
	sess, err := s.app.SessionService.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Session not found: %s", id))
		return nil, false
	}
	return sess, true
}

// saveSession persists the session or writes a 500.
func (s *Server) saveSession(w http.ResponseWriter, r *http.Request, sess *models.Session) bool {
	if err := s.app.SessionService.SaveSession(r.Context(), sess); err != nil {
		s.logger.Error().Err(err).Str("session", sess.ID).Msg("Failed to save session")
		WriteError(w, http.StatusInternalServerError, "Failed to save session")
		return false
	}
	return true
}

// requireAI writes a 503 when no AI client is configured.
func (s *Server) requireAI(w http.ResponseWriter) bool {
	if s.app.AIClient == nil {
		WriteError(w, http.StatusServiceUnavailable, "AI backend is not configured")
		return false
	}
	return true
}

// --- Session lifecycle ---

// handleSessionRoot handles POST /api/sessions.
func (s *Server) handleSessionRoot(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		ClientName string `json:"client_name"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := s.app.SessionService.CreateSession(r.Context(), req.ClientName)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create session")
		WriteError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	WriteJSON(w, http.StatusCreated, sess)
}

// handleSession handles GET and DELETE /api/sessions/{id}.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		sess, ok := s.loadSession(w, r, id)
		if !ok {
			return
		}
		WriteJSON(w, http.StatusOK, sess)
	case http.MethodDelete:
		if err := s.app.SessionService.DeleteSession(r.Context(), id); err != nil {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Session not found: %s", id))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}

// handleProfile handles PUT /api/sessions/{id}/profile. The holding ledger
// is managed through its own routes and survives a profile replace.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	var profile models.ClientProfile
	if !DecodeJSON(w, r, &profile) {
		return
	}

	profile.Holdings = sess.Profile.Holdings
	sess.Profile = profile

	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Profile)
}

// --- Holding ledger ---

func (s *Server) handleHoldingAdd(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	var asset models.Asset
	if !DecodeJSON(w, r, &asset) {
		return
	}

	sess.Profile.Holdings = ledger.Add(sess.Profile.Holdings, asset)
	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusCreated, sess.Profile.Holdings[len(sess.Profile.Holdings)-1])
}

func (s *Server) handleHoldingItem(w http.ResponseWriter, r *http.Request, id, assetID string) {
	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		sess.Profile.Holdings = ledger.Update(sess.Profile.Holdings, assetID, req.Field, req.Value)
		if !s.saveSession(w, r, sess) {
			return
		}
		WriteJSON(w, http.StatusOK, sess.Profile.Holdings)
	case http.MethodDelete:
		sess.Profile.Holdings = ledger.Remove(sess.Profile.Holdings, assetID)
		if !s.saveSession(w, r, sess) {
			return
		}
		WriteJSON(w, http.StatusOK, sess.Profile.Holdings)
	default:
		RequireMethod(w, r, http.MethodPatch, http.MethodDelete)
	}
}

func (s *Server) handleHoldingTotals(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, ledger.ComputeTotals(sess.Profile.Holdings))
}

// --- Proposed ledger ---

func (s *Server) handleProposedAdd(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	var candidate models.Asset
	if !DecodeJSON(w, r, &candidate) {
		return
	}

	sess.ProposedAssets = s.app.RecommendService.AddToProposal(sess.ProposedAssets, candidate)
	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusCreated, sess.ProposedAssets[len(sess.ProposedAssets)-1])
}

func (s *Server) handleProposedItem(w http.ResponseWriter, r *http.Request, id, assetID string) {
	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		sess.ProposedAssets = ledger.Update(sess.ProposedAssets, assetID, req.Field, req.Value)
		if !s.saveSession(w, r, sess) {
			return
		}
		WriteJSON(w, http.StatusOK, sess.ProposedAssets)
	case http.MethodDelete:
		sess.ProposedAssets = ledger.Remove(sess.ProposedAssets, assetID)
		if !s.saveSession(w, r, sess) {
			return
		}
		WriteJSON(w, http.StatusOK, sess.ProposedAssets)
	default:
		RequireMethod(w, r, http.MethodPatch, http.MethodDelete)
	}
}

func (s *Server) handleProposedTotals(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, ledger.ComputeTotals(sess.ProposedAssets))
}

// --- Proposal settings ---

func (s *Server) handleSettingsCount(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	var req struct {
		Type  models.AssetType `json:"type"`
		Count int              `json:"count"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess.Settings = settings.SetCount(sess.Settings, req.Type, req.Count)
	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Settings)
}

func (s *Server) handleSettingsSubCategories(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	var req struct {
		Type          models.AssetType `json:"type"`
		SubCategories []string         `json:"sub_categories"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess.Settings = settings.SelectSubCategories(sess.Settings, req.Type, req.SubCategories)
	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusOK, sess.Settings)
}

func (s *Server) handleSettingsResolved(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, settings.Resolve(sess.Settings))
}

// --- Recommendations ---

// handleRecommendations handles POST /api/sessions/{id}/recommendations.
// Candidates are returned for review, not added to the ledger; the adviser
// adds chosen ones individually via the proposed route.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.requireAI(w) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	if len(settings.Resolve(sess.Settings)) == 0 {
		WriteError(w, http.StatusBadRequest, "No proposal settings selected")
		return
	}

	candidates, err := s.app.RecommendService.Fetch(r.Context(), sess)
	if err != nil {
		s.logger.Error().Err(err).Str("session", id).Msg("Recommendation fetch failed")
		WriteError(w, http.StatusBadGateway, "Failed to fetch recommendations, please retry")
		return
	}

	WriteJSON(w, http.StatusOK, candidates)
}

// --- Document import ---

// handleImport handles POST /api/sessions/{id}/import (multipart upload).
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.requireAI(w) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	result := s.app.ImportService.Import(r.Context(), sess, data, mimeType, header.Filename)

	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// --- Report pipeline ---

// handleReport handles POST /api/sessions/{id}/report. Assembly never
// fails outright; on total failure a minimal error deck comes back.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.requireAI(w) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}

	presentation := s.app.ReportService.Assemble(r.Context(), sess)
	sess.Presentation = presentation

	if !s.saveSession(w, r, sess) {
		return
	}
	WriteJSON(w, http.StatusOK, presentation)
}

// handleReportViews handles GET /api/sessions/{id}/report/views and returns
// render-ready slide views for the generated presentation.
func (s *Server) handleReportViews(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}
	if sess.Presentation == nil {
		WriteError(w, http.StatusNotFound, "No presentation generated for this session")
		return
	}

	WriteJSON(w, http.StatusOK, slides.NormalizeAll(sess.Presentation))
}

// handleRewrite handles POST /api/sessions/{id}/rewrite.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if !s.requireAI(w) {
		return
	}

	if _, ok := s.loadSession(w, r, id); !ok {
		return
	}

	var req struct {
		Text        string `json:"text"`
		Instruction string `json:"instruction"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	rewritten := s.app.ReportService.Rewrite(r.Context(), req.Text, req.Instruction)
	WriteJSON(w, http.StatusOK, map[string]string{"text": rewritten})
}

// handleExport handles GET /api/sessions/{id}/export and downloads the
// presentation as a deck document named after the client.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sess, ok := s.loadSession(w, r, id)
	if !ok {
		return
	}
	if sess.Presentation == nil {
		WriteError(w, http.StatusNotFound, "No presentation generated for this session")
		return
	}

	filename, data, err := s.app.DeckWriter.WriteDeck(r.Context(), sess.Presentation)
	if err != nil {
		s.logger.Error().Err(err).Str("session", id).Msg("Deck export failed")
		WriteError(w, http.StatusInternalServerError, "Failed to export deck")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// --- Vocabularies ---

// handleSubCategories handles GET /api/vocab/subcategories[?type=stock].
func (s *Server) handleSubCategories(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if t := r.URL.Query().Get("type"); t != "" {
		WriteJSON(w, http.StatusOK, models.SubCategoriesFor(models.AssetType(t)))
		return
	}

	all := make(map[models.AssetType][]string, len(models.ProposalTypeOrder))
	for _, t := range models.ProposalTypeOrder {
		all[t] = models.SubCategoriesFor(t)
	}
	WriteJSON(w, http.StatusOK, all)
}

// handleRegions handles GET /api/vocab/regions.
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"regions":           models.Regions,
		"family_structures": models.FamilyStructures,
	})
}
