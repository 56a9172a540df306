package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/kotaratanaka/IFA/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Sessions and the wizard surface under them
	mux.HandleFunc("/api/sessions/", s.routeSessions)
	mux.HandleFunc("/api/sessions", s.handleSessionRoot)

	// Vocabularies for the wizard forms
	mux.HandleFunc("/api/vocab/subcategories", s.handleSubCategories)
	mux.HandleFunc("/api/vocab/regions", s.handleRegions)
}

// routeSessions dispatches /api/sessions/{id}/* to the appropriate handler.
func (s *Server) routeSessions(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	if path == "" {
		s.handleSessionRoot(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		s.handleSession(w, r, id)
	case "profile":
		s.handleProfile(w, r, id)
	case "holdings":
		s.handleHoldingAdd(w, r, id)
	case "holdings/totals":
		s.handleHoldingTotals(w, r, id)
	case "proposed":
		s.handleProposedAdd(w, r, id)
	case "proposed/totals":
		s.handleProposedTotals(w, r, id)
	case "settings/count":
		s.handleSettingsCount(w, r, id)
	case "settings/subcategories":
		s.handleSettingsSubCategories(w, r, id)
	case "settings/resolved":
		s.handleSettingsResolved(w, r, id)
	case "recommendations":
		s.handleRecommendations(w, r, id)
	case "import":
		s.handleImport(w, r, id)
	case "report":
		s.handleReport(w, r, id)
	case "report/views":
		s.handleReportViews(w, r, id)
	case "rewrite":
		s.handleRewrite(w, r, id)
	case "export":
		s.handleExport(w, r, id)
	default:
		if strings.HasPrefix(subpath, "holdings/") {
			s.handleHoldingItem(w, r, id, strings.TrimPrefix(subpath, "holdings/"))
		} else if strings.HasPrefix(subpath, "proposed/") {
			s.handleProposedItem(w, r, id, strings.TrimPrefix(subpath, "proposed/"))
		} else {
			WriteError(w, http.StatusNotFound, "Not found")
		}
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       s.app.Config.Environment,
		"storage_path":      s.app.Config.Storage.Path,
		"logging_level":     s.app.Config.Logging.Level,
		"default_amount":    s.app.Config.Proposal.DefaultAmount,
		"base_currency":     s.app.Config.Proposal.BaseCurrency,
		"gemini_configured": s.app.AIClient != nil,
		"uptime":            time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
