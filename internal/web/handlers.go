package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"liaison/internal/letter"
	"liaison/internal/logging"
	"liaison/internal/roster"
)

// handleHealth reports liveness and the size of the loaded roster.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"rosterSize": s.currentIndex().Len(),
	})
}

// handleSearch answers type-ahead lookups. Query parameters: q is the
// search text, by selects the mode ("id" or "name", default "name").
// An empty q is a normal no-match outcome, not an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	by := r.URL.Query().Get("by")

	idx := s.currentIndex()
	var matches []roster.Record
	switch by {
	case "id":
		matches = idx.FindByEmployeeID(q)
	case "", "name":
		matches = idx.FindByName(q)
	default:
		respondError(w, http.StatusBadRequest, "by must be \"id\" or \"name\"")
		return
	}

	if matches == nil {
		matches = []roster.Record{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"matches": matches,
		"count":   len(matches),
	})
}

// handleHospitals returns the fixed facility directory.
func (s *Server) handleHospitals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"hospitals": s.letters.Hospitals(),
	})
}

// handleRegistry lists the persisted issuance ledger.
func (s *Server) handleRegistry(w http.ResponseWriter, r *http.Request) {
	records, err := s.letters.RegistryRecords()
	if err != nil {
		logging.FromContext(r.Context()).Error("read registry", "error", err)
		respondError(w, http.StatusInternalServerError, "registry table unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"issuances": records,
		"count":     len(records),
	})
}

// handleIssueLetter renders a letter from the submitted form fields and
// records the issuance. Duplicate submissions and ledger failures are
// reported inside a successful response — the letter is never blocked
// by the registry.
func (s *Server) handleIssueLetter(w http.ResponseWriter, r *http.Request) {
	var req letter.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.letters.Issue(r.Context(), req)
	if err != nil {
		if errors.Is(err, letter.ErrUnknownHospital) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.FromContext(r.Context()).Error("issue letter", "error", err)
		respondError(w, http.StatusInternalServerError, "letter could not be rendered")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// handleRosterReload re-reads the roster source and swaps the lookup
// index wholesale. A failed reload keeps the current roster in place.
func (s *Server) handleRosterReload(w http.ResponseWriter, r *http.Request) {
	records, err := s.reload()
	if err != nil {
		logging.FromContext(r.Context()).Error("roster reload", "error", err)
		respondError(w, http.StatusInternalServerError, "roster could not be reloaded")
		return
	}

	s.swapIndex(roster.NewIndex(records))
	logging.FromContext(r.Context()).Info("roster reloaded", "records", len(records))
	respondJSON(w, http.StatusOK, map[string]any{
		"rosterSize": len(records),
	})
}
