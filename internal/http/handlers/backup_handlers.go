package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// BackupHandler godoc
// @Summary Copy both ledger files into timestamped backups
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {string} string "Internal error"
// @Router /backup [post]
func BackupHandler(w http.ResponseWriter, r *http.Request) {
	created, err := backupManager.BackupAll()
	if err != nil {
		http.Error(w, "backup failed", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "backup", strings.Join(created, ", "))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"files":   created,
		"message": "backup complete",
	})
}

// ExportHandler godoc
// @Summary Export one ledger table as a CSV copy
// @Tags backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param export body ExportRequest true "Table to export (products|transactions)"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Unknown table"
// @Failure 500 {string} string "Internal error"
// @Router /export [post]
func ExportHandler(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sources := backupManager.Sources()
	var src string
	for _, s := range sources {
		if strings.Contains(s, req.Table) && req.Table != "" {
			src = s
			break
		}
	}
	if src == "" {
		http.Error(w, "table must be products or transactions", http.StatusBadRequest)
		return
	}

	path, err := backupManager.Export(src)
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	auditLogger.Log(r.Context(), usernameFromRequest(r), "export", path)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"file": path})
}

// ActivityHandler godoc
// @Summary Recent operator activity entries
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {array} audit.Entry
// @Failure 500 {string} string "Internal error"
// @Router /activity [get]
func ActivityHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := auditLogger.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, "could not read activity log", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
