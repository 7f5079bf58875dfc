package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler serves the root and diagnostic endpoints
type HealthHandler struct {
	db     *pgxpool.Pool
	dbName string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *pgxpool.Pool, dbName string) *HealthHandler {
	return &HealthHandler{db: db, dbName: dbName}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Matrimonial API running"})
}

// Test handles GET /test, reporting backend and database status along with
// the visible tables.
func (h *HealthHandler) Test(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"tables":            []string{},
	}

	if err := h.db.Ping(ctx); err != nil {
		response["database"] = "error: " + err.Error()
		respondJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["database_name"] = h.dbName
	response["connection_status"] = "connected"

	tables := []string{}
	rows, err := h.db.Query(ctx, `SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var name string
			if rows.Scan(&name) == nil {
				tables = append(tables, name)
			}
		}
	}
	response["tables"] = tables

	respondJSON(w, http.StatusOK, response)
}
