package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/agent"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/dataset"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/profile"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/repository"
)

const maxUploadBytes = 64 << 20

// chatRequest is the body of POST /chat.
type chatRequest struct {
	DatasetID string `json:"dataset_id"`
	Message   string `json:"message"`
	ShowCode  bool   `json:"show_code"`
}

// handleUpload accepts a multipart CSV upload, registers it under a
// fresh dataset id, and returns the preview. Re-uploading starts a new
// conversation: any session for the id is discarded.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing file field: %v", err))
		return
	}
	defer file.Close()

	frame, err := dataset.ReadCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read CSV: %v", err))
		return
	}

	datasetID := uuid.NewString()
	s.datasets.Put(datasetID, frame)

	if err := s.uploads.Create(r.Context(), &repository.UploadRecord{
		DatasetID: datasetID,
		Filename:  header.Filename,
		NumRows:   frame.NumRows(),
		NumCols:   len(frame.Columns),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("recording upload: %v", err))
		return
	}

	// New dataset means new conversation state.
	if err := s.orch.DiscardSession(r.Context(), datasetID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"dataset_id": datasetID,
		"filename":   header.Filename,
		"preview":    profile.BuildPreview(frame),
	})
}

// handleChat runs one orchestrator turn.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.DatasetID == "" {
		writeError(w, http.StatusBadRequest, "dataset_id is required")
		return
	}

	resp, err := s.orch.HandleTurn(r.Context(), agent.TurnRequest{
		DatasetID: req.DatasetID,
		Message:   req.Message,
		ShowCode:  req.ShowCode,
	})
	if err != nil {
		if errors.Is(err, agent.ErrDatasetNotFound) {
			writeError(w, http.StatusNotFound, "invalid dataset_id; upload first via /upload")
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                true,
		"assistant_message": resp.AssistantMessage,
		"preview":           resp.Preview,
		"plan_text":         resp.PlanText,
		"proposed_config":   resp.ProposedConfig,
		"confirmed_config":  resp.ConfirmedConfig,
		"results":           resp.Results,
		"error":             resp.Error,
		"generated_code":    resp.GeneratedCode,
	})
}

// handleListDatasets lists recorded uploads, newest first.
func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.uploads.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type item struct {
		DatasetID string `json:"dataset_id"`
		Filename  string `json:"filename"`
		NumRows   int    `json:"n_rows"`
		NumCols   int    `json:"n_cols"`
		CreatedAt string `json:"created_at"`
	}
	items := make([]item, 0, len(uploads))
	for _, u := range uploads {
		items = append(items, item{
			DatasetID: u.DatasetID,
			Filename:  u.Filename,
			NumRows:   u.NumRows,
			NumCols:   u.NumCols,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "datasets": items})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
