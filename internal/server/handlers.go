package server

import (
	"encoding/json"
	"net/http"

	"github.com/julianstephens/levos/internal/autoblock"
	"github.com/julianstephens/levos/internal/logger"
	"github.com/julianstephens/levos/internal/models"
	"github.com/julianstephens/levos/internal/scenario"
)

type generateAutoBlocksRequest struct {
	OperationStart    float64 `json:"operationStart"`
	OperationDuration int     `json:"operationDuration"`
}

type generateAutoBlocksResponse struct {
	Blocks []models.ScheduleBlock `json:"blocks"`
}

type applyScenarioRequest struct {
	Scenario       string `json:"scenario"`
	OperationCount int    `json:"operationCount"`
	Context        string `json:"context"`
}

type applyScenarioResponse struct {
	Schedule []models.ScheduleBlock `json:"schedule"`
	Scenario string                 `json:"scenario"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) autoBlocksHandler(w http.ResponseWriter, r *http.Request) {
	var req generateAutoBlocksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	blocks := autoblock.Generate(req.OperationStart, req.OperationDuration)
	logger.Debug("generated auto blocks", "operationStart", req.OperationStart, "count", len(blocks))
	writeJSON(w, generateAutoBlocksResponse{Blocks: ensureBlocks(blocks)})
}

func (s *Server) applyScenarioHandler(w http.ResponseWriter, r *http.Request) {
	var req applyScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.OperationCount == 0 {
		req.OperationCount = 1
	}

	schedule := s.expander.Apply(req.Scenario, req.OperationCount, req.Context)
	logger.Debug("applied scenario", "scenario", req.Scenario, "blocks", len(schedule))
	writeJSON(w, applyScenarioResponse{Schedule: ensureBlocks(schedule), Scenario: req.Scenario})
}

func (s *Server) detectScenarioHandler(w http.ResponseWriter, r *http.Request) {
	var schedule []models.ScheduleBlock
	if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	writeJSON(w, scenario.Detect(schedule))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// ensureBlocks keeps empty results as [] rather than null on the wire.
func ensureBlocks(blocks []models.ScheduleBlock) []models.ScheduleBlock {
	if blocks == nil {
		return []models.ScheduleBlock{}
	}
	return blocks
}
