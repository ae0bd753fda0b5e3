package handler

import (
	"net/http"

	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/service"
)

// JournalHandler serves the journal read and write endpoints. The same
// handlers back the session routes and the bearer-token routes.
type JournalHandler struct {
	journal *service.JournalService
	reader  *service.ReadService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journal *service.JournalService, reader *service.ReadService) *JournalHandler {
	return &JournalHandler{journal: journal, reader: reader}
}

type writeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EntryID    string `json:"entryId,omitempty"`
	ActivityID string `json:"activityId,omitempty"`
}

// HandleRead handles GET /api/read and GET /api/external requests.
func (h *JournalHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	snapshot, err := h.reader.FetchAll(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// HandleWrite handles POST /api/write and POST /api/external requests.
func (h *JournalHandler) HandleWrite(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	cmd, err := model.DecodeWriteCommand(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	res, err := h.journal.Apply(r.Context(), id.UserID, cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, writeResponse{
		Success:    true,
		Message:    res.Message,
		EntryID:    res.EntryID,
		ActivityID: res.ActivityID,
	})
}
