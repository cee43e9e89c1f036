package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/ingestion"
	"github.com/Aniket-Subudh1/EventSentix/internal/models"
	"github.com/Aniket-Subudh1/EventSentix/internal/report"
	"github.com/Aniket-Subudh1/EventSentix/internal/store"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func createEventHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event models.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			writeError(w, http.StatusBadRequest, "invalid event payload")
			return
		}
		if event.Name == "" || event.EndDate.IsZero() {
			writeError(w, http.StatusBadRequest, "event name and end_date are required")
			return
		}

		created, err := st.CreateEvent(r.Context(), event)
		if err != nil {
			logrus.Errorf("Failed to create event: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create event")
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func ingestFeedbackHandler(st store.Store, svc *ingestion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		if _, err := st.FindEvent(r.Context(), eventID); err != nil {
			writeStoreError(w, eventID, err)
			return
		}

		var fb models.Feedback
		if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
			writeError(w, http.StatusBadRequest, "invalid feedback payload")
			return
		}
		fb.EventID = eventID

		stored, err := svc.Ingest(r.Context(), fb)
		if err != nil {
			logrus.WithField("event_id", eventID).Errorf("Failed to ingest feedback: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to ingest feedback")
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	}
}

func reportHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := generateReport(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

// insightsHandler slices the full report down to its insight list; the engine
// has no partial-generation mode, so the report is generated once and sliced.
func insightsHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := generateReport(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"event_id": rep.Event.ID,
			"insights": rep.Insights,
		})
	}
}

func recommendationsHandler(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := generateReport(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"event_id":        rep.Event.ID,
			"recommendations": rep.Recommendations,
		})
	}
}

func generateReport(w http.ResponseWriter, r *http.Request, svc *report.Service) (*models.Report, bool) {
	eventID := mux.Vars(r)["id"]
	force := r.URL.Query().Get("force") == "true"

	rep, err := svc.GenerateReport(r.Context(), eventID, report.Options{Force: force})
	if err != nil {
		var notYet *report.NotYetAvailableError
		switch {
		case errors.Is(err, store.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "event not found")
		case errors.As(err, &notYet):
			writeError(w, http.StatusBadRequest, notYet.Message)
		default:
			logrus.WithField("event_id", eventID).Errorf("Report generation failed: %v", err)
			writeError(w, http.StatusInternalServerError, "report generation failed")
		}
		return nil, false
	}
	return rep, true
}

func startStreamHandler(svc *ingestion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		if err := svc.StartStream(eventID); err != nil {
			writeStoreError(w, eventID, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "stream started", "event_id": eventID})
	}
}

func stopStreamHandler(svc *ingestion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		svc.StopStream(eventID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "stream stopped", "event_id": eventID})
	}
}

func activeStreamsHandler(registry *ingestion.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"active": registry.ActiveEvents()})
	}
}

func writeStoreError(w http.ResponseWriter, eventID string, err error) {
	if errors.Is(err, store.ErrEventNotFound) {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	logrus.WithField("event_id", eventID).Errorf("Store error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
