// README: Tests for the notification job trigger endpoint.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/http/handlers"
	"github.com/Blast-git/Journey-Sync/internal/modules/notification"
)

type stubRunner struct {
	report notification.Report
	err    error
	runs   int
}

func (s *stubRunner) Run(_ context.Context) (notification.Report, error) {
	s.runs++
	return s.report, s.err
}

func buildJobsRouter(runner handlers.ReminderRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewJobsHandler(runner)
	r.POST("/api/jobs/notifications", h.ProcessNotifications)
	return r
}

func TestProcessNotifications_Success(t *testing.T) {
	runner := &stubRunner{report: notification.Report{Checked: 5, Sent: 4, Skipped: 2, Failed: 1}}
	r := buildJobsRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/notifications", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if runner.runs != 1 {
		t.Fatalf("runner invoked %d times", runner.runs)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Checked int    `json:"checked"`
		Sent    int    `json:"sent"`
		Failed  int    `json:"failed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Message != "Notifications processed successfully" {
		t.Errorf("envelope = %+v", body)
	}
	if body.Checked != 5 || body.Sent != 4 || body.Failed != 1 {
		t.Errorf("counters = %+v", body)
	}
}

func TestProcessNotifications_FetchFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("fetch active bookings: connection refused")}
	r := buildJobsRouter(runner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/notifications", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("error envelope missing")
	}
}
