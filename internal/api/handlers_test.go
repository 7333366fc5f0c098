package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/persist"
	"github.com/astralhq/astral/internal/state"
	"github.com/astralhq/astral/internal/suggest"
	"github.com/astralhq/astral/internal/types"
)

const testAPIKey = "test-api-key"

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// memBlob is an in-memory persistence adapter for handler tests.
type memBlob struct {
	data []byte
}

func (m *memBlob) Load(ctx context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, persist.ErrNotFound
	}
	return m.data, nil
}

func (m *memBlob) Save(ctx context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memBlob) Close() error { return nil }

func newTestServer(t *testing.T) (*chi.Mux, *state.Store) {
	t.Helper()
	s, err := state.New(context.Background(), &memBlob{},
		state.WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("state.New: %v", err)
	}
	h := NewHandler(s, suggest.Heuristic{}, testAPIKey, "test", 7, 30)
	return NewRouter(h), s
}

// doJSON performs an authenticated request with an optional JSON body.
func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth_PublicAndReportsCounts(t *testing.T) {
	router, s := newTestServer(t)
	if _, err := s.AddTask(context.Background(), types.NewTask{Title: "one", Status: types.TaskTodo}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (health must not require auth)", w.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want %q", resp.Status, "healthy")
	}
	if resp.Today != "2026-03-15" {
		t.Errorf("today = %q, want %q", resp.Today, "2026-03-15")
	}
	if resp.TaskCount != 1 {
		t.Errorf("taskCount = %d, want 1", resp.TaskCount)
	}
}

func TestAuth_MissingBearerRejected(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var p Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to unmarshal problem: %v", err)
	}
	if p.Type != "https://astral.dev/errors/unauthorized" {
		t.Errorf("problem type = %q", p.Type)
	}
}

func TestAuth_WrongKeyRejected(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCreateArea_ValidationProblem(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/areas", `{"name":"","type":"bogus"}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}

	var p ProblemWithErrors
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to unmarshal problem: %v", err)
	}
	if len(p.Errors) != 2 {
		t.Errorf("len(errors) = %d, want 2 (name required, type enum)", len(p.Errors))
	}
}

func TestCaptureInbox_SuggestsAndLists(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inbox", `{"text":"call the plumber"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var item types.InboxItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("failed to unmarshal item: %v", err)
	}
	if item.SuggestedType != types.InboxTask {
		t.Errorf("suggestedType = %q, want %q", item.SuggestedType, types.InboxTask)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/inbox", "")
	var items []types.InboxItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to unmarshal list: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("unprocessed items = %d, want 1", len(items))
	}
}

func TestProcessInbox_Flow(t *testing.T) {
	router, s := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inbox", `{"text":"fix the bike"}`)
	var item types.InboxItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("failed to unmarshal item: %v", err)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/inbox/"+item.ID+"/process", `{"type":"task"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var processed types.InboxItem
	if err := json.Unmarshal(w.Body.Bytes(), &processed); err != nil {
		t.Fatalf("failed to unmarshal item: %v", err)
	}
	if !processed.Processed {
		t.Error("item not marked processed")
	}

	st := s.Snapshot()
	if len(st.Tasks) != 1 || st.Tasks[0].Title != "fix the bike" {
		t.Errorf("tasks after process = %+v", st.Tasks)
	}

	// The unprocessed list is now empty.
	w = doJSON(t, router, http.MethodGet, "/api/v1/inbox", "")
	var items []types.InboxItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to unmarshal list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("unprocessed items = %d, want 0", len(items))
	}
}

func TestProcessInbox_UnknownID(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inbox/inbox-missing/process", `{"type":"task"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestGoalProgress_Endpoint(t *testing.T) {
	router, s := newTestServer(t)

	target, current := 10.0, 5.0
	goal, err := s.AddGoal(context.Background(), types.NewGoal{
		Title: "Run 10 races", Type: types.GoalNumeric, Quarter: types.Q1, Year: 2026,
		Status: types.GoalActive, TargetMetric: &target, CurrentMetric: &current,
	})
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/goals/"+goal.ID+"/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp GoalProgress
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Progress != 50 {
		t.Errorf("progress = %v, want 50", resp.Progress)
	}
	if resp.Type != string(types.GoalNumeric) {
		t.Errorf("type = %q, want %q", resp.Type, types.GoalNumeric)
	}
}

func TestUpdateGoalMetric_Endpoint(t *testing.T) {
	router, s := newTestServer(t)

	goal, _ := s.AddGoal(context.Background(), types.NewGoal{
		Title: "Clients", Type: types.GoalNumeric, Quarter: types.Q1, Year: 2026,
		Status: types.GoalActive, MetricUnit: "clients",
	})

	w := doJSON(t, router, http.MethodPost, "/api/v1/goals/"+goal.ID+"/metric", `{"value":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var updated types.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to unmarshal goal: %v", err)
	}
	if updated.CurrentMetric == nil || *updated.CurrentMetric != 3 {
		t.Errorf("currentMetric = %v, want 3", updated.CurrentMetric)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/goals/"+goal.ID+"/activities", "")
	var activities []types.GoalActivity
	if err := json.Unmarshal(w.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to unmarshal activities: %v", err)
	}
	if len(activities) != 1 || activities[0].Type != types.ActivityMetricUpdated {
		t.Errorf("activities = %+v, want one metric_updated entry", activities)
	}
}

func TestUpdateTask_NotFoundProblem(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPatch, "/api/v1/tasks/task-missing", `{"title":"nope"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var p Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to unmarshal problem: %v", err)
	}
	if p.Type != "https://astral.dev/errors/not-found" {
		t.Errorf("problem type = %q", p.Type)
	}
	if p.Instance != "/api/v1/tasks/task-missing" {
		t.Errorf("instance = %q", p.Instance)
	}
}

func TestSetAndGetMITs_Endpoints(t *testing.T) {
	router, s := newTestServer(t)
	ctx := context.Background()

	today := "2026-03-15"
	a, _ := s.AddTask(ctx, types.NewTask{Title: "deep work", Status: types.TaskTodo, ScheduledFor: &today})
	b, _ := s.AddTask(ctx, types.NewTask{Title: "inbox zero", Status: types.TaskTodo, ScheduledFor: &today})

	w := doJSON(t, router, http.MethodPut, "/api/v1/mits",
		`{"taskIds":["`+b.ID+`","`+a.ID+`"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/mits", "")
	var mits []types.Task
	if err := json.Unmarshal(w.Body.Bytes(), &mits); err != nil {
		t.Fatalf("failed to unmarshal MITs: %v", err)
	}
	if len(mits) != 2 || mits[0].ID != b.ID || mits[1].ID != a.ID {
		t.Errorf("MITs = %+v, want [%s %s] in order", mits, b.ID, a.ID)
	}
}

func TestExportState_ReturnsFullDocument(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var st types.AppState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("failed to unmarshal state: %v", err)
	}
	if len(st.Areas) != 6 {
		t.Errorf("exported areas = %d, want 6 seed areas", len(st.Areas))
	}
}

func TestMoveDeal_Endpoint(t *testing.T) {
	router, s := newTestServer(t)

	deal, _ := s.AddDeal(context.Background(), types.NewDeal{
		Name: "Acme", PipelineType: types.PipelineSalvaje, Stage: "contacted",
	})

	w := doJSON(t, router, http.MethodPost, "/api/v1/deals/"+deal.ID+"/stage", `{"stage":"sold"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var moved types.PipelineDeal
	if err := json.Unmarshal(w.Body.Bytes(), &moved); err != nil {
		t.Fatalf("failed to unmarshal deal: %v", err)
	}
	if moved.Stage != "sold" {
		t.Errorf("stage = %q, want %q", moved.Stage, "sold")
	}
}
