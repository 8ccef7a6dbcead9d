package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/session"
	"github.com/existflow/ironplan/internal/store"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func testClock() time.Time {
	return time.Date(2024, time.December, 23, 10, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(store.NewCatalog(store.Sample()), Options{
		Widget: schedule.DefaultConfig(),
		Clock:  testClock,
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func createSession(t *testing.T, s *Server) SessionResponse {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/v1/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d", rec.Code)
	}
	return decode[SessionResponse](t, rec)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("health = %d %s", rec.Code, rec.Body.String())
	}
}

func TestEmployees(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3", "4", "5"}},
		{"?q=front", []string{"1"}},
		{"?q=D%C3%A9V", []string{"1", "4"}},
		{"?q=zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/api/v1/employees"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			resp := decode[EmployeesResponse](t, rec)

			if len(resp.Employees) != len(tt.want) {
				t.Fatalf("got %d employees, want %d", len(resp.Employees), len(tt.want))
			}
			for i, id := range tt.want {
				if resp.Employees[i].ID != id {
					t.Errorf("employee %d = %q, want %q", i, resp.Employees[i].ID, id)
				}
			}
			if resp.Available != 4 || resp.Busy != 1 {
				t.Errorf("counters = %d/%d, want 4/1 for the whole team", resp.Available, resp.Busy)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/schedule", "")
	resp := decode[ScheduleResponse](t, rec)

	if resp.Config != schedule.DefaultConfig() {
		t.Errorf("config = %+v", resp.Config)
	}
	if len(resp.Resources) != 5 {
		t.Fatalf("got %d resources", len(resp.Resources))
	}
	marie := resp.Resources[0]
	if marie.Label.Title != "Marie Dupont" || len(marie.Data) != 2 || marie.Data[0].ID != "2" {
		t.Errorf("first row = %+v", marie)
	}
	if !strings.Contains(rec.Body.String(), `"maxRecordsPerPage":50`) {
		t.Errorf("widget options not in widget casing: %s", rec.Body.String())
	}
}

func TestTask(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/tasks/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decode[TaskResponse](t, rec)
	if resp.Task.Title != "Développement interface utilisateur" {
		t.Errorf("task = %+v", resp.Task)
	}
	if resp.Owner == nil || resp.Owner.ID != "1" {
		t.Errorf("owner = %+v", resp.Owner)
	}
	want := TaskLabels{Category: "Développement", Priority: "Haute", Status: "En cours", Duration: "2h"}
	if resp.Labels != want {
		t.Errorf("labels = %+v, want %+v", resp.Labels, want)
	}

	rec = do(t, s, http.MethodGet, "/api/v1/tasks/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown task status = %d", rec.Code)
	}
}

func TestLabelsAndDataset(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/labels", "")
	if !strings.Contains(rec.Body.String(), `"in_progress":"En cours"`) {
		t.Errorf("labels = %s", rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/api/v1/dataset", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Formation nouveau logiciel") {
		t.Errorf("dataset = %d %s", rec.Code, rec.Body.String())
	}
}

func TestSession_Create(t *testing.T) {
	resp := createSession(t, newTestServer(t))

	if resp.ID == uuid.Nil {
		t.Error("expected a session id")
	}
	if resp.SelectedEmployeeID != "" || resp.SelectedTaskID != "" {
		t.Errorf("new session has a selection: %+v", resp.Snapshot)
	}
	if resp.WeekTitle != "Semaine du 23 décembre 2024" {
		t.Errorf("week title = %q", resp.WeekTitle)
	}
	if resp.Notifications == nil || len(resp.Notifications) != 0 {
		t.Errorf("notifications = %v", resp.Notifications)
	}
}

func TestSession_ClickThenDelete(t *testing.T) {
	s := newTestServer(t)
	base := "/api/v1/sessions/" + createSession(t, s).ID.String()

	rec := do(t, s, http.MethodPost, base+"/click", `{"resource_id":"1","event_id":"2"}`)
	resp := decode[SessionResponse](t, rec)
	if resp.SelectedEmployeeID != "1" || resp.SelectedTaskID != "2" {
		t.Fatalf("selection = %+v", resp.Snapshot)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Title != "Tâche sélectionnée" {
		t.Errorf("notifications = %+v", resp.Notifications)
	}

	// the pending buffer is per request
	resp = decode[SessionResponse](t, do(t, s, http.MethodGet, base, ""))
	if len(resp.Notifications) != 0 || resp.SelectedTaskID != "2" {
		t.Errorf("get = %+v", resp)
	}

	resp = decode[SessionResponse](t, do(t, s, http.MethodPost, base+"/delete", ""))
	if resp.SelectedTaskID != "" || resp.SelectedEmployeeID != "1" {
		t.Errorf("after delete = %+v", resp.Snapshot)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Variant != session.VariantDestructive {
		t.Errorf("notifications = %+v", resp.Notifications)
	}
}

func TestSession_Actions(t *testing.T) {
	s := newTestServer(t)
	base := "/api/v1/sessions/" + createSession(t, s).ID.String()

	tests := []struct {
		name      string
		path      string
		body      string
		employee  string
		task      string
		weekStart time.Time
		toast     string
	}{
		{"click on empty cell", "/click", `{"resource_id":"3"}`, "", "", mon(23), ""},
		{"click on unknown task", "/click", `{"event_id":"99"}`, "", "", mon(23), ""},
		{"select employee", "/employee", `{"employee_id":"3"}`, "3", "", mon(23), ""},
		{"select unknown employee", "/employee", `{"employee_id":"9"}`, "3", "", mon(23), ""},
		{"click task", "/click", `{"event_id":"3"}`, "3", "3", mon(23), "Tâche sélectionnée"},
		{"edit selected", "/edit", "", "3", "3", mon(23), "Édition de tâche"},
		{"edit by id", "/edit", `{"task_id":"6"}`, "3", "3", mon(23), "Édition de tâche"},
		{"close", "/close", "", "3", "", mon(23), ""},
		{"delete without selection", "/delete", "", "3", "", mon(23), ""},
		{"add", "/add", "", "3", "", mon(23), "Fonctionnalité à venir"},
		{"next week", "/week/next", "", "3", "", mon(30), ""},
		{"previous week", "/week/previous", "", "3", "", mon(23), ""},
		{"previous again", "/week/previous", "", "3", "", mon(16), ""},
		{"today", "/week/today", "", "3", "", mon(23), ""},
	}

	for _, tt := range tests {
		rec := do(t, s, http.MethodPost, base+tt.path, tt.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d %s", tt.name, rec.Code, rec.Body.String())
		}
		resp := decode[SessionResponse](t, rec)

		if resp.SelectedEmployeeID != tt.employee || resp.SelectedTaskID != tt.task {
			t.Errorf("%s: selection = %q/%q, want %q/%q",
				tt.name, resp.SelectedEmployeeID, resp.SelectedTaskID, tt.employee, tt.task)
		}
		if !resp.WeekStart.Equal(tt.weekStart) {
			t.Errorf("%s: week start = %v, want %v", tt.name, resp.WeekStart, tt.weekStart)
		}
		switch {
		case tt.toast == "" && len(resp.Notifications) != 0:
			t.Errorf("%s: unexpected notifications %+v", tt.name, resp.Notifications)
		case tt.toast != "" && (len(resp.Notifications) != 1 || resp.Notifications[0].Title != tt.toast):
			t.Errorf("%s: notifications = %+v, want %q", tt.name, resp.Notifications, tt.toast)
		}
	}
}

func mon(day int) time.Time {
	return time.Date(2024, time.December, day, 0, 0, 0, 0, time.UTC)
}

func TestSession_Errors(t *testing.T) {
	s := newTestServer(t)
	base := "/api/v1/sessions/" + createSession(t, s).ID.String()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed id", http.MethodGet, "/api/v1/sessions/nope", "", http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/sessions/" + uuid.NewString(), "", http.StatusNotFound},
		{"unknown session action", http.MethodPost, "/api/v1/sessions/" + uuid.NewString() + "/add", "", http.StatusNotFound},
		{"bad click body", http.MethodPost, base + "/click", `{"event_id":`, http.StatusBadRequest},
		{"bad employee body", http.MethodPost, base + "/employee", `[1,2]`, http.StatusBadRequest},
		{"bad delete body", http.MethodPost, base + "/delete", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestSession_Isolated(t *testing.T) {
	s := newTestServer(t)
	a := createSession(t, s).ID.String()
	b := createSession(t, s).ID.String()

	do(t, s, http.MethodPost, "/api/v1/sessions/"+a+"/click", `{"event_id":"4"}`)

	resp := decode[SessionResponse](t, do(t, s, http.MethodGet, "/api/v1/sessions/"+b, ""))
	if resp.SelectedTaskID != "" {
		t.Errorf("session b saw selection %q from session a", resp.SelectedTaskID)
	}
}

func TestSession_ConcurrentClicks(t *testing.T) {
	s := newTestServer(t)
	base := "/api/v1/sessions/" + createSession(t, s).ID.String()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := []string{"1", "2", "3", "4", "5", "6"}[i%6]
			rec := do(t, s, http.MethodPost, base+"/click", `{"event_id":"`+id+`"}`)
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d", rec.Code)
			}
		}(i)
	}
	wg.Wait()

	resp := decode[SessionResponse](t, do(t, s, http.MethodGet, base, ""))
	if resp.SelectedTaskID == "" {
		t.Error("expected a selected task after concurrent clicks")
	}
}

func TestRegistry_EvictsIdleSessions(t *testing.T) {
	r := newRegistry(store.NewCatalog(store.Sample()), testClock)
	now := time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	old := r.create().ID
	now = now.Add(sessionIdleTTL + time.Minute)
	fresh := r.create().ID

	if r.exists(old) {
		t.Error("idle session was not evicted")
	}
	if !r.exists(fresh) || r.len() != 1 {
		t.Errorf("registry holds %d sessions", r.len())
	}
	if _, ok := r.do(old, nil); ok {
		t.Error("do on evicted session succeeded")
	}
}

// runServer starts s on a random local port and returns its base URL and
// the channel Run's result arrives on
func runServer(t *testing.T, s *Server, ctx context.Context) (string, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "127.0.0.1:0")
	}()

	deadline := time.Now().Add(5 * time.Second)
	for s.echo.ListenerAddr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return "http://" + s.echo.ListenerAddr().String(), done
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
		return nil
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	base, done := runServer(t, s, ctx)

	resp, err := http.Get(base + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	cancel()
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run = %v, want nil after cancel", err)
	}
	if _, err := http.Get(base + "/health"); err == nil {
		t.Error("server still accepting requests after shutdown")
	}
}

func TestRun_DrainsInFlightRequests(t *testing.T) {
	s := newTestServer(t)
	started := make(chan struct{})
	s.echo.GET("/slow", func(c echo.Context) error {
		close(started)
		time.Sleep(300 * time.Millisecond)
		return c.String(http.StatusOK, "done")
	})

	ctx, cancel := context.WithCancel(context.Background())
	base, done := runServer(t, s, ctx)

	type result struct {
		status int
		err    error
	}
	res := make(chan result, 1)
	go func() {
		resp, err := http.Get(base + "/slow")
		if err != nil {
			res <- result{err: err}
			return
		}
		resp.Body.Close()
		res <- result{status: resp.StatusCode}
	}()

	<-started
	cancel()

	r := <-res
	if r.err != nil || r.status != http.StatusOK {
		t.Errorf("in-flight request = %d, %v; want 200 after draining", r.status, r.err)
	}
	if err := waitRun(t, done); err != nil {
		t.Errorf("Run = %v", err)
	}
}

func TestRun_BindError(t *testing.T) {
	s := newTestServer(t)
	err := s.Run(context.Background(), "127.0.0.1:-1")
	if err == nil || !strings.Contains(err.Error(), "server failed") {
		t.Errorf("Run = %v, want a bind error", err)
	}
}
