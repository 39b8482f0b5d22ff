package viewer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/veenaghorakavi/SampleScheduler/internal/planner"
)

func makePlan() *planner.Plan {
	return &planner.Plan{
		ID:           "sched-test",
		Source:       "pipeline.txt",
		TaskCount:    2,
		Makespan:     3,
		Order:        []string{"a", "b"},
		CriticalPath: []string{"a", "b"},
		Tasks: []planner.TaskPlan{
			{Name: "a", Duration: 1, ES: 0, EF: 1, LS: 0, LF: 1, Critical: true, Wave: 0},
			{Name: "b", Duration: 2, Deps: []string{"a"}, ES: 1, EF: 3, LS: 1, LF: 3, Critical: true, Wave: 1},
		},
		Waves: []planner.WavePlan{
			{Index: 0, Start: 0, Names: []string{"a"}, Critical: true},
			{Index: 1, Start: 1, Names: []string{"b"}, Critical: true},
		},
	}
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	newHandler(makePlan()).ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	rec := get(t, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Schedule Viewer") {
		t.Error("expected index page title")
	}
}

func TestIndex_UnknownPath(t *testing.T) {
	rec := get(t, "/nope")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /nope returned %d, want 404", rec.Code)
	}
}

func TestPlanJSON(t *testing.T) {
	rec := get(t, "/plan.json")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /plan.json returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"id": "sched-test"`) {
		t.Error("expected plan ID in JSON")
	}
	if !strings.Contains(body, `"makespan": 3`) {
		t.Error("expected makespan in JSON")
	}
}

func TestPlanDOT(t *testing.T) {
	rec := get(t, "/plan.dot")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /plan.dot returned %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "digraph schedule {") {
		t.Error("expected DOT graph header")
	}
	if !strings.Contains(body, `"a" -> "b"`) {
		t.Error("expected edge a -> b")
	}
}

func TestStart_FreePort(t *testing.T) {
	url, err := Start(makePlan(), 0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:") {
		t.Fatalf("unexpected URL %q", url)
	}

	resp, err := http.Get(url + "/plan.json")
	if err != nil {
		t.Fatalf("GET plan.json: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET plan.json returned %d", resp.StatusCode)
	}
}
