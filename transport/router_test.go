package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iltempo/interplay/queue"
)

type fakeRegistry struct{ names []string }

func (f fakeRegistry) Names() []string { return f.names }

func init() {
	gin.SetMode(gin.TestMode)
}

const patternBody = `{
	"channel": 1,
	"length_bars": {"num": 1, "den": 1},
	"events": [
		{"action": {"NoteEvent": {"pitch": 60, "velocity": 0.8, "dur": {"num": 1, "den": 2}}}, "dur": {"num": 1, "den": 1}}
	]
}`

func TestStartEnqueuesPatternStartCommand(t *testing.T) {
	cmds := queue.New()
	router := NewRouter(cmds, fakeRegistry{})

	req := httptest.NewRequest(http.MethodPost, "/start/lead", strings.NewReader(patternBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status = %d, body = %q, want 200 \"ok\"", rec.Code, rec.Body.String())
	}

	cmd, ok := cmds.Pop()
	if !ok {
		t.Fatal("expected a queued command")
	}
	if cmd.Kind != queue.PatternStart || cmd.Name != "lead" {
		t.Errorf("cmd = %+v, want PatternStart lead", cmd)
	}
}

func TestStartRejectsMalformedBody(t *testing.T) {
	cmds := queue.New()
	router := NewRouter(cmds, fakeRegistry{})

	req := httptest.NewRequest(http.MethodPost, "/start/lead", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStopAllEnqueuesWithNoBody(t *testing.T) {
	cmds := queue.New()
	router := NewRouter(cmds, fakeRegistry{})

	req := httptest.NewRequest(http.MethodPost, "/stopall", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cmd, ok := cmds.Pop()
	if !ok || cmd.Kind != queue.PatternStopAll {
		t.Errorf("cmd = %+v, ok=%v, want PatternStopAll", cmd, ok)
	}
}

func TestQueueFullReturns500(t *testing.T) {
	cmds := queue.New()
	for i := 0; i < queue.Capacity; i++ {
		cmds.Push(queue.Command{Kind: queue.PatternStopAll})
	}
	router := NewRouter(cmds, fakeRegistry{})

	req := httptest.NewRequest(http.MethodPost, "/stopall", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when queue is full", rec.Code)
	}
}

func TestPatternsListsRegisteredNames(t *testing.T) {
	cmds := queue.New()
	router := NewRouter(cmds, fakeRegistry{names: []string{"lead", "bass"}})

	req := httptest.NewRequest(http.MethodGet, "/patterns", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "lead") || !strings.Contains(body, "bass") {
		t.Errorf("body = %q, want both pattern names", body)
	}
}
