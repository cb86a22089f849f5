package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	competition "competition-hub/internal/competitionService"
	"competition-hub/internal/inflight"
	"competition-hub/internal/server"
	"competition-hub/internal/source"

	"github.com/gin-gonic/gin"
)

const startUnix = int64(1_700_000_000)

// testClock is a settable clock shared by the source and the service
type testClock struct {
	now atomic.Int64
}

func newTestClock() *testClock {
	c := &testClock{}
	c.now.Store(startUnix)
	return c
}

func (c *testClock) Now() time.Time { return time.Unix(c.now.Load(), 0) }

func (c *testClock) Advance(seconds int64) { c.now.Add(seconds) }

// SetupTestRouter initializes the router over the demo competitions for integration testing.
func SetupTestRouter() (*gin.Engine, *testClock) {
	gin.SetMode(gin.TestMode)
	clock := newTestClock()
	src := source.NewDemoSource(clock.Now)
	service := competition.NewCompetitionService(src, inflight.NewMemoryGuard(), clock.Now)
	return server.SetupRouter(service), clock
}

// ExecuteRequestAndParse executes an HTTP request on the given router and returns the data
// field of the response envelope, or the whole envelope on errors
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok && w.Code < 300 {
			resp = data
		}
	}

	return resp, w
}

// ExecuteListRequest executes a GET returning a list in the data field
func ExecuteListRequest(t *testing.T, router *gin.Engine, url string) ([]map[string]any, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", url, nil))

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp.Data, w
}
