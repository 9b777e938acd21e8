package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "procurv/internal/auctionService"
	"procurv/internal/chat"
	"procurv/internal/config"
	"procurv/internal/engine"
	"procurv/internal/server"
	"procurv/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full application against an in-memory store with
// fast auction rounds, so end-to-end flows complete in milliseconds. The
// returned teardown stops background tickers.
func SetupTestRouter(t *testing.T, roundInterval time.Duration, maxRounds int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore(100, 0)
	eng := engine.NewDeterministicEngine(st, engine.DefaultStrategy, 42)

	cfg := config.AuctionConfig{
		RoundInterval:      roundInterval,
		MaxRounds:          maxRounds,
		DefaultVendorCount: 4,
	}
	auctionSvc := auction.NewSeededAuctionService(st, eng, cfg, 42)

	// no completion backend in tests; the chat service falls back to its
	// deterministic templated replies
	chatSvc := chat.NewChatService(nil)

	t.Cleanup(func() {
		eng.Close()
		st.Close()
	})
	return server.SetupRouter(auctionSvc, chatSvc)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope, returning the data payload for 2xx responses.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
		reqBody = nil
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}
	return resp, w
}
