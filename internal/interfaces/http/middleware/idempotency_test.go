package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	redispkg "growline.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	return srv
}

func newIdempotentRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.POST("/withdrawal_request", IdempotencyMiddleware(), handler)
	return r
}

func useMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv := startMiniRedis(t)
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })
	return srv
}

func postWithdrawal(r *gin.Engine, body, idemKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/withdrawal_request", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if idemKey != "" {
		req.Header.Set(IdempotencyHeader, idemKey)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "")
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestIdempotencyMiddleware_NoUIDPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	// Without a member in the body there is nothing to scope the key
	// to; the handler is left to reject the payload.
	w := postWithdrawal(r, `{"amount":100}`, "idem-key")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdempotencyMiddleware_RestoresBodyForHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useMiniRedis(t)

	var seenBody string
	r := newIdempotentRouter(func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seenBody = string(b)
		c.Status(http.StatusCreated)
	})

	body := `{"firebase_uid":"uid-1","amount":100}`
	w := postWithdrawal(r, body, "idem-key")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, body, seenBody)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	redispkg.SetClient(redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:0"}))

	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "idem-key")
	require.Equal(t, http.StatusAccepted, w.Code)
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := useMiniRedis(t)

	srv.Set("idempotency:uid-1:key-1", "processing")

	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "key-1")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "ERR_IDEMPOTENCY_CONFLICT")
}

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := useMiniRedis(t)

	srv.Set("idempotency:uid-1:key-2",
		`{"status":201,"body":"{\"message\":\"Withdrawal request created\"}"}`)

	called := false
	r := newIdempotentRouter(func(c *gin.Context) {
		called = true
		c.Status(http.StatusCreated)
	})

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "key-2")
	require.False(t, called)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "true", w.Header().Get("X-Idempotency-Hit"))
	require.JSONEq(t, `{"message":"Withdrawal request created"}`, w.Body.String())
}

func TestIdempotencyMiddleware_ReplaysLegacyRawBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := useMiniRedis(t)

	srv.Set("idempotency:uid-1:key-3", `{"message":"ok"}`)

	r := newIdempotentRouter(func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "key-3")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestIdempotencyMiddleware_StoresSuccessfulResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := useMiniRedis(t)

	r := newIdempotentRouter(func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"message": "Withdrawal request created"})
	})

	w := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "key-4")
	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := srv.Get("idempotency:uid-1:key-4")
	require.NoError(t, err)
	require.Contains(t, stored, `"status":201`)
	require.Contains(t, stored, "Withdrawal request created")

	// second request replays without reaching the handler
	w2 := postWithdrawal(r, `{"firebase_uid":"uid-1","amount":100}`, "key-4")
	require.Equal(t, http.StatusCreated, w2.Code)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Hit"))
}

func TestIdempotencyMiddleware_KeysScopedPerMember(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useMiniRedis(t)

	r := newIdempotentRouter(func(c *gin.Context) {
		uid := peekFirebaseUID(c)
		c.JSON(http.StatusCreated, gin.H{"firebase_uid": uid})
	})

	// Two members reuse the same Idempotency-Key value; each must get
	// their own response, never a replay of the other's.
	wA := postWithdrawal(r, `{"firebase_uid":"member-a","amount":100}`, "retry-1")
	require.Equal(t, http.StatusCreated, wA.Code)
	require.JSONEq(t, `{"firebase_uid":"member-a"}`, wA.Body.String())

	wB := postWithdrawal(r, `{"firebase_uid":"member-b","amount":100}`, "retry-1")
	require.Equal(t, http.StatusCreated, wB.Code)
	require.Empty(t, wB.Header().Get("X-Idempotency-Hit"))
	require.JSONEq(t, `{"firebase_uid":"member-b"}`, wB.Body.String())

	// A replay by the first member still hits their own cached entry.
	wA2 := postWithdrawal(r, `{"firebase_uid":"member-a","amount":100}`, "retry-1")
	require.Equal(t, "true", wA2.Header().Get("X-Idempotency-Hit"))
	require.JSONEq(t, `{"firebase_uid":"member-a"}`, wA2.Body.String())
}
