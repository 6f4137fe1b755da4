package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"growline.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time the lock is held while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long a stored response is replayable
	RetentionDuration = 24 * time.Hour
)

const processingMarker = "processing"

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// peekFirebaseUID reads the firebase_uid from the request body and
// restores the body so the handler can bind it again.
func peekFirebaseUID(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		FirebaseUID string `json:"firebase_uid"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.FirebaseUID
}

// IdempotencyMiddleware replays the stored response when a request
// carries an Idempotency-Key it has seen before. Keys are scoped to the
// submitting member, so the same key from different members does not
// collide. Requests without a resolvable member pass through for the
// handler to reject. When Redis is unreachable the request passes
// through unprotected.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		firebaseUID := peekFirebaseUID(c)
		if firebaseUID == "" {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%s:%s", firebaseUID, key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == processingMarker {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": "Request already in progress",
					"code":  "ERR_IDEMPOTENCY_CONFLICT",
				})
				return
			}

			c.Header("X-Idempotency-Hit", "true")
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil && stored.Status != 0 {
				c.Data(stored.Status, "application/json", []byte(stored.Body))
			} else {
				c.Data(http.StatusOK, "application/json", []byte(val))
			}
			c.Abort()
			return
		}
		if !errors.Is(err, goredis.Nil) {
			c.Next()
			return
		}

		locked, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !locked {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Request already in progress",
				"code":  "ERR_IDEMPOTENCY_CONFLICT",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// Only successful outcomes are worth replaying; failures release
		// the key so the client can retry.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			payload, marshalErr := json.Marshal(storedResponse{
				Status: c.Writer.Status(),
				Body:   w.body.String(),
			})
			if marshalErr == nil {
				_ = redisSet(ctx, storageKey, string(payload), RetentionDuration)
			}
		} else {
			_ = redisDel(ctx, storageKey)
		}
	}
}
