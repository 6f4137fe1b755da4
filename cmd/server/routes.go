package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"growline.backend/internal/interfaces/http/handlers"
	"growline.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	userHandler       *handlers.UserHandler
	teamHandler       *handlers.TeamHandler
	paymentHandler    *handlers.PaymentHandler
	withdrawalHandler *handlers.WithdrawalHandler
}

// applyCORSMiddleware allows any origin. The frontend is served from
// rotating preview domains, so the origin is echoed back rather than
// pinned; credentials stay allowed for the Firebase session cookie.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", middleware.IdempotencyHeader},
		ExposeHeaders:    []string{"X-Request-ID", "X-Idempotency-Hit"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "growline-backend",
			"version": "0.4.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.POST("/user_data", d.userHandler.UpsertUser)
	r.GET("/user_data/:firebase_uid", d.userHandler.GetUser)

	r.GET("/team", d.teamHandler.GetTeam)

	r.GET("/payments", d.paymentHandler.GetPayments)

	r.POST("/withdrawal_request", middleware.IdempotencyMiddleware(), d.withdrawalHandler.CreateWithdrawal)
	r.GET("/withdrawal_requests", d.withdrawalHandler.ListWithdrawals)
}
