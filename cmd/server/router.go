package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Parikshit006/AiCreditScoring/internal/altscore"
	"github.com/Parikshit006/AiCreditScoring/internal/config"
	"github.com/Parikshit006/AiCreditScoring/internal/errors"
	"github.com/Parikshit006/AiCreditScoring/internal/model"
	"github.com/Parikshit006/AiCreditScoring/internal/monitoring"
	"github.com/Parikshit006/AiCreditScoring/internal/ratelimit"
	"github.com/Parikshit006/AiCreditScoring/internal/reporting"
	"github.com/Parikshit006/AiCreditScoring/internal/scoring"
	"github.com/Parikshit006/AiCreditScoring/internal/types"
)

// serverDeps bundles the process-wide collaborators handed to the router.
// Everything here is constructed once in main and shared across requests.
type serverDeps struct {
	cfg        config.Config
	classifier *model.Classifier
	scorer     *scoring.Service
	metrics    *monitoring.Metrics
	limiter    *ratelimit.Limiter
}

func newServerDeps(cfg config.Config) *serverDeps {
	classifier := model.NewClassifier(cfg.ModelPath)
	explainer := model.NewExplainer(classifier)
	metrics := monitoring.NewMetrics()

	return &serverDeps{
		cfg:        cfg,
		classifier: classifier,
		scorer:     scoring.NewService(classifier, explainer).WithFallbackRecorder(metrics),
		metrics:    metrics,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMin: cfg.RateLimitPerMin,
			Burst:          cfg.RateLimitBurst,
		}),
	}
}

func setupRouter(deps *serverDeps) *gin.Engine {
	r := gin.New()

	r.Use(requestIDMiddleware())
	r.Use(deps.metrics.Middleware())
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())
	r.Use(deps.limiter.Middleware())

	// Permissive CORS, matching the prototype's browser clients
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"model_loaded": deps.classifier.Loaded(),
			"timestamp":    time.Now().Format(time.RFC3339),
		})
	})

	r.GET("/metrics", deps.metrics.Handler())

	api := r.Group("/api/v1")

	api.POST("/predict", deps.handlePredict)
	api.POST("/what-if", deps.handlePredict)

	api.GET("/fairness-metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, reporting.Fairness())
	})

	api.GET("/model-metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, reporting.Metrics())
	})

	api.POST("/apply", deps.handleApply)

	return r
}

// handlePredict serves both the predict and what-if operations; the what-if
// simulation is behaviorally identical.
func (deps *serverDeps) handlePredict(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(deps.cfg.RequestTimeoutSec)*time.Second)
	defer cancel()
	c.Request = c.Request.WithContext(ctx)

	var app types.CreditApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		appErr := errors.NewValidationError("invalid applicant payload", err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	res, err := deps.scorer.Score(app)
	if err != nil {
		appErr := errors.ToAppError(err)
		if appErr.Category == errors.CategoryModelUnavailable {
			deps.metrics.RecordModelLoadFailure()
		}
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	deps.metrics.RecordDecision(res.Decision)
	c.JSON(http.StatusOK, res)
}

func (deps *serverDeps) handleApply(c *gin.Context) {
	var app types.AlternativeApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		appErr := errors.NewValidationError("invalid application payload", err.Error())
		errors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusOK, altscore.Evaluate(app))
}

// requestIDMiddleware tags each request with an id for log correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			c.Request.Header.Set("X-Request-ID", id)
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
