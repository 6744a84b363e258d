package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(SecurityHeadersMiddleware())

	if cfg.AllowedOrigin != "" {
		router.Use(CORSMiddleware(cfg.AllowedOrigin))
	}

	if cfg.Metrics != nil {
		router.Use(MetricsMiddleware(cfg.Metrics))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	words := NewWordsController(cfg.Words, cfg.Metrics)
	sentences := NewSentencesController(cfg.Sentences, cfg.Metrics)
	dialogues := NewDialoguesController(cfg.Dialogues, cfg.Metrics)

	// Health endpoints
	router.GET("/health", health.Live)
	router.GET("/health/ready", health.Ready)

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")

	api.GET("/words", words.ListWords)
	api.POST("/words", words.CreateWord)
	api.PUT("/words/:id", words.UpdateWord)
	api.DELETE("/words/:id", words.DeleteWord)

	api.GET("/sentences", sentences.ListSentences)
	api.POST("/sentences", sentences.CreateSentence)
	api.PUT("/sentences/:id", sentences.UpdateSentence)
	api.DELETE("/sentences/:id", sentences.DeleteSentence)

	api.GET("/dialogues", dialogues.ListDialogues)
	api.POST("/dialogues", dialogues.CreateDialogue)
	api.PUT("/dialogues/:id", dialogues.UpdateDialogue)
	api.DELETE("/dialogues/:id", dialogues.DeleteDialogue)

	backups := NewBackupController(cfg.Backups)
	api.POST("/admin/backup", backups.TriggerBackup)
	api.GET("/admin/backup/:id", backups.GetBackupStatus)

	return router
}
