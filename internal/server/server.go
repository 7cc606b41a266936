// Package server exposes the verification pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"verifact/internal/model"
)

// Verifier runs a full verification for submitted content.
type Verifier interface {
	Verify(ctx context.Context, content string) *model.VerificationRun
}

// SourceAnalyzer produces an ad-hoc trust report for one URL.
type SourceAnalyzer interface {
	AnalyzeSource(ctx context.Context, url string) (model.SourceTrustReport, error)
}

// New builds the gin engine with all routes attached.
func New(verifier Verifier, sources SourceAnalyzer, corsOrigins []string) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	g.Use(cors.New(corsCfg))

	attachRoutes(g, verifier, sources)
	return g
}

type verifyRequest struct {
	Content string `json:"content"`
}

func attachRoutes(g *gin.Engine, verifier Verifier, sources SourceAnalyzer) {
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	g.POST("/verify", func(c *gin.Context) {
		var req verifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}
		run := verifier.Verify(c.Request.Context(), req.Content)
		c.JSON(http.StatusOK, run)
	})

	g.GET("/source", func(c *gin.Context) {
		url := c.Query("url")
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}
		report, err := sources.AnalyzeSource(c.Request.Context(), url)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, report)
	})
}
