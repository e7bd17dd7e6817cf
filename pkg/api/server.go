// Package api provides the REST API server for sol
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/james-see/sol/pkg/config"
	"github.com/james-see/sol/pkg/mode"
	"github.com/james-see/sol/pkg/scale"
	"github.com/james-see/sol/pkg/tuning"
	"github.com/james-see/sol/pkg/tuning/systems"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MaxDegrees caps the number of degrees a single scale request may resolve
const MaxDegrees = 512

// @title Sol API
// @version 1.0
// @description API for resolving scale degrees and note names into pitches
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int, cfg *config.Config) error {
	return NewRouter(cfg).Run(fmt.Sprintf(":%d", port))
}

// NewRouter builds the API routes on top of a configuration catalog
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &handler{cfg: cfg}

	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/modes", h.listModes)
		v1.GET("/systems", h.listSystems)
		v1.GET("/systems/:system/frequency/:key", h.frequency)
		v1.GET("/systems/:system/step/:name", h.step)
		v1.GET("/scale", h.scale)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type handler struct {
	cfg *config.Config
}

// ModeInfo describes a mode
type ModeInfo struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
	Span      int    `json:"span"`
}

// SystemInfo describes a tuning system
type SystemInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	NoteNames   bool   `json:"note_names"`
}

// DegreeInfo is one row of a scale response
type DegreeInfo struct {
	Degree    int     `json:"degree"`
	Step      int     `json:"step"`
	Frequency float64 `json:"frequency"`
	Note      string  `json:"note,omitempty"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sol",
	})
}

// listModes godoc
// @Summary List modes
// @Description Returns the built-in and configured modes with their intervals
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]ModeInfo
// @Router /api/v1/modes [get]
func (h *handler) listModes(c *gin.Context) {
	names := h.cfg.ModeNames()
	modes := make([]ModeInfo, 0, len(names))
	for _, name := range names {
		m, err := h.cfg.Mode(name)
		if err != nil {
			continue
		}
		modes = append(modes, ModeInfo{Name: name, Intervals: m.Intervals(), Span: m.Span()})
	}
	c.JSON(http.StatusOK, gin.H{"modes": modes})
}

// listSystems godoc
// @Summary List tuning systems
// @Description Returns the configured tuning systems
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]SystemInfo
// @Router /api/v1/systems [get]
func (h *handler) listSystems(c *gin.Context) {
	names := h.cfg.SystemNames()
	out := make([]SystemInfo, 0, len(names))
	for _, name := range names {
		sys, err := h.cfg.System(name)
		if err != nil {
			continue
		}
		_, isTwelveTone := sys.(*systems.TwelveTone)
		out = append(out, SystemInfo{
			Name:        name,
			Description: fmt.Sprint(sys),
			NoteNames:   isTwelveTone,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"systems": out,
		"default": h.cfg.Defaults.System,
	})
}

// frequency godoc
// @Summary Frequency of a step or note name
// @Description Resolves a step number or note name to a frequency in Hz
// @Tags lookup
// @Produce json
// @Param system path string true "System name (e.g. 12tet)"
// @Param key path string true "Step number or note name (e.g. 48, C4, F#3)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/systems/{system}/frequency/{key} [get]
func (h *handler) frequency(c *gin.Context) {
	sys, err := h.cfg.System(c.Param("system"))
	if err != nil {
		respondError(c, err)
		return
	}

	key := tuning.ParseKey(c.Param("key"))
	step, err := tuning.StepOf(sys, key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":       key.String(),
		"step":      step,
		"frequency": sys.FrequencyOf(step),
	})
}

// step godoc
// @Summary Step of a note name
// @Description Resolves a note name to a step number
// @Tags lookup
// @Produce json
// @Param system path string true "System name (e.g. 12tet)"
// @Param name path string true "Note name (e.g. C4, Bb2)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/systems/{system}/step/{name} [get]
func (h *handler) step(c *gin.Context) {
	sys, err := h.cfg.System(c.Param("system"))
	if err != nil {
		respondError(c, err)
		return
	}

	name := c.Param("name")
	step, err := sys.ResolveNoteName(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": name,
		"step": step,
	})
}

// scale godoc
// @Summary Resolve scale degrees
// @Description Returns step and frequency for a range of scale degrees
// @Tags scale
// @Produce json
// @Param mode query string false "Mode name or interval list (default from config)"
// @Param tonic query string false "Tonic step or note name (default from config)"
// @Param system query string false "System name (default from config)"
// @Param from query int false "First degree (default 1)"
// @Param to query int false "Last degree (default one octave above from)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/scale [get]
func (h *handler) scale(c *gin.Context) {
	s, err := h.cfg.Scale(c.Query("mode"), c.Query("tonic"), c.Query("system"), false)
	if err != nil {
		respondError(c, err)
		return
	}

	from, err := queryInt(c, "from", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := scale.CheckDegree(from); err != nil {
		respondError(c, err)
		return
	}
	to, err := queryInt(c, "to", from+s.Mode().Len())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if scale.Count(from, to) > MaxDegrees {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d degrees per request", MaxDegrees)})
		return
	}

	degrees, err := s.Range(from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	_, named := s.System().(*systems.TwelveTone)
	out := make([]DegreeInfo, len(degrees))
	for i, d := range degrees {
		out[i] = DegreeInfo{Degree: d.Degree, Step: d.Step, Frequency: d.Frequency}
		if named {
			out[i].Note, _ = systems.NoteName(d.Step)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"scale":   s.String(),
		"mode":    s.Mode().Intervals(),
		"tonic":   s.Tonic(),
		"degrees": out,
	})
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return n, nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, config.ErrUnknownSystem):
		status = http.StatusNotFound
	case errors.Is(err, tuning.ErrInvalidNoteName),
		errors.Is(err, tuning.ErrUnsupported),
		errors.Is(err, tuning.ErrConfig),
		errors.Is(err, mode.ErrUnknown),
		errors.Is(err, scale.ErrRange):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
