package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tcgtools/topdeck/internal/engine/analysis"
	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/prob"
	"github.com/tcgtools/topdeck/internal/engine/tourney"
)

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func (s *Server) reject(c *gin.Context, status int, err error) {
	c.JSON(status, errorResponse{
		RequestID: uuid.NewString(),
		Error:     err.Error(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

// checkEnvelope enforces the configured combinatorial ceilings before
// any enumeration starts. The category count is taken from the
// enumerator's population, which includes the implicit filler
// category when the deck has unassigned cards.
func (s *Server) checkEnvelope(d deck.Deck, draws int) error {
	counts, _ := d.Population()
	if len(counts) > s.cfg.MaxCategories {
		return fmt.Errorf("deck has %d categories, limit is %d", len(counts), s.cfg.MaxCategories)
	}
	if draws > s.cfg.MaxDraws {
		return fmt.Errorf("draw count %d exceeds limit %d", draws, s.cfg.MaxDraws)
	}
	return nil
}

type probabilityRequest struct {
	Deck      deck.Deck      `json:"deck"`
	Condition deck.Condition `json:"condition"`
	Draws     int            `json:"draws"`
	Mulligan  deck.Mulligan  `json:"mulligan"`
}

type probabilityResponse struct {
	RequestID   string  `json:"request_id"`
	Draws       int     `json:"draws"`
	Probability float64 `json:"probability"`
	Adjusted    bool    `json:"adjusted"`
	ElapsedMs   float64 `json:"elapsed_ms"`
}

func (s *Server) handleProbability(c *gin.Context) {
	var req probabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if err := req.Deck.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}
	if err := req.Condition.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}
	if err := req.Mulligan.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}
	if req.Draws < 0 {
		s.reject(c, http.StatusBadRequest, fmt.Errorf("draws must be >= 0, got %d", req.Draws))
		return
	}
	if err := s.checkEnvelope(req.Deck, req.Draws); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	p := prob.DeckEventProbability(req.Draws, req.Condition, req.Deck)
	adjusted := false
	if req.Mulligan.Enabled {
		keep := prob.KeepProbability(req.Draws, req.Mulligan, req.Deck)
		p = prob.MulliganAdjusted(p, keep)
		adjusted = true
	}

	c.JSON(http.StatusOK, probabilityResponse{
		RequestID:   uuid.NewString(),
		Draws:       req.Draws,
		Probability: p,
		Adjusted:    adjusted,
		ElapsedMs:   float64(time.Since(start).Microseconds()) / 1000,
	})
}

type timelineRequest struct {
	Deck       deck.Deck        `json:"deck"`
	Conditions []deck.Condition `json:"conditions"`
	Mulligan   deck.Mulligan    `json:"mulligan"`
	Format     string           `json:"format"`
	GoingFirst bool             `json:"going_first"`
}

type timelineResponse struct {
	RequestID string       `json:"request_id"`
	Baseline  int          `json:"baseline"`
	Points    []prob.Point `json:"points"`
	ElapsedMs float64      `json:"elapsed_ms"`
}

func (s *Server) handleTimeline(c *gin.Context) {
	var req timelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if err := req.Deck.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Conditions) == 0 {
		s.reject(c, http.StatusBadRequest, fmt.Errorf("at least one condition is required"))
		return
	}
	for _, cond := range req.Conditions {
		if err := cond.Validate(); err != nil {
			s.reject(c, http.StatusBadRequest, err)
			return
		}
	}
	if err := req.Mulligan.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}

	format, _ := deck.FormatFor(req.Format)
	baseline := format.OpeningDraws(req.GoingFirst)
	if err := s.checkEnvelope(req.Deck, baseline+prob.TimelineSteps-1); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	points := prob.Timeline(req.Deck, req.Conditions, req.Mulligan, baseline)

	c.JSON(http.StatusOK, timelineResponse{
		RequestID: uuid.NewString(),
		Baseline:  baseline,
		Points:    points,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000,
	})
}

type analysisRequest struct {
	Format     string           `json:"format"`
	Deck       deck.Deck        `json:"deck"`
	SideDeck   *deck.Deck       `json:"side_deck,omitempty"`
	Conditions []deck.Condition `json:"conditions"`
	Mulligan   deck.Mulligan    `json:"mulligan"`
	Tournament tourney.Params   `json:"tournament"`
}

type analysisResponse struct {
	RequestID string                  `json:"request_id"`
	Pre       []tourney.ConditionProb `json:"pre"`
	Post      []tourney.ConditionProb `json:"post"`
	Analysis  tourney.Analysis        `json:"analysis"`
	ElapsedMs float64                 `json:"elapsed_ms"`
}

func (s *Server) handleAnalysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	def := deck.Definition{
		Format:     req.Format,
		Deck:       req.Deck,
		SideDeck:   req.SideDeck,
		Conditions: req.Conditions,
		Mulligan:   req.Mulligan,
		Tournament: req.Tournament,
	}
	if err := def.Validate(); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}
	format, _ := deck.FormatFor(req.Format)
	maxBaseline := format.OpeningDraws(true)
	if b := format.OpeningDraws(false); b > maxBaseline {
		maxBaseline = b
	}
	if err := s.checkEnvelope(req.Deck, maxBaseline); err != nil {
		s.reject(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	result := analysis.Run(def)

	c.JSON(http.StatusOK, analysisResponse{
		RequestID: uuid.NewString(),
		Pre:       result.Pre,
		Post:      result.Post,
		Analysis:  result.Analysis,
		ElapsedMs: float64(time.Since(start).Microseconds()) / 1000,
	})
}
