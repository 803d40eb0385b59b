package server

import (
	"errors"
	"net/http"

	"colonisation/communication"
	"colonisation/game"
	"colonisation/gamemaster"
	"colonisation/rules"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	ErrBadRequestFormatStr = "bad-request-format"
	ErrRateLimitedStr      = "rate-limited"
	ErrInternalStr         = "internal-error"
)

type Config struct {
	AllowedOrigins []string
	// RateLimit is the sustained request rate across all clients; zero
	// disables limiting.
	RateLimit rate.Limit
	Burst     int
}

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateRequest struct {
	Players []game.Seat `json:"players"`
}

type CreateResponse struct {
	ID string `json:"id"`
}

// WinnerResponse reports Winner = -1 and Finished = false while the game is
// running.
type WinnerResponse struct {
	Winner   int  `json:"winner"`
	Finished bool `json:"finished"`
}

type handler struct {
	comm communication.Communicator
}

func NewRouter(comm communication.Communicator, cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}
	if cfg.RateLimit > 0 {
		r.Use(limit(rate.NewLimiter(cfg.RateLimit, max(cfg.Burst, 1))))
	}

	h := &handler{comm: comm}
	games := r.Group("/games")
	games.POST("", h.create)
	games.GET("/:id", h.state)
	games.GET("/:id/winner", h.winner)
	games.POST("/:id/actions", h.do)
	return r
}

func limit(l *rate.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorBody{Code: ErrRateLimitedStr, Message: "too many requests"})
			return
		}
		ctx.Next()
	}
}

func (h *handler) create(ctx *gin.Context) {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Code: ErrBadRequestFormatStr, Message: err.Error()})
		return
	}
	id, err := h.comm.Create(ctx.Request.Context(), req.Players)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, CreateResponse{ID: id})
}

func (h *handler) state(ctx *gin.Context) {
	s, err := h.comm.State(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

func (h *handler) winner(ctx *gin.Context) {
	winner, finished, err := h.comm.Winner(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, WinnerResponse{Winner: winner, Finished: finished})
}

func (h *handler) do(ctx *gin.Context) {
	var a gamemaster.Action
	if err := ctx.ShouldBindJSON(&a); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Code: ErrBadRequestFormatStr, Message: err.Error()})
		return
	}
	res, err := h.comm.Do(ctx.Request.Context(), ctx.Param("id"), a)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// writeError maps rule violations to 400, missing things to 404 and
// everything else to 500.
func writeError(ctx *gin.Context, err error) {
	var re *rules.Error
	if errors.As(err, &re) {
		status := http.StatusBadRequest
		if re.Kind == rules.NotFound {
			status = http.StatusNotFound
		}
		ctx.AbortWithStatusJSON(status, ErrorBody{Code: string(re.Code), Message: re.Message})
		return
	}
	log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Code: ErrInternalStr, Message: "internal error"})
}
