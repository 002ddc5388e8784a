package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

// GameHandler serves the game endpoints.
type GameHandler struct {
	manager *session.Manager
}

// GameResponse describes a game after a request.
type GameResponse struct {
	ID         string   `json:"id"`
	Moves      []string `json:"moves"`
	Turn       string   `json:"turn"`
	Status     string   `json:"status"`
	Message    string   `json:"message,omitempty"`
	LegalMoves []string `json:"legalMoves"`
	Board      string   `json:"board"`
}

// MovesResponse lists the legal moves from one square.
type MovesResponse struct {
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
}

type moveRequest struct {
	Move string `json:"move" binding:"required,min=4,max=5"`
}

type undoRequest struct {
	Count *int `json:"count" binding:"required"`
}

var plain = render.New(false, false)

func newGameResponse(g *session.Game) *GameResponse {
	turn := g.Turn()
	status := g.Status()
	return &GameResponse{
		ID:         g.ID.String(),
		Moves:      g.Moves(),
		Turn:       turn.String(),
		Status:     status.String(),
		Message:    render.Status(status, turn),
		LegalMoves: engine.MoveStrings(g.Board.AllLegalMoves(turn)),
		Board:      plain.String(g.Board),
	}
}

func (gh *GameHandler) createGame(c *gin.Context) {
	g, err := gh.manager.Create(c.Request.Context())
	if err != nil {
		pushError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newGameResponse(g))
}

func (gh *GameHandler) getGame(c *gin.Context) {
	g, err := gh.manager.State(c.Request.Context(), c.Param("id"))
	if err != nil {
		pushError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}

func (gh *GameHandler) deleteGame(c *gin.Context) {
	if err := gh.manager.Delete(c.Request.Context(), c.Param("id")); err != nil {
		pushError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (gh *GameHandler) legalMoves(c *gin.Context) {
	square := c.Param("square")
	moves, err := gh.manager.LegalMoves(c.Request.Context(), c.Param("id"), square)
	if err != nil {
		pushError(c, err)
		return
	}
	if moves == nil {
		moves = []string{}
	}
	c.JSON(http.StatusOK, &MovesResponse{Square: square, Moves: moves})
}

func (gh *GameHandler) makeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pushBadRequest(c, err)
		return
	}
	g, err := gh.manager.Move(c.Request.Context(), c.Param("id"), req.Move)
	if err != nil {
		pushError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}

func (gh *GameHandler) undo(c *gin.Context) {
	var req undoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pushBadRequest(c, err)
		return
	}
	g, err := gh.manager.Undo(c.Request.Context(), c.Param("id"), *req.Count)
	if err != nil {
		pushError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(g))
}
