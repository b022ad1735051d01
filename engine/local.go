package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Session  *game.Session
	Agents   map[game.Color]agent.Agent
	MaxTurns int
	History  []Update
}

type Update struct {
	Step  game.CaptureMove
	Board game.Board
	Hash  game.BoardHash
}

func NewLocalEngine(variant game.Variant, red, black agent.Agent, maxTurns int) *LocalEngine {
	if red == nil || black == nil {
		panic("need an agent for each color")
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &LocalEngine{
		Session:  game.NewSession(variant),
		Agents:   map[game.Color]agent.Agent{game.Red: red, game.Black: black},
		MaxTurns: maxTurns,
	}
}

// Run executes the entire game loop until a winner is found or MaxTurns
// turns have been played. A side that still has pieces but cannot move loses.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Session.CurrentPlayer,
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s game: %s is starting", e.Session.Variant, e.Session.CurrentPlayer)

	turnCount := 1
	var moveMetrics []metrics.MoveMetric
	for e.Session.Winner == game.NoColor && turnCount <= e.MaxTurns {
		player := e.Session.CurrentPlayer

		var steps []game.CaptureMove
		if !e.Session.Stalemated() {
			var searchMetric metrics.SearchMetric
			steps, searchMetric = e.Agents[player].FindTurn(e.Session)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turnCount,
				Player:       player,
				SearchMetric: searchMetric,
			})
		}
		if len(steps) == 0 {
			log.Info().Msgf("%s cannot move on turn %d", player, turnCount)
			e.Session.Concede()
			gameMetric.Reason = metrics.ReasonStalemate
			break
		}

		for _, step := range steps {
			if out := e.Session.Play(step.From, step.To); out == game.Rejected {
				panic(fmt.Sprintf("%s agent played an illegal step %v -> %v on turn %d", player, step.From, step.To, turnCount))
			}
			e.History = append(e.History, Update{
				Step:  step,
				Board: e.Session.Board,
				Hash:  e.Session.Board.Hash(),
			})
		}
		if e.Session.Winner == game.NoColor && e.Session.CurrentPlayer == player {
			panic(fmt.Sprintf("%s agent stopped in the middle of a capture chain on turn %d", player, turnCount))
		}
		log.Debug().Msgf("turn %d: %s played %d step(s)\n%s", turnCount, player, len(steps), e.Session.Board)

		turnCount++
	}

	switch {
	case e.Session.Winner == game.NoColor:
		gameMetric.Reason = metrics.ReasonMaxTurns
		log.Info().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	case gameMetric.Reason == "":
		gameMetric.Reason = metrics.ReasonPieces
	}

	gameMetric.Winner = e.Session.Winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turnCount - 1
	log.Info().Msgf("game over after %d turns: winner %s (%s)", gameMetric.TotalMoves, gameMetric.Winner, gameMetric.Reason)

	return e.Session.Winner, gameMetric, moveMetrics
}
