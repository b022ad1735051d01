package metrics

import (
	"checkers/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Pieces     int // pieces whose moves were enumerated
	Sequences  int // maximal capture sequences found
	Candidates int
	BestScore  int
}

const (
	ReasonPieces    = "pieces"    // the loser has no pieces left
	ReasonStalemate = "stalemate" // the loser had pieces but no legal move
	ReasonMaxTurns  = "max_turns" // stopped without a winner
)

type MoveMetric struct {
	Step   int
	Player game.Color
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Color
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines int)
	AddPiece()
	AddSequences(n int)
	AddCandidates(n int)
	Complete(bestScore int) SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	pieces     atomic.Int32
	sequences  atomic.Int32
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddPiece() {
	m.pieces.Add(1)
}

func (m *collector) AddSequences(n int) {
	m.sequences.Add(int32(n))
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) Complete(bestScore int) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Pieces:     int(m.pieces.Load()),
		Sequences:  int(m.sequences.Load()),
		Candidates: int(m.candidates.Load()),
		BestScore:  bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)                {}
func (m *dummyCollector) AddPiece()                           {}
func (m *dummyCollector) AddSequences(n int)                  {}
func (m *dummyCollector) AddCandidates(n int)                 {}
func (m *dummyCollector) Complete(bestScore int) SearchMetric { return SearchMetric{} }
