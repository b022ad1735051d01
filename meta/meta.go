// meta/meta.go
package meta

// GO_ROUTINES defines the default number of search goroutines.
const GO_ROUTINES = 4

// GAMES defines the default number of games per experiment.
const GAMES = 10

// MAX_TURNS caps a self-play game; reaching it ends the game without a winner.
const MAX_TURNS = 300

// UPDATE_BUFFER is the capacity of a game's update channel.
const UPDATE_BUFFER = 64
