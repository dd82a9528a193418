// meta/meta.go
package meta

import "time"

// WORKERS defines the number of games played concurrently by a benchmark.
const WORKERS = 8

// GAMES defines the number of games averaged by a benchmark.
const GAMES = 100

// STRATEGY defines the default action selection strategy.
const STRATEGY = "beam"

// BEAM_WIDTH defines the number of nodes expanded per depth.
const BEAM_WIDTH = 2

// BEAM_DEPTH defines the lookahead of fixed depth searches.
const BEAM_DEPTH = 5

// BEAM_NUMBER defines the number of chokudai rounds.
const BEAM_NUMBER = 4

// TIME_THRESHOLD defines the per move budget of timed searches.
const TIME_THRESHOLD = 10 * time.Millisecond

// ITERATIONS defines the number of neighbors tried by local search.
const ITERATIONS = 5

// START_TEMP and END_TEMP bound the annealing schedule.
const START_TEMP = 10.0
const END_TEMP = 0.0
