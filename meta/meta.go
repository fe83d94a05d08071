// meta/meta.go
package meta

// GAMES defines the number of self-play games in one run.
const GAMES = 20

// MAX_TURNS caps the length of a single game; games reaching it end undecided.
const MAX_TURNS = 1000

// SEED defines the default seed of the layout and agent random sources.
const SEED = 1

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "records"

// LOG_LEVEL is the default zerolog level name.
const LOG_LEVEL = "info"
