// pkg/engine/score.go
package engine

// Scoring constants
const (
	AsteroidHitPoints      = 10
	InitialMultiplier      = 1
	InitialMultiplierTimer = 3 // in ticks
)

// Score accumulates points scaled by a streak multiplier. The multiplier
// climbs once per tick while its timer runs and drops back by one when the
// timer expires.
type Score struct {
	score           int
	multiplier      int
	multiplierTimer int
}

// NewScore creates a score at zero with a fresh multiplier timer
func NewScore() *Score {
	return &Score{
		multiplier:      InitialMultiplier,
		multiplierTimer: InitialMultiplierTimer,
	}
}

// Score returns the points accumulated so far
func (s *Score) Score() int {
	return s.score
}

// Multiplier returns the current multiplier, always at least 1
func (s *Score) Multiplier() int {
	return s.multiplier
}

// MultiplierTimer returns the ticks left on the multiplier timer
func (s *Score) MultiplierTimer() int {
	return s.multiplierTimer
}

// Update runs one tick of the multiplier timer. The timer counts ticks, so
// deltaTime only gates the countdown.
func (s *Score) Update(deltaTime float64) {
	if float64(s.multiplierTimer) <= deltaTime {
		return
	}
	s.AddMultiplier(1)
	s.multiplierTimer--
	if s.multiplierTimer == 0 {
		s.AddMultiplier(-1)
	}
}

// NotifyAsteroidHit awards the points for one destroyed asteroid
func (s *Score) NotifyAsteroidHit() {
	s.score += AsteroidHitPoints * s.multiplier
}

// AddMultiplier shifts the multiplier by delta, never below 1
func (s *Score) AddMultiplier(delta int) {
	s.multiplier = max(InitialMultiplier, s.multiplier+delta)
}
