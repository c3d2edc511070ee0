// Package mover drives simulated participants at a fixed typing speed.
package mover

// CharsPerWord converts words per minute to characters per minute.
const CharsPerWord = 5

// Mover advances a simulated participant deterministically from elapsed time.
// Its speed is chosen once and never changes during a race.
type Mover struct {
	participantID string
	speed         float64
	promptLength  int
	finished      bool
}

// New returns a Mover typing at speed words per minute.
func New(participantID string, speed float64, promptLength int) *Mover {
	return &Mover{
		participantID: participantID,
		speed:         speed,
		promptLength:  promptLength,
	}
}

// ParticipantID returns the participant this mover drives.
func (m *Mover) ParticipantID() string { return m.participantID }

// Speed returns the target speed in words per minute.
func (m *Mover) Speed() float64 { return m.speed }

// Finished reports whether the finish has already been reported.
func (m *Mover) Finished() bool { return m.finished }

// Progress returns percent complete at elapsedSeconds, capped at 100.
func (m *Mover) Progress(elapsedSeconds float64) float64 {
	if m.promptLength <= 0 {
		return 100
	}
	if elapsedSeconds <= 0 || m.speed <= 0 {
		return 0
	}
	chars := m.speed * CharsPerWord / 60 * elapsedSeconds
	return min(100, chars/float64(m.promptLength)*100)
}

// Step samples progress at elapsedSeconds. finished is true on exactly one
// call: the first one at which progress reaches 100.
func (m *Mover) Step(elapsedSeconds float64) (progress float64, finished bool) {
	progress = m.Progress(elapsedSeconds)
	if progress >= 100 && !m.finished {
		m.finished = true
		return progress, true
	}
	return progress, false
}

// FinishTime returns the elapsed seconds at which the mover reaches 100.
func (m *Mover) FinishTime() float64 {
	if m.speed <= 0 {
		return 0
	}
	return float64(m.promptLength) / (m.speed * CharsPerWord / 60)
}
