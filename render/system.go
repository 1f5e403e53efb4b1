package render

import (
	"time"

	"go.uber.org/zap"
)

// DefaultSystem is the stock SystemInterface: a monotonic clock started at
// construction and a zap logging sink.
type DefaultSystem struct {
	start time.Time
	log   *zap.Logger
}

// NewDefaultSystem creates a DefaultSystem logging through logger. A nil
// logger discards messages.
func NewDefaultSystem(logger *zap.Logger) *DefaultSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultSystem{start: time.Now(), log: logger}
}

// ElapsedTime implements SystemInterface.
func (s *DefaultSystem) ElapsedTime() float64 {
	return time.Since(s.start).Seconds()
}

// LogMessage implements SystemInterface.
func (s *DefaultSystem) LogMessage(level LogLevel, message string) bool {
	switch level {
	case LogError:
		s.log.Error(message)
	case LogWarning:
		s.log.Warn(message)
	case LogInfo:
		s.log.Info(message)
	default:
		s.log.Debug(message)
	}
	return true
}

// TranslateString implements SystemInterface. The default system performs no
// translation.
func (s *DefaultSystem) TranslateString(input string) (string, int) {
	return input, 0
}

// FixedClockSystem is a SystemInterface with a manually advanced clock.
// Tests and deterministic replays drive animation time through it.
type FixedClockSystem struct {
	DefaultSystem
	now float64
}

// NewFixedClockSystem creates a FixedClockSystem at time zero.
func NewFixedClockSystem(logger *zap.Logger) *FixedClockSystem {
	return &FixedClockSystem{DefaultSystem: *NewDefaultSystem(logger)}
}

// ElapsedTime implements SystemInterface.
func (s *FixedClockSystem) ElapsedTime() float64 {
	return s.now
}

// AdvanceTime moves the clock forward by dt seconds.
func (s *FixedClockSystem) AdvanceTime(dt float64) {
	s.now += dt
}
