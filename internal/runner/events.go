package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-runner/internal/core"
)

// LogEvents writes the events of one tick to logger. Phase changes are
// logged at info level, everything else at debug.
func LogEvents(logger *log.Logger, res core.StepResult) {
	if logger == nil {
		return
	}
	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventGameOver, core.EventWon:
			logger.Info("session ended", "phase", res.State.Phase, "score", ev.Score,
				"ticks", res.State.Ticks, "elapsed", res.State.Elapsed)
		case core.EventRestart:
			logger.Info("session restarted")
		case core.EventSpawn:
			logger.Debug("enemy spawned", "species", ev.Detail)
		case core.EventScore:
			logger.Debug("enemy dodged", "species", ev.Detail, "score", ev.Score)
		default:
			logger.Debug(ev.Kind.String(), "score", ev.Score)
		}
	}
}
