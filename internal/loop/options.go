package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/config"
	tuning "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/score"
)

const defaultDataName = "terminal-invaders"

// OptionsFromEnv builds game options from the environment:
// INVADERS_CONFIG (tuning file), INVADERS_DEBUG and INVADERS_DATA (the
// data directory name for the best score). A score store that cannot be
// opened is logged and replaced with a memory-only one; a bad tuning file
// is an error.
func OptionsFromEnv(logger *log.Logger) (Options, error) {
	t, err := tuning.Load(config.GetEnv("INVADERS_CONFIG", ""))
	if err != nil {
		return Options{}, err
	}

	scores, err := score.Open(config.GetEnv("INVADERS_DATA", defaultDataName))
	if err != nil {
		logger.Warn("best score will not be saved", "err", err)
	}

	return Options{
		Logger: logger,
		Scores: scores,
		Tuning: t,
		Debug:  config.GetEnvBool("INVADERS_DEBUG", false),
	}, nil
}
