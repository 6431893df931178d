package harness

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

// InitialiseLogging starts the process wide logger.  It may only be called
// once; pair it with logger.Finalise.
func InitialiseLogging(c LoggingConfig) error {
	if err := os.MkdirAll(c.Directory, 0o700); err != nil {
		return fmt.Errorf("log directory: %w", err)
	}
	return logger.Initialise(logger.Configuration{
		Directory: c.Directory,
		File:      c.File,
		Size:      c.Size,
		Count:     c.Count,
		Console:   c.Console,
		Levels:    c.Levels,
	})
}
