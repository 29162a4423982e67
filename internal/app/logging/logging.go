// package logging holds the process-wide logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// L is shared by every package that needs to log. Handlers and the movie
// store attach their own context with L.With.
var L = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "movies-api",
})
