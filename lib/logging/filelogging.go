package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger writes to STDOUT, or to a timestamped log file when a path is
// configured. A file that cannot be created is reported and the logger
// stays on STDOUT.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if logFilePath != "" {
		file, err := openLogFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to create log file, logging to stdout: %v", err)
			return logger
		}
		logger.SetOutput(file)
	}

	return logger
}

// openLogFile creates the log file with the startup time folded into
// its name, so restarts never append to an older run's file.
func openLogFile(path string) (*os.File, error) {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	extension := filepath.Ext(path)
	if extension != "" {
		path = strings.Replace(path, extension, stamp+extension, 1)
	} else {
		path = path + stamp
	}

	return os.Create(path)
}
