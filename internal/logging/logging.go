package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"iris-predictor-service/internal/config"
)

// Init configures the process-wide logrus logger and returns it.
func Init(cfg config.LoggerConfig) *log.Logger {
	logger := log.StandardLogger()
	Configure(logger, cfg)
	return logger
}

func Configure(logger *log.Logger, cfg config.LoggerConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
}
