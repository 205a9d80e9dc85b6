package service

import "github.com/sirupsen/logrus"

// defaultLogger returns logger, or a warn-level logger when nil
func defaultLogger(logger *logrus.Logger) *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
