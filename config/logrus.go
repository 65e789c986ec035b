package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// SetLogLevel applies a level name from the command line ("debug", "info", ...).
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logg.SetLevel(lvl)
	return nil
}
