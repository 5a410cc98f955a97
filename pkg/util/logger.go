package util

import (
	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	var err error
	Logger, err = newLogger("")
	if err != nil {
		panic(err)
	}
}

func newLogger(filename string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	// answers go to stdout, so keep logs apart from them
	config.OutputPaths = []string{"stderr"}
	if filename != "" {
		config.OutputPaths = []string{filename}
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

// SetLogFile redirects Logger to the given file. An empty filename keeps the
// default stderr output.
func SetLogFile(filename string) error {
	if filename == "" {
		return nil
	}
	l, err := newLogger(filename)
	if err != nil {
		return errors.Annotatef(err, "open log file %s", filename)
	}
	_ = Logger.Sync()
	Logger = l
	return nil
}
