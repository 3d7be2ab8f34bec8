package dockerhubutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Product identifier carried in every message code, a scheme shared with the
// other Senzing utilities.
const productID = "5018"

// NewLogger builds a console logger writing to stderr, so that stdout stays
// clean for the generated script. Debug enables debug-level output.
func NewLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}

// MessageID renders the stable message code senzing-5018NNNN{I,W,E,D} as a
// log field. The trailing letter is derived from the message number range:
// 1xx informational, 3xx warning, 7xx error, 9xx debug.
func MessageID(id int) zap.Field {
	letter := byte('I')
	switch {
	case id >= 900:
		letter = 'D'
	case id >= 700:
		letter = 'E'
	case id >= 300:
		letter = 'W'
	}

	return zap.String("id", fmt.Sprintf("senzing-%s%04d%c", productID, id, letter))
}
