package logger

import (
    "time"

    "github.com/natefinch/lumberjack"
    logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with a rotating file sink. Handlers log at
// the request boundary only; nothing logs inside per-row mapping loops.
func Setup(file, level string) {
    rotator := &lumberjack.Logger{
        Filename:   file,
        MaxSize:    10,  // megabytes
        MaxBackups: 7,   // keep up to 7 old files
        MaxAge:     7,   // days
        Compress:   true,
    }

    logrus.SetOutput(rotator)
    logrus.SetFormatter(&logrus.TextFormatter{
        FullTimestamp:   true,
        TimestampFormat: time.RFC3339,
    })

    lvl, err := logrus.ParseLevel(level)
    if err != nil {
        lvl = logrus.DebugLevel
    }
    logrus.SetLevel(lvl)
}
