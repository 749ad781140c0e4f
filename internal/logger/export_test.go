package logger

var NewLogger = newLogger
