package eventbus

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Error(format string, v ...interface{})
}
