package providers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"schultafel/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeHttp
	TypeFetch
	TypeSearch
)

var logFileNames = map[TypeEnum]string{
	TypeApp:    "app.log",
	TypeHttp:   "http.log",
	TypeFetch:  "fetch.log",
	TypeSearch: "search.log",
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames))}
	for t, name := range logFileNames {
		file, err := os.OpenFile(
			filepath.Join(conf.Logger.Dir, name),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			lp.Close()
			return nil, err
		}
		lp.files = append(lp.files, file)

		var w io.Writer = file
		if conf.Debug {
			w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		lp.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return lp, nil
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
