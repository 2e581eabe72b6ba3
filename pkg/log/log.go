package log

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

type LogFormat string

var (
	Pretty LogFormat = "pretty"
	JSON   LogFormat = "json"
	Text   LogFormat = "text"
)

var (
	stderr = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Logger for stdout specifically
	Stdout = zerolog.New(os.Stdout).With().Timestamp().Logger()

	globalFormat LogFormat = "pretty"

	Fatal = stderr.Fatal
	Error = stderr.Error
	Warn  = stderr.Warn
	Info  = stderr.Info
	Debug = stderr.Debug
	Trace = stderr.Trace

	Err  = stderr.Err
	With = stderr.With

	GetLevel = stderr.GetLevel
)

const (
	FatalLevel = zerolog.FatalLevel
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// SetLevelString parses the given level and applies it to both the stderr
// and stdout loggers
func SetLevelString(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	stderr = stderr.Level(l)
	Stdout = Stdout.Level(l)
	return nil
}

var (
	ErrUnsupportedFormat = fmt.Errorf("unsupported format. supported 'json', 'pretty', 'text'")
)

func GetLogFormat() LogFormat {
	return globalFormat
}

func SetFormat(format string) error {
	switch format {
	case "json", "":
		globalFormat = JSON
	case "pretty":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false, TimeFormat: "3:04PM"})
		Stdout = Stdout.Output(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: false, TimeFormat: "3:04PM"})
		globalFormat = Pretty
	case "text":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: "3:04PM"})
		Stdout = Stdout.Output(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true, TimeFormat: "3:04PM"})
		globalFormat = Text
	default:
		return ErrUnsupportedFormat
	}
	return nil
}
