package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)

const (
	//MsgFormatSingle use info
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti use show all func call relation
	MsgFormatMulti
)

const defaultFilename = "rsha"

// LogFormat is to log format
type LogFormat = map[string]interface{}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return 0, nil
}

type Logger struct {
	*logrus.Logger
	//CallRelation to show stack list
	CallRelation uint32
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

// SetCallRelation to set CallRelation
func (logger *Logger) SetCallRelation(button uint32) {
	logger.CallRelation = button
}

var levels = map[string]logrus.Level{
	PanicLevel: logrus.PanicLevel,
	FatalLevel: logrus.FatalLevel,
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
	TraceLevel: logrus.TraceLevel,
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := levels[level]
	return ok
}

func convertLevel(level string) logrus.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return logrus.InfoLevel
}

var (
	mu   sync.Mutex
	clog *Logger
	vlog *Logger
)

// Init loggers. vlog writes to rotated files only, clog writes to stderr and
// the same files unless disableCPrint is set. Stdout is left to command output.
func Init(path, filename string, level string, age uint32, disableCPrint bool) {
	mu.Lock()
	defer mu.Unlock()

	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	v := NewLogger()
	LoadFunctionHooker(v)
	v.Hooks.Add(fileHooker)
	v.Out = &emptyWriter{}
	v.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	v.Level = convertLevel(level)

	c := v
	if !disableCPrint {
		c = NewLogger()
		LoadFunctionHooker(c)
		c.Hooks.Add(fileHooker)
		c.Out = os.Stderr
		c.Formatter = &logrus.TextFormatter{FullTimestamp: true}
		c.Level = convertLevel(level)
	}
	vlog, clog = v, c

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

func loggers() (*Logger, *Logger) {
	mu.Lock()
	initialized := clog != nil
	mu.Unlock()
	if !initialized {
		Init(filepath.Join(os.TempDir(), defaultFilename), defaultFilename, InfoLevel, 0, false)
	}
	mu.Lock()
	defer mu.Unlock()
	return clog, vlog
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stderr + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	output(c, level, msg, formats)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	output(v, level, msg, formats)
}

func output(l *Logger, level uint32, msg string, formats []LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		l.SetCallRelation(MsgFormatMulti)
		entry.Panic(msg)
	case FATAL:
		l.SetCallRelation(MsgFormatMulti)
		entry.Fatal(msg)
	case ERROR:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	case WARN:
		l.SetCallRelation(MsgFormatSingle)
		entry.Warn(msg)
	case INFO:
		l.SetCallRelation(MsgFormatSingle)
		entry.Info(msg)
	case DEBUG:
		l.SetCallRelation(MsgFormatSingle)
		entry.Debug(msg)
	case TRACE:
		l.SetCallRelation(MsgFormatSingle)
		entry.Trace(msg)
	default:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
