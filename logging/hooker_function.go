package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxCallers bounds the frames recorded for MsgFormatMulti entries.
const maxCallers = 3

type functionHooker struct {
	innerLogger *Logger
}

// callers returns the frames above logrus and this package.
func callers() []runtime.Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if !strings.Contains(f.Function, "sirupsen/logrus") &&
			!strings.Contains(f.Function, "rsha/logging.") {
			out = append(out, f)
			if len(out) == maxCallers {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

func shortFunc(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	frames := callers()
	if len(frames) == 0 {
		return
	}
	entry.Data["func"] = shortFunc(frames[0].Function)
	entry.Data["line"] = frames[0].Line
	entry.Data["file"] = filepath.Base(frames[0].File)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i, f := range callers() {
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(f.File), shortFunc(f.Function), f.Line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	switch h.innerLogger.CallRelation {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{innerLogger: logger})
}
