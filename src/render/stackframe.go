package render

import (
	"fmt"
	"path/filepath"
	"runtime"
)

type stackFrame struct {
	function string
	file     string
	line     int
}

func newStackFrame(pc uintptr) stackFrame {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return stackFrame{function: "unknown"}
	}
	file, line := fn.FileLine(pc)
	return stackFrame{function: fn.Name(), file: file, line: line}
}

func (f stackFrame) String() string {
	if f.file == "" {
		return f.function
	}
	return fmt.Sprintf("%s (%s:%d)", f.function, filepath.Base(f.file), f.line)
}
