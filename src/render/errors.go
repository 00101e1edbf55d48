package render

import (
	"fmt"
	"runtime"

	"github.com/vulkan-go/vulkan"
)

// NewError wraps a non-success vulkan result, annotated with the calling
// frame. It returns nil for vulkan.Success.
func NewError(retVal vulkan.Result) error {
	if retVal != vulkan.Success {
		pc, _, _, ok := runtime.Caller(1)
		if !ok {
			return fmt.Errorf("vulkan error: %w (%d)", vulkan.Error(retVal), retVal)
		}
		frame := newStackFrame(pc)
		return fmt.Errorf("vulkan error: %w (%d) on %s",
			vulkan.Error(retVal), retVal, frame.String())
	}
	return nil
}

func IsError(retVal vulkan.Result) bool {
	return retVal != vulkan.Success
}

// OrPanic runs the finalizers and panics when err is set.
func OrPanic(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	panic(err)
}

// CheckError converts a recovered panic into an error. Use deferred:
//
//	defer CheckError(&err)
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%+v", v)
	}
}
