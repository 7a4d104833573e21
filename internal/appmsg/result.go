package appmsg

import "fmt"

// Result is the outcome code reported by the message channel. The values
// form a bit set so they can be logged and compared like host result codes.
type Result uint16

const (
	ResultOK             Result = 0
	ResultSendTimeout    Result = 1 << 1
	ResultSendRejected   Result = 1 << 2
	ResultNotConnected   Result = 1 << 3
	ResultInvalidArgs    Result = 1 << 5
	ResultBusy           Result = 1 << 6
	ResultBufferOverflow Result = 1 << 7
	ResultClosed         Result = 1 << 13
	ResultInternalError  Result = 1 << 14
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultSendTimeout:
		return "send timeout"
	case ResultSendRejected:
		return "send rejected"
	case ResultNotConnected:
		return "not connected"
	case ResultInvalidArgs:
		return "invalid args"
	case ResultBusy:
		return "busy"
	case ResultBufferOverflow:
		return "buffer overflow"
	case ResultClosed:
		return "closed"
	case ResultInternalError:
		return "internal error"
	default:
		return fmt.Sprintf("result(%d)", uint16(r))
	}
}
