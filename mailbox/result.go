package mailbox

import (
	"fmt"
)

// Result is the reason code attached to a failed open or a dropped message.
type Result int

const (
	ResultOK              Result = 0
	ResultSendTimeout     Result = 1 << 1
	ResultSendRejected    Result = 1 << 2
	ResultNotConnected    Result = 1 << 3
	ResultAppNotRunning   Result = 1 << 4
	ResultInvalidArgs     Result = 1 << 5
	ResultBusy            Result = 1 << 6
	ResultBufferOverflow  Result = 1 << 7
	ResultAlreadyReleased Result = 1 << 9
	ResultOutOfMemory     Result = 1 << 12
	ResultClosed          Result = 1 << 13
	ResultInternalError   Result = 1 << 14
)

var resultNames = map[Result]string{
	ResultOK:              "ok",
	ResultSendTimeout:     "send timeout",
	ResultSendRejected:    "send rejected",
	ResultNotConnected:    "not connected",
	ResultAppNotRunning:   "app not running",
	ResultInvalidArgs:     "invalid args",
	ResultBusy:            "busy",
	ResultBufferOverflow:  "buffer overflow",
	ResultAlreadyReleased: "already released",
	ResultOutOfMemory:     "out of memory",
	ResultClosed:          "closed",
	ResultInternalError:   "internal error",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", int(r))
}

func (r Result) Error() string {
	return "mailbox: " + r.String()
}
