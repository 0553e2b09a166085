package dto

// Result is the envelope returned by every command endpoint. The presentation
// layer only ever sees a success flag, a short human-readable message and the
// payload; errors never cross this boundary as raw exceptions.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a successful result with an optional payload.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// OKMessage builds a successful result carrying only a message.
func OKMessage(msg string) Result {
	return Result{Success: true, Message: msg}
}

// Fail builds a failed result with a user-facing message.
func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}
