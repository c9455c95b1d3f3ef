package actions

// ResultStatus is how an action ended.
type ResultStatus uint8

const (
	StatusOK    ResultStatus = iota // the document or host changed
	StatusNoOp                      // nothing to do; not a failure
	StatusError                     // the action failed; Result.Error says why
)

var statusNames = [...]string{
	StatusOK:    "ok",
	StatusNoOp:  "no-op",
	StatusError: "error",
}

func (s ResultStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is returned by every action. Actions report failure through it
// rather than by panicking.
type Result struct {
	Status  ResultStatus
	Error   error
	Message string         // short human-readable note, may be empty
	Data    map[string]any // action-specific values, e.g. "value" for math
}

// IsOK reports StatusOK.
func (r Result) IsOK() bool { return r.Status == StatusOK }

// IsError reports StatusError.
func (r Result) IsError() bool { return r.Status == StatusError }

func Success() Result { return Result{Status: StatusOK} }

func SuccessWithMessage(msg string) Result { return Result{Status: StatusOK, Message: msg} }

func NoOp() Result { return Result{Status: StatusNoOp} }

func NoOpWithMessage(msg string) Result { return Result{Status: StatusNoOp, Message: msg} }

func Error(err error) Result { return Result{Status: StatusError, Error: err} }

// WithMessage returns r with Message replaced.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithData returns r with key set in a copy of Data.
func (r Result) WithData(key string, value any) Result {
	data := make(map[string]any, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	data[key] = value
	r.Data = data
	return r
}

// GetData looks up key in Data.
func (r Result) GetData(key string) (any, bool) {
	v, ok := r.Data[key]
	return v, ok
}
