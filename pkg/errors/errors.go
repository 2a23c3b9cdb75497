package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
)

type ErrorLevel int

const (
	LevelFatal ErrorLevel = iota + 1
	LevelError
	LevelWarning
	LevelInfo
)

func (l ErrorLevel) String() string {
	return [...]string{"", "Fatal", "Error", "Warning", "Info"}[l]
}

type ApplicationError struct {
	Reference   string
	Title       string
	Detail      string
	RootCause   error
	Level       ErrorLevel
	OccurredAt  time.Time
	CallerTrace []string
}

func (e *ApplicationError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s][%s] %s", e.OccurredAt.Format(time.RFC3339), e.Reference, e.Title)

	if e.Detail != "" {
		fmt.Fprintf(&b, " - %s", e.Detail)
	}

	if e.RootCause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.RootCause)
	}

	return b.String()
}

func (e *ApplicationError) Unwrap() error {
	return e.RootCause
}

func New(ref, title, detail string, cause error, level ErrorLevel) *ApplicationError {
	return &ApplicationError{
		Reference:   ref,
		Title:       title,
		Detail:      detail,
		RootCause:   cause,
		Level:       level,
		OccurredAt:  time.Now().UTC(),
		CallerTrace: captureCallerInfo(3),
	}
}

// * HasReference reports whether any ApplicationError in err's chain carries ref
func HasReference(err error, ref string) bool {
	for err != nil {
		var appErr *ApplicationError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Reference == ref {
			return true
		}
		err = appErr.RootCause
	}
	return false
}

func captureCallerInfo(skip int) []string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	var trace []string
	for {
		frame, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}

	return trace
}

// * HTTPErrorResponse is the only error shape clients ever see
type HTTPErrorResponse struct {
	Error string `json:"error"`
}

// * WriteHTTPError logs the full error server-side and answers with a short,
// * generic message. Upstream payloads and traces never reach the client.
func WriteHTTPError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		var appErr *ApplicationError
		if errors.As(err, &appErr) && appErr.Level == LevelInfo {
			logger.Info("%d %s: %v", status, message, err)
		} else {
			logger.Error("%d %s: %v", status, message, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(HTTPErrorResponse{Error: message})
}
