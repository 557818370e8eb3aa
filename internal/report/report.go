package report

import "time"

// Report is the payload delivered to the runtime error endpoint. Field names
// follow the receiving service's model; null-able fields stay pointers so they
// serialize as JSON null rather than being omitted.
type Report struct {
	BoardID       string  `json:"boardId"`
	Timestamp     *string `json:"timestamp"`
	File          *string `json:"file"`
	Line          *int    `json:"line"`
	StackTrace    string  `json:"stackTrace"`
	Message       string  `json:"message"`
	ExceptionType string  `json:"exceptionType"`
	RequestPath   string  `json:"requestPath"`
	RequestMethod string  `json:"requestMethod"`
	UserAgent     *string `json:"userAgent"`
}

func nowUTC() *string {
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	return &ts
}
