package customerdir

import (
	"fmt"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}

type ContentTypeError struct {
	ContentType string
}

func NewContentTypeError(contentType string) *ContentTypeError {
	return &ContentTypeError{ContentType: contentType}
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("Unexpected content type `%s`: JSON expected", e.ContentType)
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
