package status

// HTTPError is a parse or protocol failure which maps onto a response code.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrBadRequestLine      = NewError(BadRequest, "malformed request line")
	ErrBadHeaderLine       = NewError(BadRequest, "header line lacks a name-value separator")
	ErrURLDecoding         = NewError(BadRequest, "invalid urlencoded sequence")
	ErrBadQueryString      = NewError(BadRequest, "malformed query string")
	ErrBadTarget           = NewError(BadRequest, "malformed request target")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
