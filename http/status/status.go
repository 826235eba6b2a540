package status

import "strconv"

// Code is a numeric HTTP response status code.
type Code uint16

const (
	SwitchingProtocols Code = 101

	OK             Code = 200
	Created        Code = 201
	Accepted       Code = 202
	NoContent      Code = 204
	ResetContent   Code = 205
	PartialContent Code = 206

	MultipleChoices  Code = 300
	MovedPermanently Code = 301
	MovedTemporarily Code = 302
	NotModified      Code = 304

	BadRequest                   Code = 400
	Unauthorized                 Code = 401
	Forbidden                    Code = 403
	NotFound                     Code = 404
	MethodNotAllowed             Code = 405
	NotAcceptable                Code = 406
	ProxyAuthenticationRequired  Code = 407
	RequestTimeout               Code = 408
	Conflict                     Code = 409
	Gone                         Code = 410
	LengthRequired               Code = 411
	PreconditionFailed           Code = 412
	RequestEntityTooLarge        Code = 413
	RequestURITooLong            Code = 414
	UnsupportedMediaType         Code = 415
	RequestedRangeNotSatisfiable Code = 416
	ExpectationFailed            Code = 417

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505
)

// Text returns the standard reason phrase for the code, or an empty string
// if the code is not recognized.
func Text(code Code) string {
	switch code {
	case SwitchingProtocols:
		return "Switching Protocols"
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case ResetContent:
		return "Reset Content"
	case PartialContent:
		return "Partial Content"
	case MultipleChoices:
		return "Multiple Choices"
	case MovedPermanently:
		return "Moved Permanently"
	case MovedTemporarily:
		return "Moved Temporarily"
	case NotModified:
		return "Not Modified"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case NotAcceptable:
		return "Not Acceptable"
	case ProxyAuthenticationRequired:
		return "Proxy Authentication Required"
	case RequestTimeout:
		return "Request Timeout"
	case Conflict:
		return "Conflict"
	case Gone:
		return "Gone"
	case LengthRequired:
		return "Length Required"
	case PreconditionFailed:
		return "Precondition Failed"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request-URI Too Long"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case RequestedRangeNotSatisfiable:
		return "Requested Range Not Satisfiable"
	case ExpectationFailed:
		return "Expectation Failed"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case GatewayTimeout:
		return "Gateway Timeout"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	}

	return ""
}

// Status is a status line fragment: a numeric code plus its reason phrase.
type Status struct {
	Code   Code
	Reason string
}

// FromCode resolves a numeric code into a full status. Unrecognized codes
// carry the "Unknown" reason phrase.
func FromCode(code Code) Status {
	if text := Text(code); text != "" {
		return Status{Code: code, Reason: text}
	}

	return Status{Code: code, Reason: "Unknown"}
}

// New builds a status with a custom reason phrase.
func New(code Code, reason string) Status {
	return Status{Code: code, Reason: reason}
}

// Known tells whether the code belongs to the recognized set.
func (s Status) Known() bool {
	return Text(s.Code) != ""
}

// String renders the "{code} {reason}" fragment of a status line.
func (s Status) String() string {
	return strconv.Itoa(int(s.Code)) + " " + s.Reason
}
