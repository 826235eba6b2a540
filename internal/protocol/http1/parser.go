// Package http1 implements the HTTP/1.x wire protocol: a bounded request
// parser and a response serializer.
package http1

import (
	"bytes"
	"io"
	"strings"

	"github.com/indigo-web/utils/uf"

	"github.com/weft-http/weft/config"
	"github.com/weft-http/weft/http"
	"github.com/weft-http/weft/http/header"
	"github.com/weft-http/weft/http/method"
	"github.com/weft-http/weft/http/status"
	"github.com/weft-http/weft/http/version"
	"github.com/weft-http/weft/transport"
)

// Parser reads and parses whole requests off a transport client. A request
// must fit into a single read of the configured buffer size; whatever does
// not fit is never seen.
type Parser struct {
	cfg  *config.Config
	buff []byte
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg:  cfg,
		buff: make([]byte, cfg.NET.ReadBufferSize),
	}
}

// Parse reads a single request from the client. The returned request owns
// its bytes, so the parser may be reused immediately.
func (p *Parser) Parse(client transport.Client) (*http.Request, error) {
	n, err := client.Read(p.buff)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, io.EOF
	}

	data := bytes.Clone(p.buff[:n])
	request := http.NewRequest(client, Serialize)
	request.Raw = data

	target, data, err := p.parseRequestLine(request, data)
	if err != nil {
		return nil, err
	}

	head, body := splitHead(data)
	request.Body = uf.B2S(body)

	host, err := p.parseHeaders(request, head)
	if err != nil {
		return nil, err
	}

	if isAbsolute(target) {
		request.Uri, err = http.AbsoluteForm(target)
	} else {
		request.Uri, err = http.OriginForm(host, target)
	}
	if err != nil {
		return nil, err
	}

	return request, nil
}

// parseRequestLine fills the method and the version in, returning the raw
// target and what follows the line. The target is resolved only after the
// headers are known, as origin-form resolution needs the Host value.
func (p *Parser) parseRequestLine(request *http.Request, data []byte) (string, []byte, error) {
	sp := bytes.IndexByte(data, ' ')
	if sp == -1 {
		return "", nil, status.ErrBadRequestLine
	}

	request.Method = method.Parse(uf.B2S(data[:sp]))
	data = data[sp+1:]

	sp = bytes.IndexByte(data, ' ')
	if sp == -1 {
		return "", nil, status.ErrBadRequestLine
	}

	target := uf.B2S(data[:sp])
	data = data[sp+1:]

	cr := bytes.IndexByte(data, '\r')
	if cr == -1 || cr+1 >= len(data) || data[cr+1] != '\n' {
		return "", nil, status.ErrBadRequestLine
	}

	request.Version = version.Parse(uf.B2S(data[:cr]))

	return target, data[cr+2:], nil
}

// parseHeaders parses the header block, returning the Host value for later
// target resolution.
func (p *Parser) parseHeaders(request *http.Request, head []byte) (string, error) {
	request.Headers = make(header.Headers, 0, p.cfg.Headers.Prealloc)

	var host string

	for len(head) > 0 {
		var line []byte
		if crlf := bytes.Index(head, []byte("\r\n")); crlf != -1 {
			line, head = head[:crlf], head[crlf+2:]
		} else {
			line, head = head, nil
		}

		if len(line) == 0 {
			continue
		}

		sep := bytes.Index(line, []byte(": "))
		if sep == -1 {
			return "", status.ErrBadHeaderLine
		}

		h, err := header.Parse(uf.B2S(line[:sep]), uf.B2S(line[sep+2:]))
		if err != nil {
			return "", err
		}

		if value, ok := h.(header.Host); ok {
			host = string(value)
		}

		request.Headers = append(request.Headers, h)
	}

	return host, nil
}

// isAbsolute tells whether the target must be decomposed on its own.
// Anything else, asterisk-form and authority-form included, resolves
// against the Host header.
func isAbsolute(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// splitHead cuts the message at the first empty line. Everything beyond it
// is the body, verbatim.
func splitHead(data []byte) (head, body []byte) {
	if end := bytes.Index(data, []byte("\r\n\r\n")); end != -1 {
		return data[:end], data[end+4:]
	}

	return data, nil
}
