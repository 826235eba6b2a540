// Package dummy implements an in-memory transport client for tests.
package dummy

import (
	"io"
	"net"
)

// Client replays a fixed byte stream on reads and accumulates everything
// written to it.
type Client struct {
	data    []byte
	Written []byte
	Closed  bool
}

func NewClient(data []byte) *Client {
	return &Client{data: data}
}

// NewNopClient returns a client with nothing to read.
func NewNopClient() *Client {
	return new(Client)
}

func (c *Client) Read(b []byte) (int, error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n := copy(b, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Client) Write(b []byte) (int, error) {
	c.Written = append(c.Written, b...)
	return len(b), nil
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IP{127, 0, 0, 1}, Port: 0}
}

func (c *Client) Close() error {
	c.Closed = true
	return nil
}
