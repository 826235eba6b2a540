// Package transport abstracts the byte stream a request arrives on.
package transport

import "net"

// Client is a single connected peer.
type Client interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Remote() net.Addr
	Close() error
}

type client struct {
	conn net.Conn
}

// NewClient wraps a network connection.
func NewClient(conn net.Conn) Client {
	return client{conn: conn}
}

func (c client) Read(b []byte) (int, error) {
	return c.conn.Read(b)
}

func (c client) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

func (c client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c client) Close() error {
	return c.conn.Close()
}
