package niri

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
)

const socketEnv = "NIRI_SOCKET"

// SocketPath returns the niri IPC socket path from the environment.
func SocketPath() (string, error) {
	path := os.Getenv(socketEnv)
	if path == "" {
		return "", fmt.Errorf("%s is not set; is niri running?", socketEnv)
	}
	return path, nil
}

// Client issues one-shot requests against the niri socket. Each request
// uses a fresh connection, so a hung request never blocks another caller.
type Client struct{}

// NewClient returns a client talking to the socket named by $NIRI_SOCKET.
func NewClient() *Client {
	return &Client{}
}

// Request performs a single request/response round trip. There are no
// retries; an Err reply from niri comes back as a plain error.
func (c *Client) Request(req Request) (*Response, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to niri: %w", err)
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		if err := uc.CloseWrite(); err != nil {
			return nil, fmt.Errorf("close write side: %w", err)
		}
	}
	return readReply(bufio.NewReader(conn))
}

func readReply(r *bufio.Reader) (*Response, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, fmt.Errorf("read reply: %w", err)
	}
	var rep reply
	if err := json.Unmarshal(line, &rep); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	if rep.Err != nil {
		return nil, errors.New(*rep.Err)
	}
	if rep.Ok == nil {
		return nil, fmt.Errorf("reply carries neither Ok nor Err: %s", line)
	}
	return rep.Ok, nil
}
