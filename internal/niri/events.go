package niri

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
)

// EventStream is a persistent subscription to niri's event feed. It holds
// its own connection, separate from any request/response traffic.
type EventStream struct {
	conn net.Conn
	r    *bufio.Reader
}

// SubscribeEvents opens the event stream. The subscription request must be
// acknowledged with Handled before any events arrive.
func SubscribeEvents() (*EventStream, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to niri: %w", err)
	}

	if err := json.NewEncoder(conn).Encode(Request{Kind: RequestEventStream}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("request event stream: %w", err)
	}
	r := bufio.NewReader(conn)
	resp, err := readReply(r)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe to event stream: %w", err)
	}
	if !resp.Handled {
		conn.Close()
		return nil, fmt.Errorf("received unexpected reply: %v", resp)
	}
	return &EventStream{conn: conn, r: r}, nil
}

// Next blocks until the next event. It returns io.EOF once niri has shut
// down; any other error refers to the single unreadable event and the
// stream stays usable.
func (s *EventStream) Next() (*Event, error) {
	line, err := s.r.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read event: %w", err)
	}
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return nil, fmt.Errorf("decode event %q: %w", line, err)
	}
	return &ev, nil
}

func (s *EventStream) Close() error {
	return s.conn.Close()
}
