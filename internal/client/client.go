// Package client delivers commands to the niriusd control socket.
package client

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/Keyruu/nirius/internal/engine"
)

// Send writes one command to the daemon socket, half-closes the write
// side, and reads back the result. One connection per command.
func Send(socketPath string, cmd engine.Command) (engine.Result, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return engine.Result{}, fmt.Errorf("cannot connect to niriusd on %s (is it running?): %w", socketPath, err)
	}
	defer conn.Close()

	if err := json.NewEncoder(conn).Encode(cmd); err != nil {
		return engine.Result{}, fmt.Errorf("send command: %w", err)
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		if err := uc.CloseWrite(); err != nil {
			return engine.Result{}, fmt.Errorf("close write side: %w", err)
		}
	}

	var res engine.Result
	if err := json.NewDecoder(conn).Decode(&res); err != nil {
		return engine.Result{}, fmt.Errorf("read result: %w", err)
	}
	return res, nil
}
