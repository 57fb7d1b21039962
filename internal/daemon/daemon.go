// Package daemon runs niriusd: the request server on the control socket
// and the event synchronizer keeping the state store current.
package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"

	"github.com/Keyruu/nirius/internal/engine"
	"github.com/Keyruu/nirius/internal/state"
)

// Daemon owns the one shared state store and serves client commands
// against it. Construction wires everything explicitly; there are no
// package-level singletons.
type Daemon struct {
	store  *state.Store
	engine *engine.Engine
	niri   engine.Compositor
	log    *slog.Logger
	socket string
}

func New(store *state.Store, comp engine.Compositor, logger *slog.Logger, socketPath string) *Daemon {
	return &Daemon{
		store:  store,
		engine: engine.New(store, comp),
		niri:   comp,
		log:    logger,
		socket: socketPath,
	}
}

// Run starts the event synchronizer and then serves client requests until
// the listener fails or the event feed ends the process.
func (d *Daemon) Run() error {
	go d.syncEvents()
	return d.Serve()
}

// Serve binds the control socket and handles one connection at a time.
// A stale socket file from a previous run is removed first. Bind failure
// is fatal; per-connection errors are not.
func (d *Daemon) Serve() error {
	if _, err := os.Stat(d.socket); err == nil {
		if err := os.Remove(d.socket); err != nil {
			return fmt.Errorf("remove stale socket %s: %w", d.socket, err)
		}
		d.log.Debug("removed stale socket from previous run", "socket", d.socket)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat socket %s: %w", d.socket, err)
	}

	ln, err := net.Listen("unix", d.socket)
	if err != nil {
		return fmt.Errorf("bind %s: %w", d.socket, err)
	}
	defer ln.Close()
	d.log.Info("niriusd listening", "socket", d.socket)

	for {
		conn, err := ln.Accept()
		if err != nil {
			d.log.Error("accept failed", "error", err)
			continue
		}
		d.handle(conn)
	}
}

// handle serves one connection: one command in, one result out.
func (d *Daemon) handle(conn net.Conn) {
	defer conn.Close()

	var cmd engine.Command
	if err := json.NewDecoder(conn).Decode(&cmd); err != nil {
		d.log.Error("could not read command from client", "error", err)
		return
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		if err := uc.CloseRead(); err != nil {
			d.log.Error("could not close read side", "error", err)
		}
	}
	d.log.Debug("received command", "cmd", cmd.Kind)

	res := d.engine.Dispatch(cmd)
	d.log.Debug("executed command", "cmd", cmd.Kind, "ok", res.OK)

	if err := json.NewEncoder(conn).Encode(res); err != nil {
		d.log.Error("could not send result to client", "error", err)
		return
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		if err := uc.CloseWrite(); err != nil {
			d.log.Error("could not close write side", "error", err)
		}
	}
}
