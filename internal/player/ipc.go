package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ipcTimeout         = 500 * time.Millisecond
	mpvCommandReqIDVol = 1
)

// MpvCommand is one request of the mpv JSON IPC protocol.
type MpvCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id,omitempty"`
}

// MpvResponse is a reply or an event line sent back by mpv.
type MpvResponse struct {
	Error     string `json:"error"`
	RequestID int    `json:"request_id"`
	Event     string `json:"event"`
}

// IPCClient sends commands to a running mpv through its
// --input-ipc-server socket. Each command uses a fresh connection.
type IPCClient struct {
	socketPath string
	timeout    time.Duration
}

// NewIPCClient returns a client for the socket at socketPath.
func NewIPCClient(socketPath string) *IPCClient {
	return &IPCClient{
		socketPath: socketPath,
		timeout:    ipcTimeout,
	}
}

// SetVolume sets the volume property of the running player.
func (c *IPCClient) SetVolume(volume int) error {
	return c.send(MpvCommand{
		Command:   []any{"set_property", "volume", volume},
		RequestID: mpvCommandReqIDVol,
	})
}

func (c *IPCClient) send(cmd MpvCommand) error {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("could not connect to mpv socket: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("set mpv socket deadline: %w", err)
	}

	if err := json.NewEncoder(conn).Encode(cmd); err != nil {
		return fmt.Errorf("error sending mpv command: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Bytes()

		var resp MpvResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			log.Debug().Str("line", string(line)).Err(err).Msg("Could not parse line from mpv")
			continue
		}

		if resp.Event != "" || resp.RequestID != cmd.RequestID {
			continue
		}
		if resp.Error != "success" {
			return fmt.Errorf("mpv rejected %v: %s", cmd.Command, resp.Error)
		}
		return nil
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from mpv socket: %w", err)
	}
	return errors.New("mpv closed the connection without a reply")
}
