// Package player controls playback through an external media player process.
package player

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/glebovdev/radio-cli/internal/station"
	"github.com/rs/zerolog/log"
)

const (
	DefaultVolume = 50
	MinVolume     = 0
	MaxVolume     = 100
)

// ErrAlreadyPlaying is returned by Play when a session is running.
var ErrAlreadyPlaying = errors.New("a station is already playing")

// PlayerState is the playback state shown in the controls panel.
type PlayerState int

const (
	StateStopped PlayerState = iota
	StatePlaying
)

func (s PlayerState) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StatePlaying:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}

// ControlChannel sends runtime commands to a running player.
type ControlChannel interface {
	SetVolume(volume int) error
}

// session is the one running player process together with its control
// socket. It exists only between Play and Stop.
type session struct {
	process Process
	title   string
	volume  int
}

// Controller owns the player process and the control socket. At most one
// session exists at a time.
type Controller struct {
	mu         sync.Mutex
	binary     string
	socketPath string
	launcher   Launcher
	control    ControlChannel
	volume     int
	session    *session
	status     string
}

// NewController returns a stopped controller that launches binary and
// talks to it over the unix socket at socketPath.
func NewController(binary, socketPath string) *Controller {
	return newController(binary, socketPath, ExecLauncher{}, NewIPCClient(socketPath))
}

func newController(binary, socketPath string, launcher Launcher, control ControlChannel) *Controller {
	return &Controller{
		binary:     binary,
		socketPath: socketPath,
		launcher:   launcher,
		control:    control,
		volume:     DefaultVolume,
	}
}

// Play starts s with the current volume. On failure the controller stays
// stopped and Status reports the reason.
func (c *Controller) Play(s station.Station) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		return ErrAlreadyPlaying
	}

	c.removeSocket()

	args := BuildArgs(c.volume, c.socketPath, s.URL)
	process, err := c.launcher.Launch(c.binary, args)
	if err != nil {
		c.status = fmt.Sprintf("Error: %v", err)
		log.Error().Err(err).Str("station", s.Title).Msg("Failed to start player")
		return fmt.Errorf("start %s: %w", c.binary, err)
	}

	c.session = &session{
		process: process,
		title:   s.Title,
		volume:  c.volume,
	}
	c.status = s.Title

	log.Info().Msgf("Playing %s (pid %d, volume %d%%)", s.Title, process.Pid(), c.volume)
	return nil
}

// Stop terminates the running player. Signal delivery failures are
// ignored: a process that already exited counts as stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	if c.session == nil {
		return
	}

	if err := c.session.process.Terminate(); err != nil {
		log.Debug().Err(err).Int("pid", c.session.process.Pid()).Msg("Terminate failed, treating player as stopped")
	}

	log.Debug().Msgf("Stopped %s", c.session.title)
	c.session = nil
	c.status = ""
}

// AdjustVolume changes the volume by delta. A result outside
// [MinVolume, MaxVolume] is rejected and the volume stays unchanged.
// It reports whether the volume changed.
func (c *Controller) AdjustVolume(delta int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	newVolume := c.volume + delta
	if newVolume < MinVolume || newVolume > MaxVolume {
		return false
	}
	c.volume = newVolume

	if c.session != nil {
		c.session.volume = newVolume
		if err := c.control.SetVolume(newVolume); err != nil {
			log.Debug().Err(err).Msg("Volume push to player failed")
		}
	}

	log.Debug().Msgf("Volume adjusted to %d%%", newVolume)
	return true
}

// Close stops playback and removes the control socket. Failures are
// ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.removeSocket()
}

func (c *Controller) removeSocket() {
	if c.socketPath == "" {
		return
	}
	if err := os.Remove(c.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Debug().Err(err).Str("socket", c.socketPath).Msg("Failed to remove control socket")
	}
}

// IsPlaying reports whether a session is running.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// GetState returns the current playback state.
func (c *Controller) GetState() PlayerState {
	if c.IsPlaying() {
		return StatePlaying
	}
	return StateStopped
}

// Volume returns the current volume.
func (c *Controller) Volume() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// Status returns the title of the playing station, the reason the last
// Play failed, or an empty string.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
