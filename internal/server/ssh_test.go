package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-arena/internal/catalog"
	"value-arena/internal/tui"
)

// fakeSession implements the parts of ssh.Session the terminal handler
// touches. Anything else panics through the nil embedded interface.
type fakeSession struct {
	ssh.Session
	pty    ssh.Pty
	active bool
	stdout bytes.Buffer
	stderr bytes.Buffer
	exit   int
	closed bool
}

func (s *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) { return s.pty, nil, s.active }
func (s *fakeSession) EmulatedPty() bool                        { return true }
func (s *fakeSession) Environ() []string                        { return nil }
func (s *fakeSession) Context() ssh.Context                     { return fakeContext{} }
func (s *fakeSession) Stderr() io.ReadWriter                    { return &s.stderr }
func (s *fakeSession) Read([]byte) (int, error)                 { return 0, io.EOF }
func (s *fakeSession) Write(p []byte) (int, error)              { return s.stdout.Write(p) }

func (s *fakeSession) Exit(code int) error {
	s.exit = code
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeContext struct {
	ssh.Context
}

func (fakeContext) Value(any) any { return nil }

func TestTeaHandlerRequiresPty(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	s := &fakeSession{}
	m, opts := teaHandler(c, "notty")(s)
	assert.Nil(t, m)
	assert.Nil(t, opts)
	assert.Contains(t, s.stderr.String(), "no active terminal")
	assert.Equal(t, 1, s.exit)
	assert.True(t, s.closed)
}

func TestTeaHandlerBuildsModelFromPty(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	s := &fakeSession{
		active: true,
		pty:    ssh.Pty{Window: ssh.Window{Width: 160, Height: 48}},
	}
	m, opts := teaHandler(c, "notty")(s)
	require.NotNil(t, m)
	assert.NotEmpty(t, opts)
	assert.Empty(t, s.stderr.String())
	assert.False(t, s.closed)

	model, ok := m.(tui.Model)
	require.True(t, ok)
	assert.Equal(t, tui.LeaderboardView, model.CurrentView())
	assert.Contains(t, model.View(), "Kindness Survey")
}
