package server

import (
	"net"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"

	"value-arena/internal/catalog"
	"value-arena/internal/tui"
)

// No auth handlers are installed, so any client may connect. The terminal
// view is read-only.
func newSSHServer(cfg Config, c *catalog.Catalog, logger *zap.Logger) (*ssh.Server, error) {
	return wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.SSHPort)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(c, cfg.GlamourStyle)),
			logging.MiddlewareWithLogger(sshLogger{logger.Sugar()}),
		),
	)
}

func teaHandler(c *catalog.Catalog, style string) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := s.Pty()
		if !active {
			wish.Fatalln(s, "no active terminal, connect with ssh -t")
			return nil, nil
		}

		m := tui.New(c, tui.Options{
			Width:    pty.Window.Width,
			Height:   pty.Window.Height,
			Style:    style,
			Renderer: bubbletea.MakeRenderer(s),
		})
		return m, append(bubbletea.MakeOptions(s), tea.WithAltScreen())
	}
}

// sshLogger lets wish's logging middleware write through zap.
type sshLogger struct {
	*zap.SugaredLogger
}

func (l sshLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}
