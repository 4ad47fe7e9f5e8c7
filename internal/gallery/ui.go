package gallery

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/paper-kit/paper/internal/config"
)

const (
	clearMessageTimeout = time.Second * 10
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, buildVersion string, buildDate string, buildCommit string, parentCtx chan any) *UI {
	zone.NewGlobal()

	options := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(userConfig.FPS),
	}
	if userConfig.MouseEnabled {
		options = append(options, tea.WithMouseCellMotion(), tea.WithMouseAllMotion())
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(userConfig, buildVersion, buildDate, buildCommit, parentCtx),
			options...),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
