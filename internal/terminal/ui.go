package terminal

import (
	"context"
	"spin_wheel/internal/service"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

type Deps struct {
	Serv   service.WheelService
	Screen tcell.Screen
	Logger *zap.Logger
}

// UI Колесо в терминале: рисует снимок сервиса и переводит клавиши в его операции
type UI struct {
	serv    service.WheelService
	screen  tcell.Screen
	logger  *zap.Logger
	message string
}

func New(deps Deps) *UI {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UI{serv: deps.Serv, screen: deps.Screen, logger: logger}
}

// Run владеет экраном до выхода: q, Ctrl-C или отмена ctx
func (u *UI) Run(ctx context.Context) error {
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()

	events, unsubscribe := u.serv.Subscribe()
	defer unsubscribe()

	input := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(input, quit)
	defer close(quit)

	u.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			drain(events)
			u.draw()
		case ev, ok := <-input:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				u.screen.Sync()
			case *tcell.EventKey:
				if !u.handleKey(ctx, ev) {
					return nil
				}
			}
			u.draw()
		}
	}
}

// handleKey false означает выход
func (u *UI) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	u.message = ""

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter, tcell.KeyEscape:
		u.serv.Dismiss(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			_, err := u.serv.Spin(ctx)
			u.report(err)
		case 'r':
			_, err := u.serv.Randomize(ctx)
			u.report(err)
		case 'c':
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				return false
			}
			u.report(u.serv.Cancel(ctx))
		}
	}
	return true
}

func (u *UI) report(err error) {
	if err == nil {
		return
	}
	u.logger.Debug("key action rejected", zap.Error(err))
	u.message = err.Error()
}

// drain пропускает накопившиеся кадры: рисовать имеет смысл только последнее состояние
func drain[T any](ch <-chan T) {
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
