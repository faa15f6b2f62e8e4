package service

import (
	"context"
	"spin_wheel/internal/model"
)

type WheelService interface {
	Snapshot() model.WheelSnapshot
	Stats() model.SpinStats

	// Spin запускает вращение; во время вращения возвращает model.ErrSpinInProgress
	Spin(ctx context.Context) (model.Spin, error)
	// Respin прерывает текущее вращение (если есть) и сразу запускает новое
	Respin(ctx context.Context) (model.Spin, error)
	Cancel(ctx context.Context) error

	SetLabel(ctx context.Context, index int, text string) error
	ReplaceSegments(ctx context.Context, segments []model.Segment) error
	Randomize(ctx context.Context) ([]model.Segment, error)
	Dismiss(ctx context.Context)

	Subscribe() (<-chan model.Event, func())
	Close()
}
