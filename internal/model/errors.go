package model

import "errors"

var (
	// ErrNoSegments колесо без секторов нельзя ни отрисовать, ни крутить
	ErrNoSegments = errors.New("wheel has no segments")
	// ErrSpinInProgress операция недоступна, пока колесо крутится
	ErrSpinInProgress = errors.New("spin in progress")
	// ErrSegmentIndex индекс сектора вне диапазона
	ErrSegmentIndex = errors.New("segment index out of range")
	// ErrNoSpin нет активного спина, который можно остановить
	ErrNoSpin = errors.New("no spin in progress")
	// ErrClosed колесо остановлено вместе с сервером
	ErrClosed = errors.New("wheel is closed")
)
