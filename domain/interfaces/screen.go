package interfaces

import (
	"context"
	"time"
)

// Screen представляет интерфейс одного логического экрана приложения
type Screen interface {
	// Path возвращает путь экрана относительно базового URL
	Path() string

	// Navigate переходит на экран и ждёт загрузки
	Navigate(ctx context.Context) error

	// WaitForLoad ждёт полной загрузки экрана
	WaitForLoad(ctx context.Context, timeout time.Duration) error
}
