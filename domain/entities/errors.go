package entities

import (
	"fmt"
	"time"
)

// ConfigError означает ошибку конфигурации локаторов: нет файла или ключа
type ConfigError struct {
	Source string // locator file the lookup was scoped to, empty if none configured
	Key    string
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("no locator file configured, cannot resolve key %q", e.Key)
	}
	return fmt.Sprintf("locator key %q not found in %s", e.Key, e.Source)
}

// NotFoundError означает отсутствующий или некорректный файл локаторов
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("locator file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("locator file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TimeoutError означает истёкшее ожидание страницы или элемента
type TimeoutError struct {
	Op      string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s", e.Op, e.Timeout)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
