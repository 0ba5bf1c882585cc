package entities

import "time"

// Screenshot описывает сохранённый скриншот одного прогона
type Screenshot struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Scenario string    `json:"scenario,omitempty"`
	TakenAt  time.Time `json:"taken_at"`
}
