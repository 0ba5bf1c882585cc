package interfaces

import "e2e_automation/domain/entities"

// ArtifactStore представляет интерфейс для хранения артефактов прогона
type ArtifactStore interface {
	// SaveScreenshot сохраняет скриншот и возвращает запись о нём
	SaveScreenshot(name, scenario string, data []byte) (entities.Screenshot, error)

	// Manifest возвращает записи о сохранённых артефактах
	Manifest() ([]entities.Screenshot, error)
}
