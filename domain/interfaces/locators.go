package interfaces

import "e2e_automation/domain/entities"

// LocatorSource представляет интерфейс для загрузки карт локаторов
type LocatorSource interface {
	// Load загружает карту локаторов по пути к файлу
	Load(path string) (entities.LocatorMap, error)
}
