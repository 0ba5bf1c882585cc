package entities

// LocatorMap отображает символьные ключи в test-id элементов страницы
type LocatorMap map[string]string

// Resolve - returns the element identifier registered for key
func (m LocatorMap) Resolve(source, key string) (string, error) {
	testID, ok := m[key]
	if !ok || testID == "" {
		return "", &ConfigError{Source: source, Key: key}
	}
	return testID, nil
}

// Clone - returns an independent copy of the map
func (m LocatorMap) Clone() LocatorMap {
	out := make(LocatorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
