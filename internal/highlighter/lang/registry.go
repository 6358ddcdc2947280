package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/codepad/internal/logger"
)

var (
	registry struct {
		sync.RWMutex
		languages     []*Language
		byName        map[string]*Language
		extToLanguage map[string]*Language
	}

	initOnce sync.Once
)

// Initialize registers the built-in profiles once.
func Initialize() {
	initOnce.Do(func() {
		registry.byName = make(map[string]*Language)
		registry.extToLanguage = make(map[string]*Language)
		for _, l := range builtin() {
			register(l)
		}
		logger.DebugTagf("highlight", "Language registry initialized with %d profiles", len(registry.languages))
	})
}

// Register adds a language to the registry, replacing one of the same name.
func Register(l *Language) {
	Initialize()
	register(l)
}

func register(l *Language) {
	registry.Lock()
	defer registry.Unlock()

	name := strings.ToLower(l.Name)
	if existing, ok := registry.byName[name]; ok {
		logger.Warnf("Language %s already registered, replacing", name)
		for i, candidate := range registry.languages {
			if candidate == existing {
				registry.languages = append(registry.languages[:i], registry.languages[i+1:]...)
				break
			}
		}
	}
	registry.languages = append(registry.languages, l)
	registry.byName[name] = l

	for _, ext := range l.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok && existing != l {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, l.Name)
		}
		registry.extToLanguage[lowerExt] = l
	}
	logger.DebugTagf("highlight", "Registered language: %s with extensions: %v", l.Name, l.Extensions)
}

// Get returns the language registered under name, or nil.
func Get(name string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()
	return registry.byName[strings.ToLower(name)]
}

// GetForFile returns the language registered for the file's extension, or nil.
func GetForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		return nil
	}
	return registry.extToLanguage[ext]
}

// GetAll returns all registered languages in registration order.
func GetAll() []*Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}

// forLinguist returns the language claiming the go-enry name, or nil.
func forLinguist(name string) *Language {
	registry.RLock()
	defer registry.RUnlock()

	for _, l := range registry.languages {
		for _, n := range l.Linguist {
			if strings.EqualFold(n, name) {
				return l
			}
		}
	}
	return nil
}
