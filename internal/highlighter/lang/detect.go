package lang

import (
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/bethropolis/codepad/internal/logger"
)

// Resolve maps a configured language setting to a profile. An empty or
// "auto" setting detects from the file; an unknown name falls back to the
// default profile.
func Resolve(setting, filePath string, content []byte) *Language {
	setting = strings.ToLower(strings.TrimSpace(setting))
	if setting != "" && setting != Auto {
		if l := Get(setting); l != nil {
			return l
		}
		logger.Warnf("Unknown language %q, falling back to %s", setting, Default)
		return Get(Default)
	}
	return Detect(filePath, content)
}

// Detect picks a profile for a file: registered extension first, then
// go-enry by filename, shebang and content. Anything unrecognized gets the
// default profile.
func Detect(filePath string, content []byte) *Language {
	Initialize()

	if filePath != "" {
		if l := GetForFile(filePath); l != nil {
			logger.DebugTagf("highlight", "Detected %s for %s by extension", l.Name, filePath)
			return l
		}
	}

	if filePath != "" || len(content) > 0 {
		if name := enryLanguage(filePath, content); name != "" {
			if l := forLinguist(name); l != nil {
				logger.DebugTagf("highlight", "Detected %s for %q via enry (%s)", l.Name, filePath, name)
				return l
			}
			logger.DebugTagf("highlight", "No profile for enry language %s, using %s", name, Default)
		}
	}
	return Get(Default)
}

func enryLanguage(filePath string, content []byte) string {
	if len(content) > 0 {
		if name, safe := enry.GetLanguageByShebang(content); safe {
			return name
		}
	}
	if filePath != "" {
		if name, safe := enry.GetLanguageByFilename(filePath); safe {
			return name
		}
		if name, safe := enry.GetLanguageByExtension(filePath); safe {
			return name
		}
	}
	if len(content) == 0 {
		return ""
	}
	return enry.GetLanguage(filePath, content)
}
