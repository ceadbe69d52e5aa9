package stylesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// BackupSuffix is appended to a user stylesheet path for its pre-injection backup.
const BackupSuffix = ".zen-explorer-backup"

// InjectWriter keeps composed imports in tool-owned files and adds a single
// import of each into the corresponding user stylesheet.
type InjectWriter struct{}

// Strategy returns StrategyInject.
func (InjectWriter) Strategy() Strategy {
	return StrategyInject
}

// InjectLine returns the import line placed in a user stylesheet for a generated file.
func InjectLine(generatedFileName string) string {
	return fmt.Sprintf(`@import url("%s"); /* zen-explorer */`, generatedFileName)
}

func injectPattern(generatedFileName string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*@import\b.*["'(/]` + regexp.QuoteMeta(generatedFileName) + `["')]`)
}

// HasInjection reports whether content already imports generatedFileName.
func HasInjection(content string, generatedFileName string) bool {
	pattern := injectPattern(generatedFileName)
	for _, line := range splitLines(content) {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// Plan writes changed generated files and injects missing imports.
func (InjectWriter) Plan(paths profile.Paths, composed Composed, read ReadFunc) ([]Write, error) {
	pairs := []struct {
		generated string
		user      string
		body      string
	}{
		{paths.GeneratedChrome, paths.UserChrome, composed.Chrome},
		{paths.GeneratedContent, paths.UserContent, composed.Content},
	}

	var writes []Write
	for _, pair := range pairs {
		current, exists, err := read(pair.generated)
		if err != nil {
			return nil, err
		}
		if !exists || current != pair.body {
			writes = append(writes, Write{Kind: WriteGenerated, Path: pair.generated, Data: []byte(pair.body), Perm: 0o644})
		}
	}
	for _, pair := range pairs {
		userWrites, err := planInjection(pair.user, baseName(pair.generated), read)
		if err != nil {
			return nil, err
		}
		writes = append(writes, userWrites...)
	}
	return writes, nil
}

func planInjection(userPath string, generatedName string, read ReadFunc) ([]Write, error) {
	content, exists, err := read(userPath)
	if err != nil {
		return nil, err
	}
	legacy := hasLegacyLines(content)
	if exists && HasInjection(content, generatedName) && !legacy {
		return nil, nil
	}

	var writes []Write
	if exists {
		_, backupExists, err := read(userPath + BackupSuffix)
		if err != nil {
			return nil, err
		}
		if !backupExists {
			writes = append(writes, Write{Kind: WriteBackup, Path: userPath + BackupSuffix, Data: []byte(content), Perm: 0o644})
		}
	}
	body := content
	if legacy {
		// Imports left by the overwrite strategy now live in the generated file.
		body = PreservedContent(content)
		if body != "" {
			body += "\n"
		}
	}
	writes = append(writes, Write{
		Kind: WriteInject,
		Path: userPath,
		Data: []byte(injectInto(body, InjectLine(generatedName))),
		Perm: 0o644,
	})
	return writes, nil
}

func hasLegacyLines(content string) bool {
	for _, line := range splitLines(content) {
		if IsThemeImport(line) || strings.TrimSpace(line) == PreservedDelimiter {
			return true
		}
	}
	return false
}

// injectInto places line first, after a leading @charset rule if present,
// because @import is ignored after any other rule.
func injectInto(content string, line string) string {
	if strings.TrimSpace(content) == "" {
		return line + "\n"
	}
	lines := splitLines(content)
	if strings.HasPrefix(strings.TrimSpace(lines[0]), "@charset") {
		rest := strings.Join(lines[1:], "\n")
		return lines[0] + "\n" + line + "\n" + rest
	}
	return line + "\n" + strings.ReplaceAll(content, "\r\n", "\n")
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
