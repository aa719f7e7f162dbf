package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultLanguageToExt maps programming language names to file extensions.
var DefaultLanguageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"java":       "java",
	"c++":        "cpp",
	"cpp":        "cpp",
	"c":          "c",
	"html":       "html",
	"vue":        "vue",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"sh":         "sh",
	"php":        "php",
	"markdown":   "md",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"text":       "txt",
	"toml":       "toml",
	"go":         "go",
	"ruby":       "rb",
	"rust":       "rs",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"mermaid":    "mmd",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ExtractValidFilename extracts a valid filename (with extension) from a line of text.
func ExtractValidFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// GetExt returns the file extension for a given language.
func GetExt(language string) string {
	ext, ok := DefaultLanguageToExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// GetFilename generates a filename for an extracted code block.
//
// A filename mentioned in the first two lines (e.g. "// main.go") wins;
// otherwise the name is snippet.<ext> for the block's language.
func GetFilename(code string, language string) string {
	lines := strings.SplitN(strings.TrimSpace(code), "\n", 3)
	sample := lines[0]
	if len(lines) > 1 {
		sample += " " + lines[1]
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := GetExt(language)
	name := ExtractValidFilename(sample)
	if name == "" {
		return "snippet." + ext
	}
	if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
		return name
	}
	return name + "." + ext
}
