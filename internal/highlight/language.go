package highlight

import (
	"path/filepath"
	"strings"
)

// extLanguages maps lower-cased file extensions to Chroma lexer names.
var extLanguages = map[string]string{
	".go":       "go",
	".py":       "python",
	".js":       "javascript",
	".ts":       "typescript",
	".jsx":      "jsx",
	".tsx":      "tsx",
	".java":     "java",
	".c":        "c",
	".h":        "c",
	".cpp":      "cpp",
	".cc":       "cpp",
	".hpp":      "cpp",
	".rs":       "rust",
	".rb":       "ruby",
	".sh":       "bash",
	".bash":     "bash",
	".zsh":      "zsh",
	".sql":      "sql",
	".html":     "html",
	".css":      "css",
	".json":     "json",
	".yaml":     "yaml",
	".yml":      "yaml",
	".toml":     "toml",
	".ini":      "ini",
	".md":       "markdown",
	".markdown": "markdown",
	".lua":      "lua",
	".proto":    "protobuf",
}

var nameLanguages = map[string]string{
	"dockerfile": "docker",
	"makefile":   "make",
	"gemfile":    "ruby",
}

// DetectLanguage returns the Chroma language for a file path, or "text"
// when neither its extension nor its base name is known.
func DetectLanguage(path string) string {
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	if lang, ok := nameLanguages[strings.ToLower(filepath.Base(path))]; ok {
		return lang
	}
	return "text"
}
