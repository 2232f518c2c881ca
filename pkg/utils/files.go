package utils

import (
	"path/filepath"
	"strings"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// OutputPath derives the .py path written next to a translated source file.
func OutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".py"
	}
	return strings.TrimSuffix(inPath, ext) + ".py"
}
