//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
)

const fruitItems = "Apple\tid-apple\nBanana\tid-banana\nCherry\tid-cherry\n"

// altScreenExit is written when the program leaves the alternate screen
const altScreenExit = "\x1b[?1049l"

// CreateTestWorkspace creates a temporary directory used as $HOME and working directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes content to a path relative to the workspace
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0o644)
}

// WriteConfig writes the default config file the app loads on start
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	return tf.WriteFile(filepath.Join(".config", "multiselect", "config.toml"), content)
}

// PrintedOutput returns what the app printed after leaving the alternate screen
func (tf *TUITestFramework) PrintedOutput() string {
	tf.t.Helper()
	s := tf.Snapshot()
	idx := strings.LastIndex(s, altScreenExit)
	if idx < 0 {
		return ""
	}
	return ansiRe.ReplaceAllString(s[idx+len(altScreenExit):], "")
}
