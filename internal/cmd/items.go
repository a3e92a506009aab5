package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"multiselect/internal/config"
)

// readItems parses one item per line. A tab separates the text from its
// data; blank lines are skipped.
func readItems(r io.Reader) ([]config.ItemConfig, error) {
	var items []config.ItemConfig
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		text, data, _ := strings.Cut(line, "\t")
		items = append(items, config.ItemConfig{Text: text, Data: data})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// readItemsFile reads items from path, or from stdin when path is "-"
func readItemsFile(path string, stdin io.Reader) ([]config.ItemConfig, error) {
	if path == "-" {
		return readItems(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()
	return readItems(f)
}
