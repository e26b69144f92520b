package words

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// seedFile is the on-disk shape of a word list. Either field may be used; a
// sentence is split on whitespace and appended after the explicit words.
type seedFile struct {
	Words    []string `json:"words"`
	Sentence string   `json:"sentence"`
}

// ErrEmptySeed is returned when a seed file yields no words.
var ErrEmptySeed = errors.New("words: seed file contains no words")

// Load reads a JSON seed file and returns a fresh collection.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	titles, err := decodeSeed(data)
	if err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	return New(titles), nil
}

func decodeSeed(data []byte) ([]string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptySeed
	}
	var titles []string
	if data[0] == '[' {
		if err := json.Unmarshal(data, &titles); err != nil {
			return nil, err
		}
	} else {
		var seed seedFile
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, err
		}
		titles = append(titles, seed.Words...)
		titles = append(titles, strings.Fields(seed.Sentence)...)
	}
	cleaned := titles[:0]
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		cleaned = append(cleaned, title)
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptySeed
	}
	return cleaned, nil
}
