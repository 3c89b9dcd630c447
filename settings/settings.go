// Package settings reads the host settings file.
//
// The file holds one Key=Value pair per line. Blank lines and lines
// starting with '#' are skipped, unknown keys are ignored. Files ending in
// .yaml or .yml are read as a YAML mapping with the same keys.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recognized keys.
const (
	Fullscreen       = "Fullscreen"
	Width            = "Width"
	Height           = "Height"
	Title            = "Title"
	UpdatesPerSecond = "UpdatesPerSecond"
)

// Settings is the immutable startup configuration.
type Settings struct {
	Fullscreen       bool
	Width            int
	Height           int
	Title            string
	UpdatesPerSecond int
}

// Default returns the settings used for keys missing from the file.
func Default() Settings {
	return Settings{
		Fullscreen:       false,
		Width:            800,
		Height:           640,
		Title:            "My Game",
		UpdatesPerSecond: 60,
	}
}

// Flag returns the integer form of a boolean setting: 1 for true, 0 for false.
func (settings Settings) Flag(key string) int {
	switch key {
	case Fullscreen:
		if settings.Fullscreen {
			return 1
		}
	}
	return 0
}

// Error is a recognized key with an unusable value; the key keeps its
// previous value.
type Error struct {
	Line  int
	Key   string
	Value string
}

func (err *Error) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("line %d: wrong value %q for %s in settings", err.Line, err.Value, err.Key)
	}
	return fmt.Sprintf("wrong value %q for %s in settings", err.Value, err.Key)
}

// Load reads settings from path. A missing file yields the defaults and
// the open error. Value errors are joined into the returned error while
// every other key is still applied.
func Load(path string) (Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return Default(), err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(file)
	}
	return Parse(file)
}

// Parse reads Key=Value lines from r, starting from Default.
func Parse(r io.Reader) (Settings, error) {
	settings := Default()
	var errs []error

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: expected Key=Value, got %q", line, text))
			continue
		}
		if err := settings.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			err.Line = line
			errs = append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return settings, errors.Join(errs...)
}

// ParseYAML reads a YAML mapping of keys to scalar values from r.
func ParseYAML(r io.Reader) (Settings, error) {
	settings := Default()

	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("invalid settings yaml: %w", err)
	}

	var errs []error
	for _, key := range []string{Fullscreen, Width, Height, Title, UpdatesPerSecond} {
		node, ok := doc[key]
		if !ok {
			continue
		}
		if node.Kind != yaml.ScalarNode {
			errs = append(errs, &Error{Line: node.Line, Key: key, Value: "<" + kindName(node.Kind) + ">"})
			continue
		}
		if err := settings.set(key, node.Value); err != nil {
			err.Line = node.Line
			errs = append(errs, err)
		}
	}
	return settings, errors.Join(errs...)
}

func (settings *Settings) set(key, value string) *Error {
	switch key {
	case Fullscreen:
		switch value {
		case "true":
			settings.Fullscreen = true
		case "false":
			settings.Fullscreen = false
		default:
			return &Error{Key: key, Value: value}
		}
	case Width:
		return setPositive(&settings.Width, key, value)
	case Height:
		return setPositive(&settings.Height, key, value)
	case UpdatesPerSecond:
		return setPositive(&settings.UpdatesPerSecond, key, value)
	case Title:
		if value == "" {
			return &Error{Key: key, Value: value}
		}
		settings.Title = value
	}
	return nil
}

func setPositive(dst *int, key, value string) *Error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return &Error{Key: key, Value: value}
	}
	*dst = n
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	}
	return "node"
}
