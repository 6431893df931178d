package harness

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/openacid/testkeys"
)

// KeySetNames lists the bundled key sets.
func KeySetNames() []string {
	return testkeys.AssetNames()
}

// LoadKeySet returns the keys of a bundled key set.
func LoadKeySet(name string) ([]string, error) {
	if !slices.Contains(testkeys.AssetNames(), name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeySet, name)
	}
	return testkeys.Load(name), nil
}

// ReadKeys reads one key per line, skipping blank lines.
func ReadKeys(r io.Reader) ([]string, error) {
	keys := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return keys, nil
}

func ReadKeyFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer f.Close()
	return ReadKeys(f)
}
