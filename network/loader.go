package network

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// LoadRawNetwork reads a raw dataset document from an HTTP URL or a local
// file path. The document is parsed but not yet resolved; pass the result to
// Build.
func LoadRawNetwork(urlOrPath string) (RawNetwork, error) {
	var raw RawNetwork
	data, err := fetchBytes(urlOrPath)
	if err != nil {
		return raw, fmt.Errorf("load dataset: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("parse dataset: %w", err)
	}
	return raw, nil
}

func fetchBytes(urlOrPath string) ([]byte, error) {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}
	resp, err := http.Get(urlOrPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}
	return io.ReadAll(resp.Body)
}
