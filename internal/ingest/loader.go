package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

// LoadDataset reads a JSON array of posts from disk and deduplicates it
// through a collector. The file format matches what the fetch collaborator
// writes: a flat array of message objects.
func LoadDataset(path string) ([]*domain.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var posts []*domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	collector := NewCollector()
	collector.AddBatch(posts)
	return collector.Posts(), nil
}
