package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	data := `[
		{"message_id": "1", "username": "alice", "body": "scalping today", "likes_count": 3},
		{"message_id": "2", "username": "bob", "body": "holding long term", "is_comment": true},
		{"message_id": "1", "username": "alice", "body": "duplicate"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	posts, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts after dedup, got %d", len(posts))
	}
	if posts[0].Username != "alice" || posts[0].LikesCount != 3 {
		t.Errorf("unexpected first post: %+v", posts[0])
	}
	if !posts[1].IsComment {
		t.Error("is_comment flag lost in decode")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	if _, err := LoadDataset("/nonexistent/messages.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDatasetMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDataset(path); err == nil {
		t.Error("expected error for malformed dataset")
	}
}
