// Package storage exports analyzed profiles to Elasticsearch for search and
// dashboarding. The export is optional: the analysis pipeline works without
// it.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/elasticsearch/mappings"
)

// ElasticsearchStorage indexes trader profiles into a single index.
type ElasticsearchStorage struct {
	client *es.Client
	index  string
}

// NewElasticsearchStorage creates an Elasticsearch storage instance writing
// to the given index.
func NewElasticsearchStorage(client *es.Client, index string) *ElasticsearchStorage {
	return &ElasticsearchStorage{client: client, index: index}
}

// IndexProfile indexes one profile, keyed by username so re-analysis
// overwrites the previous document.
func (s *ElasticsearchStorage) IndexProfile(ctx context.Context, profile *domain.UserProfile) error {
	docBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(docBytes),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(profile.Username),
	)
	if err != nil {
		return fmt.Errorf("failed to index profile: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing profile: %s", res.String())
	}

	return nil
}

// BulkIndexProfiles indexes a batch of profiles in one request.
func (s *ElasticsearchStorage) BulkIndexProfiles(ctx context.Context, profiles []*domain.UserProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, profile := range profiles {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": s.index,
				"_id":    profile.Username,
			},
		}

		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := json.NewEncoder(&buf).Encode(profile); err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("bulk request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk indexing error: %s", res.String())
	}

	return nil
}

// EnsureIndex creates the profile index with its mapping if it does not
// already exist.
func (s *ElasticsearchStorage) EnsureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists(
		[]string{s.index},
		s.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	mapping := mappings.NewTraderProfilesMapping()
	if err := mapping.Validate(); err != nil {
		return fmt.Errorf("invalid index mapping: %w", err)
	}
	body, err := mapping.GetJSON()
	if err != nil {
		return err
	}

	createRes, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithContext(ctx),
		s.client.Indices.Create.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", s.index, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating index %s: %s", s.index, createRes.String())
	}

	return nil
}

// TestConnection tests the connection to Elasticsearch.
func (s *ElasticsearchStorage) TestConnection(ctx context.Context) error {
	res, err := s.client.Info(s.client.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error response from Elasticsearch: %s", res.String())
	}

	return nil
}
