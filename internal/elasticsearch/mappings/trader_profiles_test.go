package mappings

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTraderProfilesMappingValidates(t *testing.T) {
	m := NewTraderProfilesMapping()
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestTraderProfilesMappingJSON(t *testing.T) {
	m := NewTraderProfilesMapping()

	out, err := m.GetJSON()
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("mapping is not valid JSON: %v", err)
	}

	for _, field := range []string{
		"username", "fast_twitch_score", "tier", "product_fit",
		"signals", "symbols_tracked",
	} {
		if !strings.Contains(out, `"`+field+`"`) {
			t.Errorf("mapping missing field %q", field)
		}
	}
}

func TestValidateSettings(t *testing.T) {
	if err := ValidateSettings(BaseSettings{NumberOfShards: 0, NumberOfReplicas: 1}); err == nil {
		t.Error("expected error for zero shards")
	}
	if err := ValidateSettings(BaseSettings{NumberOfShards: 1, NumberOfReplicas: -1}); err == nil {
		t.Error("expected error for negative replicas")
	}
	if err := ValidateSettings(DefaultSettings()); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}
