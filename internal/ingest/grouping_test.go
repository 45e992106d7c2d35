package ingest

import (
	"reflect"
	"testing"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

func TestGroupByUserDropsAnonymous(t *testing.T) {
	posts := []*domain.Post{
		{ID: "1", Username: "alice"},
		{ID: "2"},
		{ID: "3", Username: "bob"},
		{ID: "4", Username: "alice"},
	}

	groups := GroupByUser(posts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups["alice"]) != 2 || len(groups["bob"]) != 1 {
		t.Errorf("group sizes wrong: alice=%d bob=%d", len(groups["alice"]), len(groups["bob"]))
	}
	if groups["alice"][0].ID != "1" || groups["alice"][1].ID != "4" {
		t.Error("per-user post order not preserved")
	}
}

func TestEligibleUsersSortedAndFiltered(t *testing.T) {
	groups := map[string][]*domain.Post{
		"zoe":   {{}, {}, {}},
		"amy":   {{}, {}, {}, {}},
		"short": {{}},
	}

	users := EligibleUsers(groups, 3)
	if !reflect.DeepEqual(users, []string{"amy", "zoe"}) {
		t.Errorf("users = %v, want [amy zoe]", users)
	}
}
