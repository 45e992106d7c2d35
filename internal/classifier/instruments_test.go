package classifier

import (
	"reflect"
	"testing"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

func TestClassifyInstrumentsPerPost(t *testing.T) {
	posts := []*domain.Post{
		{Body: "buying calls on this", Symbols: []string{"SPY"}},
		{Body: "watching /es futures overnight"},
		{Body: "loading up", Symbols: []string{"TQQQ"}},
		{Body: "btc looks strong"},
		{Body: "solid company", Symbols: []string{"AAPL"}},
	}

	profile := ClassifyInstruments(posts)

	want := map[string]int{
		domain.InstrumentOptions:      1,
		domain.InstrumentFutures:      1,
		domain.InstrumentLeveragedETF: 1,
		domain.InstrumentCrypto:       1,
		domain.InstrumentStocks:       1,
	}
	if !reflect.DeepEqual(profile.Counts, want) {
		t.Errorf("counts = %v, want %v", profile.Counts, want)
	}
	// All tied at 1: precedence order picks options.
	if profile.Primary != domain.InstrumentOptions {
		t.Errorf("primary = %s, want options", profile.Primary)
	}
}

func TestClassifyInstrumentsOrderIndependent(t *testing.T) {
	forward := []*domain.Post{
		{Body: "buying puts"},
		{Body: "nice chart", Symbols: []string{"AAPL"}},
	}
	reversed := []*domain.Post{forward[1], forward[0]}

	a := ClassifyInstruments(forward)
	b := ClassifyInstruments(reversed)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("instrument profile depends on post order: %v vs %v", a, b)
	}
	if a.Counts[domain.InstrumentStocks] != 1 {
		t.Errorf("symbol-only post should count as stocks, got %v", a.Counts)
	}
}

func TestClassifyInstrumentsStocksExcludesDerivativePosts(t *testing.T) {
	// A post with symbols and options language is options, not stocks.
	posts := []*domain.Post{{Body: "grabbing some calls", Symbols: []string{"SPY"}}}

	profile := ClassifyInstruments(posts)
	if profile.Counts[domain.InstrumentStocks] != 0 {
		t.Errorf("stocks = %d, want 0", profile.Counts[domain.InstrumentStocks])
	}
	if profile.Primary != domain.InstrumentOptions {
		t.Errorf("primary = %s, want options", profile.Primary)
	}
}

func TestClassifyInstrumentsUnknownWhenEmpty(t *testing.T) {
	profile := ClassifyInstruments([]*domain.Post{{Body: "nothing here"}})
	if profile.Primary != domain.LabelUnknown {
		t.Errorf("primary = %s, want unknown", profile.Primary)
	}
}
