package classifier

import (
	"github.com/jonesrussell/trader-pulse/internal/domain"
	"github.com/jonesrussell/trader-pulse/internal/lexicon"
)

// instrumentOrder fixes both the tie-break precedence for the primary label
// and the stable iteration order over the count map.
var instrumentOrder = []string{
	domain.InstrumentOptions,
	domain.InstrumentFutures,
	domain.InstrumentLeveragedETF,
	domain.InstrumentCrypto,
	domain.InstrumentStocks,
}

// ClassifyInstruments tallies which instrument classes a user discusses.
// Each post is classified independently: a post counts toward stocks only
// when it carries symbols and none of the derivative classes fired for that
// same post, so the tally does not depend on post order.
func ClassifyInstruments(posts []*domain.Post) domain.InstrumentProfile {
	counts := make(map[string]int, len(instrumentOrder))
	for _, label := range instrumentOrder {
		counts[label] = 0
	}

	for _, p := range posts {
		body := lexicon.Fold(p.Body)

		options := lexicon.Options.Contains(body)
		futures := lexicon.FuturesTerms.Contains(body)
		crypto := lexicon.CryptoTerms.Contains(body)
		leveraged := false
		for _, sym := range p.Symbols {
			if lexicon.IsLeveraged(sym) {
				leveraged = true
				break
			}
		}

		if options {
			counts[domain.InstrumentOptions]++
		}
		if futures {
			counts[domain.InstrumentFutures]++
		}
		if leveraged {
			counts[domain.InstrumentLeveragedETF]++
		}
		if crypto {
			counts[domain.InstrumentCrypto]++
		}
		if len(p.Symbols) > 0 && !options && !futures && !leveraged {
			counts[domain.InstrumentStocks]++
		}
	}

	primary := domain.LabelUnknown
	best := 0
	for _, label := range instrumentOrder {
		if counts[label] > best {
			best = counts[label]
			primary = label
		}
	}

	return domain.InstrumentProfile{Counts: counts, Primary: primary}
}
