package lexicon

import "github.com/jonesrussell/trader-pulse/internal/domain"

// Regex vocabularies for the label classifiers. Unlike the literal signal
// groups these are word-boundary anchored, so "call" here will not hit
// inside "recall". Family order is the tie-break order: when two labels
// reach the same count, the earlier one wins.

// Timeframes maps trading-horizon labels to their pattern groups.
var Timeframes = []LabelGroup{
	{domain.TimeframeUltraShortTerm, NewRegexGroup(domain.TimeframeUltraShortTerm,
		`\b0dte\b`, `\bsame day\b`, `\bintraday\b`, `\bscalp(ing)?\b`,
		`\bday trad(e|ing)\b`, `\bright now\b`, `\bquick flip\b`,
		`\bin and out\b`, `\b(1|5|15)m chart\b`, `\bvwap\b`, `\blevel 2\b`,
	)},
	{domain.TimeframeShortTerm, NewRegexGroup(domain.TimeframeShortTerm,
		`\bswing trad(e|ing)\b`, `\bfew days\b`, `\bshort term\b`,
		`\bweekly\b`, `\bthis week\b`, `\b(1|4)h chart\b`,
		`\bholding through (week|earnings)\b`, `\b3-day play\b`,
	)},
	{domain.TimeframeMediumTerm, NewRegexGroup(domain.TimeframeMediumTerm,
		`\bposition trad(e|ing)\b`, `\bmedium term\b`, `\bfew weeks\b`,
		`\bcouple months\b`, `\bmomentum play\b`, `\bbuilding position\b`,
		`\baccumulat(e|ing)\b`, `\bmonthly expiration\b`, `\bLEAPS?\b`,
	)},
	{domain.TimeframeLongTerm, NewRegexGroup(domain.TimeframeLongTerm,
		`\blong term\b`, `\bholding\b`, `\binvestor\b`, `\bbuy and hold\b`,
		`\bretirement\b`, `\byears?\b`, `\bforever hold\b`, `\bcore holding\b`,
		`\bnever selling\b`, `\bthinking \d+ years\b`, `\bdividend\b`,
	)},
}

// Strategies maps trading-strategy labels to their pattern groups.
var Strategies = []LabelGroup{
	{domain.StrategyScalper, NewRegexGroup(domain.StrategyScalper,
		`\bscalp(ing)?\b`, `\bquick flip\b`, `\bin and out\b`, `\bticks?\b`,
		`\blevel 2\b`, `\btape reading\b`, `\bseconds to minutes\b`,
	)},
	{domain.StrategyDayTrader, NewRegexGroup(domain.StrategyDayTrader,
		`\bday trad(e|ing)\b`, `\b0dte\b`, `\bintraday\b`,
		`\bend of day\b`, `\bno overnight risk\b`, `\bclose(s|d|ing) all positions\b`,
	)},
	{domain.StrategySwingTrader, NewRegexGroup(domain.StrategySwingTrader,
		`\bswing trad(e|ing)\b`, `\bswing\b`, `\bfew days\b`,
		`\bweekly setup\b`, `\bshort term play\b`, `\b(2|3|5)-day\b`,
	)},
	{domain.StrategyMomentumTrader, NewRegexGroup(domain.StrategyMomentumTrader,
		`\bmomentum\b`, `\bbreakout\b`, `\btrending\b`, `\briding the wave\b`,
		`\bcatching the move\b`, `\bvolume surge\b`, `\bstrong move\b`,
	)},
	{domain.StrategyValueInvestor, NewRegexGroup(domain.StrategyValueInvestor,
		`\bundervalued\b`, `\bcheap\b`, `\bPE ratio\b`, `\bvalue\b`,
		`\bfundamentals\b`, `\bintrinsic value\b`, `\bmargin of safety\b`,
		`\bbuying the dip\b`, `\bdiscount\b`,
	)},
	{domain.StrategyGrowthInvestor, NewRegexGroup(domain.StrategyGrowthInvestor,
		`\bgrowth stock\b`, `\brevenue growth\b`, `\bdisruptive\b`,
		`\binnovation\b`, `\bfuture potential\b`, `\bhigh growth\b`,
		`\bexpansion\b`, `\bscaling\b`,
	)},
	{domain.StrategyIncomeTrader, NewRegexGroup(domain.StrategyIncomeTrader,
		`\bdividend(s)?\b`, `\bincome\b`, `\bcovered call(s)?\b`,
		`\bselling premium\b`, `\btheta gang\b`, `\byield\b`,
		`\bmonthly income\b`, `\bcash flow\b`,
	)},
	{domain.StrategyContrarian, NewRegexGroup(domain.StrategyContrarian,
		`\bcontrarian\b`, `\bbuying the dip\b`, `\beveryone wrong\b`,
		`\bfade the move\b`, `\boversold\b`, `\boverbought\b`,
		`\bsentiment extreme\b`, `\bagainst the crowd\b`,
	)},
}

// Conviction tiers, strongest first.
var (
	ConvictionHigh = NewRegexGroup(domain.ConvictionHigh,
		`\ball in\b`, `\bbiggest position\b`, `\bno doubt\b`,
		`\bguaranteed\b`, `\b100%\b`, `\badding more\b`,
		`\bvery confident\b`, `\bheavy position\b`, `\bmax conviction\b`,
	)
	ConvictionMedium = NewRegexGroup(domain.ConvictionMedium,
		`\bgood setup\b`, `\bthink it goes\b`, `\bshould work\b`,
		`\bstarter position\b`, `\bmoderate size\b`, `\bwill add if\b`,
	)
	ConvictionLow = NewRegexGroup(domain.ConvictionLow,
		`\blottery ticket\b`, `\bsmall spec\b`, `\bmight work\b`,
		`\bwe'll see\b`, `\brisky\b`, `\bjust ?\$?\d+\b`, `\bYOLO\b`,
	)
)

// Risk appetite signal groups.
var (
	RiskAggressive = NewRegexGroup(domain.RiskAggressive,
		`\b0dte\b`, `\bTQQQ|SQQQ\b`, `\bleverage\b`, `\bmargin\b`,
		`\bYOLO\b`, `\ball in\b`, `\b3x ETF\b`, `\bhigh risk\b`,
	)
	RiskConservative = NewRegexGroup(domain.RiskConservative,
		`\bdividend\b`, `\bblue chip\b`, `\bsafe\b`, `\bstable\b`,
		`\bcapital preservation\b`, `\blow risk\b`, `\bdefensive\b`,
	)
)
