package lexicon

// Literal signal vocabularies. These match as plain substrings on folded
// text, so short entries like "iv" and "now" intentionally hit inside
// larger words; the scoring formulas were tuned against that behavior.

// DayTrading flags fast-twitch intraday trading language.
var DayTrading = NewLiteralGroup("day_trading",
	"scalp", "scalping", "day trade", "intraday", "momentum",
	"breakout", "squeeze", "gamma", "short squeeze",
	"0dte", "same day", "quick trade", "fast money",
)

// Options flags options-trading vocabulary.
var Options = NewLiteralGroup("options",
	"call", "calls", "put", "puts", "option", "options",
	"strike", "expiry", "expiration", "theta", "delta", "vega",
	"iv", "implied volatility", "premium", "otm", "itm", "atm",
)

// Derivatives flags futures, leverage and margin vocabulary.
var Derivatives = NewLiteralGroup("derivatives",
	"future", "futures", "contract", "leverage", "leveraged",
	"margin", "3x", "2x", "inverse", "short etf",
)

// Urgent flags time-pressure language.
var Urgent = NewLiteralGroup("urgent",
	"now", "right now", "asap", "quick", "fast", "immediate",
	"today", "alert", "breaking", "just", "buying now", "selling now",
)

// Technical flags technical-analysis vocabulary.
var Technical = NewLiteralGroup("technical",
	"rsi", "macd", "ema", "sma", "vwap", "fibonacci", "support",
	"resistance", "channel", "breakout", "breakdown", "pattern",
	"chart", "technical", "indicator",
)

// FuturesTerms flags futures-contract discussion for instrument profiling.
var FuturesTerms = NewLiteralGroup("futures_terms",
	"future", "futures", "/es", "/nq", "/ym",
)

// CryptoTerms flags cryptocurrency discussion for instrument profiling.
var CryptoTerms = NewLiteralGroup("crypto_terms",
	"btc", "eth", "crypto", "bitcoin", "ethereum",
)

// Adversarial flags hostile or mocking discussion tone.
var Adversarial = NewLiteralGroup("adversarial",
	"wrong", "disagree", "nope", "nah", "no way", "false",
	"incorrect", "stupid", "dumb", "idiot", "moron",
	"lol", "lmao", "haha", "joke", "clown", "🤡",
	"delusional", "cope", "copium", "salty",
	"shut up", "stfu", "gtfo", "loser", "baghold",
	"rekt", "wrecked", "dumping on", "fade",
)

// Collaborative flags supportive or inquisitive discussion tone.
var Collaborative = NewLiteralGroup("collaborative",
	"agree", "exactly", "yes", "yup", "same", "this",
	"good point", "nice call", "great", "love",
	"thanks", "thank you", "helpful", "appreciate",
	"gl", "good luck", "lfg", "lets go",
	"what do you think", "thoughts", "how", "why",
	"can you explain", "tell me more",
)

// NeutralTone flags hedged, noncommittal discussion tone.
var NeutralTone = NewLiteralGroup("neutral_tone",
	"maybe", "possibly", "could be", "perhaps",
	"depends", "not sure", "idk", "interesting",
)

// leveragedTickers are leveraged and inverse ETF symbols.
var leveragedTickers = map[string]struct{}{
	"TQQQ": {}, "SQQQ": {}, "UVXY": {}, "SPXU": {}, "SPXL": {},
	"TNA": {}, "TZA": {}, "UPRO": {}, "SDOW": {}, "UDOW": {},
	"LABU": {}, "LABD": {}, "NAIL": {}, "NUGT": {},
}

// IsLeveraged reports whether symbol is a known leveraged or inverse ETF.
// Symbols are matched exactly as collected, uppercase.
func IsLeveraged(symbol string) bool {
	_, ok := leveragedTickers[symbol]
	return ok
}

// LeveragedTickers returns the known leveraged ETF symbols.
func LeveragedTickers() []string {
	out := make([]string, 0, len(leveragedTickers))
	for s := range leveragedTickers {
		out = append(out, s)
	}
	return out
}
