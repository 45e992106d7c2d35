package mappings

// TraderProfilesMapping represents the Elasticsearch mapping for exported
// trader profiles
type TraderProfilesMapping struct {
	Settings TraderProfilesSettings `json:"settings"`
	Mappings TraderProfilesMappings `json:"mappings"`
}

// TraderProfilesSettings defines index-level settings
type TraderProfilesSettings struct {
	BaseSettings
}

// TraderProfilesMappings defines the field mappings for trader profiles
type TraderProfilesMappings struct {
	Properties TraderProfilesProperties `json:"properties"`
}

// TraderProfilesProperties defines the properties for each field in the
// trader profile document
type TraderProfilesProperties struct {
	Username       Field       `json:"username"`
	PostCount      Field       `json:"post_count"`
	CommentCount   Field       `json:"comment_count"`
	Followers      Field       `json:"followers"`
	Signals        ObjectField `json:"signals"`
	FastTwitch     Field       `json:"fast_twitch_score"`
	Tier           Field       `json:"tier"`
	Timeframe      ObjectField `json:"timeframe"`
	Strategy       ObjectField `json:"strategy"`
	Conviction     ObjectField `json:"conviction"`
	Risk           ObjectField `json:"risk"`
	Instruments    ObjectField `json:"instruments"`
	ProductFit     ObjectField `json:"product_fit"`
	SymbolsTracked Field       `json:"symbols_tracked"`
}

// NewTraderProfilesMapping creates the trader profiles mapping with default
// settings
func NewTraderProfilesMapping() *TraderProfilesMapping {
	signalField := Field{Type: "float"}

	return &TraderProfilesMapping{
		Settings: TraderProfilesSettings{
			BaseSettings: DefaultSettings(),
		},
		Mappings: TraderProfilesMappings{
			Properties: TraderProfilesProperties{
				Username:     Field{Type: "keyword"},
				PostCount:    Field{Type: "integer"},
				CommentCount: Field{Type: "integer"},
				Followers:    Field{Type: "integer"},
				Signals: ObjectField{Properties: map[string]Field{
					"post_frequency":     signalField,
					"urgency":            signalField,
					"options_activity":   signalField,
					"derivatives":        signalField,
					"day_trading_lingo":  signalField,
					"technical_analysis": signalField,
					"leveraged_interest": signalField,
					"responsiveness":     signalField,
				}},
				FastTwitch: Field{Type: "float"},
				Tier:       Field{Type: "keyword"},
				Timeframe:  classificationProperties(),
				Strategy:   classificationProperties(),
				Conviction: ObjectField{Properties: map[string]Field{
					"level":    {Type: "keyword"},
					"score":    {Type: "float"},
					"evidence": {Type: "text", Analyzer: "standard"},
				}},
				Risk: ObjectField{Properties: map[string]Field{
					"category": {Type: "keyword"},
					"score":    {Type: "float"},
					"evidence": {Type: "text", Analyzer: "standard"},
				}},
				Instruments: ObjectField{Properties: map[string]Field{
					"primary": {Type: "keyword"},
				}},
				ProductFit: ObjectField{Properties: map[string]Field{
					"score":      {Type: "float"},
					"likelihood": {Type: "keyword"},
					"features":   {Type: "keyword"},
				}},
				SymbolsTracked: Field{Type: "keyword"},
			},
		},
	}
}

func classificationProperties() ObjectField {
	return ObjectField{Properties: map[string]Field{
		"primary":              {Type: "keyword"},
		"confidence":           {Type: "float"},
		"evidence":             {Type: "text", Analyzer: "standard"},
		"secondary":            {Type: "keyword"},
		"secondary_confidence": {Type: "float"},
	}}
}

// GetJSON returns the trader profiles mapping as a JSON string
func (m *TraderProfilesMapping) GetJSON() (string, error) {
	return ToJSON(m)
}

// Validate validates the trader profiles mapping configuration
func (m *TraderProfilesMapping) Validate() error {
	return ValidateSettings(m.Settings.BaseSettings)
}
