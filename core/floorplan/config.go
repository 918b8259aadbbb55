package floorplan

// Config holds the plan legend as comma-separated character lists.
type Config struct {
	// ChairTypes lists the characters counted as chairs.
	ChairTypes string `mapstructure:"chair_types" default:"C,S,P,W"`
	// Separators lists the characters that form walls.
	Separators string `mapstructure:"separators" default:"+,-,|,/,\\"`
}

// Legend builds the Legend described by the configuration.
func (c Config) Legend() (Legend, error) {
	return ParseLegend(c.ChairTypes, c.Separators)
}
