package gamedata

// RangeDef is a pair of endpoint colors a tile shade is picked between.
type RangeDef struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

// TerrainPalette maps terrain names ("land", "shore", "water") to ranges.
type TerrainPalette map[string]RangeDef

// PaletteDef is the root of palette.json.
type PaletteDef struct {
	Overworld         TerrainPalette    `json:"overworld"`
	Underworld        TerrainPalette    `json:"underworld"`
	Features          map[string]string `json:"features"`
	Player            string            `json:"player"`
	Text              string            `json:"text"`
	Credits           string            `json:"credits"`
	CreditsBackground string            `json:"creditsBackground"`
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (PaletteDef, error) {
	return Load[PaletteDef]("palette.json")
}
