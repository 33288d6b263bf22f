package quest

// Result identifies the line of dialogue a transition produced.
type Result int

const (
	ResultNone Result = iota
	ResultNothingHere
	ResultCaught
	ResultNothingBiting
	ResultPoleOffer
	ResultPoleUnaffordable
	ResultPoleBought
	ResultOutOfWares
	ResultPotionOffer
	ResultPotionUnaffordable
	ResultPotionBought
	ResultDeclined
	ResultCoin
	ResultHermanos
	ResultLandWalkEnded
)

var resultKeys = [...]string{
	ResultNone:               "none",
	ResultNothingHere:        "nothing-here",
	ResultCaught:             "caught",
	ResultNothingBiting:      "nothing-biting",
	ResultPoleOffer:          "pole-offer",
	ResultPoleUnaffordable:   "pole-unaffordable",
	ResultPoleBought:         "pole-bought",
	ResultOutOfWares:         "out-of-wares",
	ResultPotionOffer:        "potion-offer",
	ResultPotionUnaffordable: "potion-unaffordable",
	ResultPotionBought:       "potion-bought",
	ResultDeclined:           "declined",
	ResultCoin:               "coin",
	ResultHermanos:           "hermanos",
	ResultLandWalkEnded:      "landwalk-ended",
}

// String returns the key used to look the line up in the dialogue data.
func (r Result) String() string {
	if r < 0 || int(r) >= len(resultKeys) {
		return "unknown"
	}
	return resultKeys[r]
}

// Keys lists every result key other than "none".
func Keys() []string {
	return append([]string(nil), resultKeys[1:]...)
}
