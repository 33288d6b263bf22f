// Package quest tracks inventory and story progress.
//
// State is a plain value owned by the session. Every mutator returns an
// Outcome naming the dialogue line to show and whether anything changed.
package quest

import "github.com/samdwyer/treasurehunt/internal/world"

const (
	// Price in gold of both the fishing pole and the potion.
	Price = 100
	// CoralCost is the coral the potion consumes.
	CoralCost = 10
	// LandWalkSteps is how many movement keypresses one potion lasts.
	LandWalkSteps = 4000
	// CoinValue is the gold a single coin is worth.
	CoinValue = 10

	// StageAtlas is the stage at which the map-holding hermano is met.
	StageAtlas = 4
	// StagePotion is the stage at which the merchant brews the potion.
	StagePotion = 5
)

// State is the player's inventory and quest progress.
type State struct {
	Gold     int  `json:"gold"`
	Pole     bool `json:"pole"`
	Fish     int  `json:"fish"`
	Seaweed  int  `json:"seaweed"`
	Coral    int  `json:"coral"`
	Stage    int  `json:"stage"`
	LandWalk bool `json:"landWalk"`
	Steps    int  `json:"steps"` // land-walk steps remaining
	HasAtlas bool `json:"hasAtlas"`

	// Counter counts catches since the fishing dialogue last closed.
	Counter int `json:"counter"`
}

// Outcome is the result of a state transition.
type Outcome struct {
	Result  Result
	Changed bool
	// Stage is the stage before the transition; dialogue is keyed on it.
	Stage int
}

func (s *State) outcome(r Result, changed bool, stage int) Outcome {
	return Outcome{Result: r, Changed: changed, Stage: stage}
}

// MerchantOffer returns the merchant's opening line for the current stage.
func (s *State) MerchantOffer() Result {
	switch {
	case s.Stage == 0 && !s.Pole:
		if s.Gold < Price {
			return ResultPoleUnaffordable
		}
		return ResultPoleOffer
	case s.Stage >= StagePotion:
		if s.Gold < Price || s.Coral < CoralCost {
			return ResultPotionUnaffordable
		}
		return ResultPotionOffer
	default:
		return ResultOutOfWares
	}
}

// Buy accepts whatever the merchant is offering at the current stage.
func (s *State) Buy() Outcome {
	if s.Stage >= StagePotion {
		return s.BuyPotion()
	}
	return s.BuyFishingPole()
}

// Decline turns the merchant down.
func (s *State) Decline() Outcome {
	return s.outcome(ResultDeclined, false, s.Stage)
}

// BuyFishingPole trades gold for the pole and starts the quest.
func (s *State) BuyFishingPole() Outcome {
	stage := s.Stage
	if stage != 0 || s.Pole {
		return s.outcome(ResultOutOfWares, false, stage)
	}
	if s.Gold < Price {
		return s.outcome(ResultPoleUnaffordable, false, stage)
	}
	s.Gold -= Price
	s.Pole = true
	s.Stage = 1
	return s.outcome(ResultPoleBought, true, stage)
}

// BuyPotion trades gold and coral for land-walk. Repeat purchases after
// stage 5 re-arm the countdown without advancing the stage.
func (s *State) BuyPotion() Outcome {
	stage := s.Stage
	if stage < StagePotion {
		return s.outcome(ResultOutOfWares, false, stage)
	}
	if s.Gold < Price || s.Coral < CoralCost {
		return s.outcome(ResultPotionUnaffordable, false, stage)
	}
	s.Gold -= Price
	s.Coral -= CoralCost
	if s.Stage == StagePotion {
		s.Stage++
	}
	s.LandWalk = true
	s.Steps = LandWalkSteps
	return s.outcome(ResultPotionBought, true, stage)
}

// MeetHermanos talks to the talking fish on tile. Hermanos can only be
// seen with a pole; each one met advances the stage until the atlas is
// handed over.
func (s *State) MeetHermanos(tile *world.Tile) Outcome {
	stage := s.Stage
	if tile == nil || !tile.Has(world.FeatureHermanos) || !s.Pole {
		return s.outcome(ResultNothingHere, false, stage)
	}
	tile.Consume(world.FeatureHermanos)
	if stage == StageAtlas {
		s.HasAtlas = true
	}
	if s.Stage < StagePotion {
		s.Stage++
	}
	if s.Stage >= StagePotion {
		s.HasAtlas = true
	}
	return s.outcome(ResultHermanos, true, stage)
}

// TickLandWalk spends one step of land-walk for a movement keypress.
func (s *State) TickLandWalk(moved bool) Outcome {
	if !s.LandWalk || !moved {
		return s.outcome(ResultNone, false, s.Stage)
	}
	s.Steps--
	if s.Steps <= 0 {
		s.EndLandWalk()
		return s.outcome(ResultLandWalkEnded, true, s.Stage)
	}
	return s.outcome(ResultNone, true, s.Stage)
}

// EndLandWalk cancels any active land-walk.
func (s *State) EndLandWalk() {
	s.LandWalk = false
	s.Steps = 0
}

// Cast casts the pole on tile. Fish is caught before seaweed before coral,
// one per cast.
func (s *State) Cast(tile *world.Tile) Outcome {
	stage := s.Stage
	if !s.Pole {
		return s.outcome(ResultNothingHere, false, stage)
	}
	if s.catch(tile) {
		s.Counter++
		return s.outcome(ResultCaught, true, stage)
	}
	// A cast straight after the first catch reports another catch.
	if s.Counter == 1 {
		return s.outcome(ResultCaught, false, stage)
	}
	return s.outcome(ResultNothingBiting, false, stage)
}

func (s *State) catch(tile *world.Tile) bool {
	if tile == nil {
		return false
	}
	switch {
	case tile.Consume(world.FeatureFish):
		s.Fish++
	case tile.Consume(world.FeatureSeaweed):
		s.Seaweed++
	case tile.Consume(world.FeatureCoral):
		s.Coral++
	default:
		return false
	}
	return true
}

// ResetCounter is called when the fishing dialogue closes.
func (s *State) ResetCounter() {
	s.Counter = 0
}

// PickUpCoin collects a coin floating on a water tile.
func (s *State) PickUpCoin(tile *world.Tile) Outcome {
	if tile == nil || !tile.IsWater() || !tile.Consume(world.FeatureCoin) {
		return s.outcome(ResultNone, false, s.Stage)
	}
	s.Gold += CoinValue
	return s.outcome(ResultCoin, true, s.Stage)
}
