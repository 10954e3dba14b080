package domain

import "encoding/json"

// Profile holds a player's progression identity.
type Profile struct {
	Level int    `json:"level"`
	XP    int    `json:"xp"`
	Title string `json:"title"`
}

// Resources holds a player's stock of each resource.
type Resources struct {
	Energy   int64 `json:"energy"`
	Metal    int64 `json:"metal"`
	Water    int64 `json:"water"`
	Food     int64 `json:"food"`
	Crystals int64 `json:"crystals"`
}

// Clan is a player's optional clan membership.
type Clan struct {
	ID   *int64  `json:"id"`
	Role *string `json:"role"`
}

// GameState is the full authoritative game state owned by one player.
type GameState struct {
	Profile   Profile        `json:"profile"`
	Resources Resources      `json:"resources"`
	Buildings map[string]int `json:"buildings"`
	Army      map[string]int `json:"army"`
	Research  map[string]int `json:"research"`
	Clan      Clan           `json:"clan"`
}

// Default state values for a freshly created player.
const (
	DefaultTitle = "Начальник станции"

	DefaultEnergy   = 5000
	DefaultMetal    = 2000
	DefaultWater    = 1000
	DefaultFood     = 500
	DefaultCrystals = 100

	DefaultMilitia = 10
)

// DefaultBuildings lists the buildings every station starts with, at level 1.
var DefaultBuildings = []string{"command_center", "generator", "mine", "well", "farm"}

// DefaultState materializes a structurally complete GameState with starting values.
// It is the single defaults constructor: creation, corrupt-row recovery and patch
// normalization all start from here and apply overrides on top.
func DefaultState() GameState {
	buildings := make(map[string]int, len(DefaultBuildings))
	for _, id := range DefaultBuildings {
		buildings[id] = 1
	}

	return GameState{
		Profile: Profile{
			Level: 1,
			XP:    0,
			Title: DefaultTitle,
		},
		Resources: Resources{
			Energy:   DefaultEnergy,
			Metal:    DefaultMetal,
			Water:    DefaultWater,
			Food:     DefaultFood,
			Crystals: DefaultCrystals,
		},
		Buildings: buildings,
		Army:      map[string]int{"militia": DefaultMilitia},
		Research:  map[string]int{},
		Clan:      Clan{},
	}
}

// DecodeState deserializes a stored GameState, recovering per category.
// Each of the six categories is decoded independently on top of its default:
// a category that is absent or fails to parse keeps the default, categories
// that parse keep their stored sub-keys. A corrupt row never fails the caller.
func DecodeState(raw []byte) GameState {
	state := DefaultState()
	if len(raw) == 0 {
		return state
	}

	var categories map[string]json.RawMessage
	if err := json.Unmarshal(raw, &categories); err != nil {
		return state
	}

	// Unmarshal into the prefilled value so stored fields override defaults
	// and missing fields keep them.
	if msg, ok := categories["profile"]; ok {
		profile := state.Profile
		if err := json.Unmarshal(msg, &profile); err == nil {
			state.Profile = profile
		}
	}
	if msg, ok := categories["resources"]; ok {
		resources := state.Resources
		if err := json.Unmarshal(msg, &resources); err == nil {
			state.Resources = resources
		}
	}
	if msg, ok := categories["clan"]; ok {
		clan := state.Clan
		if err := json.Unmarshal(msg, &clan); err == nil {
			state.Clan = clan
		}
	}
	state.Buildings = decodeCounts(categories["buildings"], state.Buildings)
	state.Army = decodeCounts(categories["army"], state.Army)
	state.Research = decodeCounts(categories["research"], state.Research)

	return state
}

// decodeCounts merges a stored count map over its defaults. Default keys the
// stored map omits are kept, stored keys win.
func decodeCounts(msg json.RawMessage, defaults map[string]int) map[string]int {
	if len(msg) == 0 {
		return defaults
	}
	var stored map[string]int
	if err := json.Unmarshal(msg, &stored); err != nil {
		return defaults
	}
	for id, count := range stored {
		defaults[id] = count
	}
	return defaults
}

// Encode serializes the state for storage.
func (s GameState) Encode() ([]byte, error) {
	return json.Marshal(s)
}
