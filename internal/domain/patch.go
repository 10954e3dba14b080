package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StatePatch is a client-submitted partial GameState. Every field is optional;
// only the categories and sub-keys the client sends are applied. Category names
// outside the six known ones are rejected at decode time rather than silently
// dropped, so client bugs surface early.
type StatePatch struct {
	Profile   *ProfilePatch   `json:"profile,omitempty"`
	Resources *ResourcesPatch `json:"resources,omitempty"`
	Buildings map[string]int  `json:"buildings,omitempty"`
	Army      map[string]int  `json:"army,omitempty"`
	Research  map[string]int  `json:"research,omitempty"`
	Clan      ClanPatch       `json:"clan"`
}

// ProfilePatch carries partial profile overrides.
type ProfilePatch struct {
	Level *int    `json:"level,omitempty"`
	XP    *int    `json:"xp,omitempty"`
	Title *string `json:"title,omitempty"`
}

// ResourcesPatch carries partial resource overrides.
// Submitted values are trusted as-is; no bounds or monotonicity checks are
// applied here (known integrity gap, pending a product decision).
type ResourcesPatch struct {
	Energy   *int64 `json:"energy,omitempty"`
	Metal    *int64 `json:"metal,omitempty"`
	Water    *int64 `json:"water,omitempty"`
	Food     *int64 `json:"food,omitempty"`
	Crystals *int64 `json:"crystals,omitempty"`
}

// ClanPatch separates the three clan submissions: category omitted (leave the
// membership alone), explicit null (leave the clan), or an object overriding
// the supplied fields. A plain pointer cannot represent the null case.
type ClanPatch struct {
	Set   bool
	Clear bool
	Clan  Clan
}

func (p *ClanPatch) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(data, []byte("null")) {
		p.Clear = true
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(&p.Clan)
}

// DecodeStatePatch parses a patch strictly: unrecognized category or field
// names fail with ErrInvalidPayload.
func DecodeStatePatch(raw []byte) (*StatePatch, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var patch StatePatch
	if err := dec.Decode(&patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &patch, nil
}

// Merge reconciles a patch onto the authoritative state. Per category: sub-keys
// the patch supplies win, sub-keys it omits keep their prior value, categories
// it omits are untouched. The result is re-normalized against defaults so even
// a sparse patch yields a structurally complete state.
func Merge(base GameState, patch *StatePatch) GameState {
	merged := base
	if patch == nil {
		return normalize(merged)
	}

	if p := patch.Profile; p != nil {
		if p.Level != nil {
			merged.Profile.Level = *p.Level
		}
		if p.XP != nil {
			merged.Profile.XP = *p.XP
		}
		if p.Title != nil {
			merged.Profile.Title = *p.Title
		}
	}
	if p := patch.Resources; p != nil {
		if p.Energy != nil {
			merged.Resources.Energy = *p.Energy
		}
		if p.Metal != nil {
			merged.Resources.Metal = *p.Metal
		}
		if p.Water != nil {
			merged.Resources.Water = *p.Water
		}
		if p.Food != nil {
			merged.Resources.Food = *p.Food
		}
		if p.Crystals != nil {
			merged.Resources.Crystals = *p.Crystals
		}
	}
	merged.Buildings = mergeCounts(base.Buildings, patch.Buildings)
	merged.Army = mergeCounts(base.Army, patch.Army)
	merged.Research = mergeCounts(base.Research, patch.Research)
	if patch.Clan.Set {
		if patch.Clan.Clear {
			merged.Clan = Clan{}
		} else {
			if id := patch.Clan.Clan.ID; id != nil {
				merged.Clan.ID = id
			}
			if role := patch.Clan.Clan.Role; role != nil {
				merged.Clan.Role = role
			}
		}
	}

	return normalize(merged)
}

// mergeCounts copies patch keys over a fresh copy of the base map.
func mergeCounts(base, patch map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(patch))
	for id, count := range base {
		out[id] = count
	}
	for id, count := range patch {
		out[id] = count
	}
	return out
}

// normalize fills any structural holes from defaults: nil maps become default
// maps and default map keys missing from the state are added back.
func normalize(state GameState) GameState {
	defaults := DefaultState()

	if state.Profile.Title == "" {
		state.Profile.Title = defaults.Profile.Title
	}
	if state.Profile.Level == 0 {
		state.Profile.Level = defaults.Profile.Level
	}
	state.Buildings = underlay(state.Buildings, defaults.Buildings)
	state.Army = underlay(state.Army, defaults.Army)
	state.Research = underlay(state.Research, defaults.Research)

	return state
}

// underlay adds default keys absent from m, leaving present keys alone.
func underlay(m, defaults map[string]int) map[string]int {
	if m == nil {
		return defaults
	}
	for id, count := range defaults {
		if _, ok := m[id]; !ok {
			m[id] = count
		}
	}
	return m
}
