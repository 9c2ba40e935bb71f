package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rampage/component"
)

//go:embed profiles.yaml
var profilesYAML []byte

// Profile holds the fixed stats and traits of one creature variant
type Profile struct {
	ID          component.Variant `yaml:"id"`
	Name        string            `yaml:"name"`
	Glyph       string            `yaml:"glyph"`
	HP          float64           `yaml:"hp"`
	Speed       int               `yaml:"speed"`      // action points per turn
	MaxHunger   int               `yaml:"max_hunger"` // starvation at this value
	CanSwim     bool              `yaml:"can_swim"`
	BreathRange int               `yaml:"breath_range"` // 0 = no ranged attack
	MeleeDamage int               `yaml:"melee_damage"`
	CanGrab     bool              `yaml:"can_grab"`
	Regenerates bool              `yaml:"regenerates"`
	Armored     bool              `yaml:"armored"`
	FireTrail   bool              `yaml:"fire_trail"`
	Desc        string            `yaml:"desc"`
}

// ProfileTable indexes profiles by variant
type ProfileTable struct {
	byID  map[component.Variant]*Profile
	order []component.Variant
}

// LoadProfiles parses a profile table from YAML
func LoadProfiles(raw []byte) (*ProfileTable, error) {
	var f struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	t := &ProfileTable{byID: make(map[component.Variant]*Profile, len(f.Profiles))}
	for i := range f.Profiles {
		p := &f.Profiles[i]
		if !p.ID.Valid() {
			return nil, fmt.Errorf("profile %d: unknown variant %q", i, p.ID)
		}
		if p.Speed <= 0 || p.HP <= 0 || p.MaxHunger <= 0 {
			return nil, fmt.Errorf("profile %s: speed, hp and max_hunger must be positive", p.ID)
		}
		if _, dup := t.byID[p.ID]; dup {
			return nil, fmt.Errorf("profile %s: duplicate", p.ID)
		}
		t.byID[p.ID] = p
		t.order = append(t.order, p.ID)
	}
	for _, v := range component.Variants {
		if _, ok := t.byID[v]; !ok {
			return nil, fmt.Errorf("profile %s: missing", v)
		}
	}
	return t, nil
}

// BuiltinProfiles returns the embedded table; the embedded file is validated by tests
func BuiltinProfiles() *ProfileTable {
	t, err := LoadProfiles(profilesYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns the profile for v, nil if unknown
func (t *ProfileTable) Get(v component.Variant) *Profile {
	return t.byID[v]
}

// Variants returns profile ids in table order
func (t *ProfileTable) Variants() []component.Variant {
	out := make([]component.Variant, len(t.order))
	copy(out, t.order)
	return out
}
