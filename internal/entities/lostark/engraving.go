// Package lostark defines the gear entities the engraving planner works with:
// engravings, engraving vectors, accessories and build documents.
package lostark

import (
	"fmt"
	"strings"
)

// Engraving is one of the game's combat engravings.
// The zero value is EngravingUnspecified and never comes out of ParseEngraving.
type Engraving int

// Engravings
const (
	EngravingUnspecified Engraving = iota
	EngravingAdrenaline
	EngravingAllOutAttack
	EngravingAmbushMaster
	EngravingAwakening
	EngravingBarricade
	EngravingBrokenBone
	EngravingContender
	EngravingCrisisEvasion
	EngravingCrushingFist
	EngravingCursedDoll
	EngravingDisrespect
	EngravingDivineProtection
	EngravingDropsOfEther
	EngravingEmergencyRescue
	EngravingEnhancedShield
	EngravingEtherPredator
	EngravingExplosiveExpert
	EngravingExpert
	EngravingFortitude
	EngravingGrudge
	EngravingHeavyArmor
	EngravingHitMaster
	EngravingKeenBluntWeapon
	EngravingLightningFury
	EngravingMagickStream
	EngravingMasterBrawler
	EngravingMasterOfEscape
	EngravingMastersTenacity
	EngravingMaxMPIncrease
	EngravingMPEfficiencyIncrease
	EngravingNecromancy
	EngravingPreciseDagger
	EngravingPreemptiveStrike
	EngravingPropulsion
	EngravingRaidCaptain
	EngravingShieldPiercing
	EngravingSightFocus
	EngravingSpiritAbsorption
	EngravingStabilizedStatus
	EngravingStrongWill
	EngravingSuperCharge
	EngravingVitalPointHit

	engravingCount
)

var engravingNames = [engravingCount]string{
	EngravingUnspecified:          "Unspecified",
	EngravingAdrenaline:           "Adrenaline",
	EngravingAllOutAttack:         "All-Out Attack",
	EngravingAmbushMaster:         "Ambush Master",
	EngravingAwakening:            "Awakening",
	EngravingBarricade:            "Barricade",
	EngravingBrokenBone:           "Broken Bone",
	EngravingContender:            "Contender",
	EngravingCrisisEvasion:        "Crisis Evasion",
	EngravingCrushingFist:         "Crushing Fist",
	EngravingCursedDoll:           "Cursed Doll",
	EngravingDisrespect:           "Disrespect",
	EngravingDivineProtection:     "Divine Protection",
	EngravingDropsOfEther:         "Drops of Ether",
	EngravingEmergencyRescue:      "Emergency Rescue",
	EngravingEnhancedShield:       "Enhanced Shield",
	EngravingEtherPredator:        "Ether Predator",
	EngravingExplosiveExpert:      "Explosive Expert",
	EngravingExpert:               "Expert",
	EngravingFortitude:            "Fortitude",
	EngravingGrudge:               "Grudge",
	EngravingHeavyArmor:           "Heavy Armor",
	EngravingHitMaster:            "Hit Master",
	EngravingKeenBluntWeapon:      "Keen Blunt Weapon",
	EngravingLightningFury:        "Lightning Fury",
	EngravingMagickStream:         "Magick Stream",
	EngravingMasterBrawler:        "Master Brawler",
	EngravingMasterOfEscape:       "Master of Escape",
	EngravingMastersTenacity:      "Master's Tenacity",
	EngravingMaxMPIncrease:        "Max MP Increase",
	EngravingMPEfficiencyIncrease: "MP Efficiency Increase",
	EngravingNecromancy:           "Necromancy",
	EngravingPreciseDagger:        "Precise Dagger",
	EngravingPreemptiveStrike:     "Preemptive Strike",
	EngravingPropulsion:           "Propulsion",
	EngravingRaidCaptain:          "Raid Captain",
	EngravingShieldPiercing:       "Shield Piercing",
	EngravingSightFocus:           "Sight Focus",
	EngravingSpiritAbsorption:     "Spirit Absorption",
	EngravingStabilizedStatus:     "Stabilized Status",
	EngravingStrongWill:           "Strong Will",
	EngravingSuperCharge:          "Super Charge",
	EngravingVitalPointHit:        "Vital Point Hit",
}

// engravingsByKey indexes engravings by their normalized name
var engravingsByKey = func() map[string]Engraving {
	m := make(map[string]Engraving, engravingCount)
	for e := EngravingAdrenaline; e < engravingCount; e++ {
		m[normalizeEngravingName(engravingNames[e])] = e
	}
	return m
}()

// normalizeEngravingName lowercases and strips separators so "keen_blunt_weapon",
// "KeenBluntWeapon" and "Keen Blunt Weapon" resolve to the same engraving
func normalizeEngravingName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '-', '_', '\'', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseEngraving resolves an engraving from its display name
func ParseEngraving(name string) (Engraving, error) {
	if e, ok := engravingsByKey[normalizeEngravingName(name)]; ok {
		return e, nil
	}
	return EngravingUnspecified, fmt.Errorf("unknown engraving %q", name)
}

// AllEngravings returns every engraving in declaration order
func AllEngravings() []Engraving {
	all := make([]Engraving, 0, engravingCount-1)
	for e := EngravingAdrenaline; e < engravingCount; e++ {
		all = append(all, e)
	}
	return all
}

// Valid reports whether e is a known engraving
func (e Engraving) Valid() bool {
	return e > EngravingUnspecified && e < engravingCount
}

// String returns the display name
func (e Engraving) String() string {
	if e < 0 || e >= engravingCount {
		return fmt.Sprintf("Engraving(%d)", int(e))
	}
	return engravingNames[e]
}

// MarshalText renders the display name
func (e Engraving) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", e)
	}
	return []byte(e.String()), nil
}

// UnmarshalText parses a display name
func (e *Engraving) UnmarshalText(text []byte) error {
	parsed, err := ParseEngraving(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
