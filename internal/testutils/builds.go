package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// BerserkerBuildJSON is a complete build document used across tests
const BerserkerBuildJSON = `{
  "name": "Grudge Berserker",
  "goal": [
    {"engraving": "Grudge", "value": 15},
    {"engraving": "Cursed Doll", "value": 15},
    {"engraving": "Keen Blunt Weapon", "value": 15},
    {"engraving": "Adrenaline", "value": 15},
    {"engraving": "Master's Tenacity", "value": 5}
  ],
  "books": [
    {"engraving": "Grudge", "value": 12},
    {"engraving": "Cursed Doll", "value": 12}
  ],
  "items": [
    {"type": "STONE", "engravings": [
      {"engraving": "Keen Blunt Weapon", "value": 7},
      {"engraving": "Adrenaline", "value": 6}
    ]},
    {"type": "NECKLACE", "engravings": [
      {"engraving": "Keen Blunt Weapon", "value": 5},
      {"engraving": "Grudge", "value": 3}
    ]}
  ]
}`

// BerserkerBuildYAML is BerserkerBuildJSON written as YAML
const BerserkerBuildYAML = `name: Grudge Berserker
goal:
  - engraving: Grudge
    value: 15
  - engraving: Cursed Doll
    value: 15
  - engraving: Keen Blunt Weapon
    value: 15
  - engraving: Adrenaline
    value: 15
  - engraving: Master's Tenacity
    value: 5
books:
  - engraving: Grudge
    value: 12
  - engraving: Cursed Doll
    value: 12
items:
  - type: STONE
    engravings:
      - engraving: Keen Blunt Weapon
        value: 7
      - engraving: Adrenaline
        value: 6
  - type: NECKLACE
    engravings:
      - engraving: Keen Blunt Weapon
        value: 5
      - engraving: Grudge
        value: 3
`

// WriteBuildFile writes a build document into a temp directory and returns its path
func WriteBuildFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
