package gamedata

import "fmt"

// EnemyKind identifies an enemy template. Each kind belongs to exactly one
// field kind on the overworld.
type EnemyKind int

const (
	EnemySlime    EnemyKind = iota // grass
	EnemyElf                       // forest
	EnemyHarpy                     // mountain
	EnemyDarkLord                  // castle
)

// EnemyKinds lists every enemy kind; the registry must define all of them.
var EnemyKinds = []EnemyKind{EnemySlime, EnemyElf, EnemyHarpy, EnemyDarkLord}

// ID returns the identifier used in enemies.yaml.
func (k EnemyKind) ID() string {
	switch k {
	case EnemySlime:
		return "slime"
	case EnemyElf:
		return "elf"
	case EnemyHarpy:
		return "harpy"
	case EnemyDarkLord:
		return "dark_lord"
	default:
		return "unknown"
	}
}

// String returns the enemy kind identifier.
func (k EnemyKind) String() string {
	return k.ID()
}

// Growth is the per-level stat increase of an enemy template.
type Growth struct {
	HP      int `yaml:"hp"`
	MP      int `yaml:"mp"`
	Attack  int `yaml:"attack"`
	Defence int `yaml:"defence"`
}

// EnemyDef defines an enemy template loaded from YAML. Base stats are the
// level 1 values.
type EnemyDef struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Glyph         string `yaml:"glyph"`
	Color         string `yaml:"color"`
	HP            int    `yaml:"hp"`
	MP            int    `yaml:"mp"`
	Attack        int    `yaml:"attack"`
	Defence       int    `yaml:"defence"`
	Growth        Growth `yaml:"growth"`
	EncounterRate int    `yaml:"encounterRate"` // 1 in N arrivals triggers a battle
	SkillName     string `yaml:"skill"`
	LevelOffset   int    `yaml:"levelOffset"` // added to the player level
	FixedLevel    int    `yaml:"fixedLevel"`  // non-zero pins the level (boss)
	Boss          bool   `yaml:"boss"`

	Kind  EnemyKind `yaml:"-"`
	Skill Skill     `yaml:"-"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// LevelFor returns the level of this enemy when met by a player of the
// given level, clamped to [1, maxLevel].
func (e *EnemyDef) LevelFor(playerLevel, maxLevel int) int {
	lv := playerLevel + e.LevelOffset
	if e.FixedLevel > 0 {
		lv = e.FixedLevel
	}
	if lv < 1 {
		lv = 1
	}
	if lv > maxLevel {
		lv = maxLevel
	}
	return lv
}

// enemyTable is the layout of enemies.yaml.
type enemyTable struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.yaml file.
func LoadEnemies() ([]EnemyDef, error) {
	table, err := readTable[enemyTable]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return table.Enemies, nil
}

// resolve fills the typed fields of a definition from its YAML strings.
func (e *EnemyDef) resolve() error {
	found := false
	for _, kind := range EnemyKinds {
		if kind.ID() == e.ID {
			e.Kind = kind
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown enemy id %q", e.ID)
	}
	sk, ok := parseSkillKind(e.SkillName)
	if !ok {
		return fmt.Errorf("enemy %s: unknown skill %q", e.ID, e.SkillName)
	}
	e.Skill = Skill{Kind: sk}
	if e.EncounterRate < 1 {
		e.EncounterRate = 1
	}
	return nil
}
