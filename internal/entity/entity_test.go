package entity

import (
	"testing"

	"github.com/samdwyer/questfield/internal/gamedata"
)

func TestLevelTable(t *testing.T) {
	if len(levelTable) != MaxLevel {
		t.Fatalf("level table has %d entries, want %d", len(levelTable), MaxLevel)
	}
	if levelTable[0] != 0 || levelTable[MaxLevel-1] != MaxStat {
		t.Errorf("table bounds = %d..%d, want 0..%d", levelTable[0], levelTable[MaxLevel-1], MaxStat)
	}
	for i := 1; i < MaxLevel; i++ {
		if levelTable[i] <= levelTable[i-1] {
			t.Errorf("table not increasing at %d: %d <= %d", i, levelTable[i], levelTable[i-1])
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := LevelFor(0)
	if prev != 1 {
		t.Errorf("LevelFor(0) = %d, want 1", prev)
	}
	for exp := 1; exp <= MaxStat; exp++ {
		lv := LevelFor(exp)
		if lv < prev {
			t.Fatalf("LevelFor(%d) = %d < LevelFor(%d) = %d", exp, lv, exp-1, prev)
		}
		if lv < 1 || lv > MaxLevel {
			t.Fatalf("LevelFor(%d) = %d outside [1,%d]", exp, lv, MaxLevel)
		}
		prev = lv
	}
	if LevelFor(MaxStat) != MaxLevel {
		t.Errorf("LevelFor(%d) = %d, want %d", MaxStat, LevelFor(MaxStat), MaxLevel)
	}
}

func TestLevelForThresholds(t *testing.T) {
	tests := []struct {
		exp, want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {19, 2}, {20, 3}, {44, 4}, {45, 5}, {998, 31}, {999, 32},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.exp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.exp, got, tt.want)
		}
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Hero")
	if p.Level != 1 || p.Exp != 0 {
		t.Errorf("level/exp = %d/%d, want 1/0", p.Level, p.Exp)
	}
	if p.Attack != 10 || p.Defence != 10 {
		t.Errorf("attack/defence = %d/%d, want 10/10", p.Attack, p.Defence)
	}
	if p.MaxHP != 100 || p.HP != 100 || p.MaxMP != 100 || p.MP != 100 {
		t.Errorf("hp/mp = %d/%d %d/%d, want full 100", p.HP, p.MaxHP, p.MP, p.MaxMP)
	}
}

func TestLevelUpCurve(t *testing.T) {
	p := NewPlayer("Hero")
	p.LevelUp(5, nil)
	if p.Attack != 30 || p.Defence != 30 {
		t.Errorf("lv5 attack/defence = %d/%d, want 30/30", p.Attack, p.Defence)
	}
	if p.MaxHP != 200 || p.MaxMP != 200 {
		t.Errorf("lv5 max hp/mp = %d/%d, want 200/200", p.MaxHP, p.MaxMP)
	}
	if p.HP != 100 {
		t.Errorf("LevelUp should not heal, hp = %d", p.HP)
	}
}

func TestLevelUpEquipment(t *testing.T) {
	inv := NewInventory()
	inv.Add(gamedata.Equipment(gamedata.IronBody))
	inv.Add(gamedata.Equipment(gamedata.IronArm))
	inv.Add(gamedata.Equipment(gamedata.HeroSword))
	inv.Add(gamedata.Equipment(gamedata.WisdomRing))
	inv.Add(gamedata.Equipment(gamedata.FairyShield))

	p := NewPlayer("Hero")
	p.LevelUp(1, inv)

	if p.MaxHP != 169 {
		t.Errorf("max hp = %d, want 169 (100 x1.3 x1.3)", p.MaxHP)
	}
	if p.Attack != 25 {
		t.Errorf("attack = %d, want 25", p.Attack)
	}
	if p.MaxMP != 250 {
		t.Errorf("max mp = %d, want 250", p.MaxMP)
	}
	if p.Defence != 25 {
		t.Errorf("defence = %d, want 25", p.Defence)
	}
}

func TestLevelUpClamps(t *testing.T) {
	inv := NewInventory()
	for _, kind := range []gamedata.ItemKind{
		gamedata.IronBody, gamedata.IronArm, gamedata.IronLeg, gamedata.IronHead,
		gamedata.HeroSword, gamedata.WisdomRing, gamedata.FairyShield,
	} {
		inv.Add(gamedata.Equipment(kind))
	}

	p := NewPlayer("Hero")
	p.LevelUp(MaxLevel, inv)
	p.Heal2Max()

	for name, v := range map[string]int{
		"hp": p.HP, "max hp": p.MaxHP, "mp": p.MP, "max mp": p.MaxMP,
		"attack": p.Attack, "defence": p.Defence, "level": p.Level,
	} {
		if v < 0 || v > MaxStat {
			t.Errorf("%s = %d outside [0,%d]", name, v, MaxStat)
		}
	}
	if p.MaxHP != MaxStat {
		t.Errorf("max hp = %d, want clamped %d", p.MaxHP, MaxStat)
	}
}

func TestAddExp(t *testing.T) {
	inv := NewInventory()
	p := NewPlayer("Hero")
	p.HP = 40
	p.MP = 3

	if p.AddExp(5, inv) {
		t.Error("5 exp should not level up")
	}
	if p.Exp != 5 || p.HP != 40 || p.MP != 3 {
		t.Errorf("exp/hp/mp = %d/%d/%d, want 5/40/3", p.Exp, p.HP, p.MP)
	}

	if !p.AddExp(5, inv) {
		t.Fatal("reaching 10 exp should level up")
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.HP != p.MaxHP || p.MP != p.MaxMP || p.MaxHP != 125 {
		t.Errorf("hp %d/%d mp %d/%d, want full at 125", p.HP, p.MaxHP, p.MP, p.MaxMP)
	}
}

func TestAddExpCapped(t *testing.T) {
	p := NewPlayer("Hero")
	p.AddExp(5000, nil)
	if p.Exp != MaxStat {
		t.Errorf("exp = %d, want %d", p.Exp, MaxStat)
	}
	if p.Level != MaxLevel {
		t.Errorf("level = %d, want %d", p.Level, MaxLevel)
	}
	if p.AddExp(10, nil) {
		t.Error("exp already capped, level cannot change")
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory()
	if got := inv.Skills(); len(got) != 1 || got[0] != gamedata.Sword {
		t.Fatalf("initial skills = %v, want [Sword]", got)
	}

	inv.Add(gamedata.Equipment(gamedata.IronHead))
	inv.Add(gamedata.Spell(gamedata.SpellFire, 2))

	if len(inv.Items()) != 2 {
		t.Errorf("items = %d, want 2", len(inv.Items()))
	}
	skills := inv.Skills()
	if len(skills) != 2 || skills[1] != gamedata.SpellSkill(gamedata.Spell(gamedata.SpellFire, 2)) {
		t.Errorf("skills = %v, want [Sword Fire Lv2]", skills)
	}
	if items := inv.Items(); items[0].Kind != gamedata.IronHead || items[1].Kind != gamedata.SpellFire {
		t.Errorf("items = %v, want [IronHead Fire]", items)
	}
}

func TestInventoryCursor(t *testing.T) {
	inv := NewInventory()
	inv.Add(gamedata.Spell(gamedata.SpellHeal, 1))
	inv.Add(gamedata.Spell(gamedata.SpellIce, 1))

	inv.MoveCursor(-1)
	if inv.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after moving above the top", inv.Cursor())
	}
	inv.MoveCursor(5)
	if inv.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 after moving past the end", inv.Cursor())
	}
	if inv.Selected().String() != "Ice Lv1" {
		t.Errorf("selected = %s, want Ice Lv1", inv.Selected())
	}

	want := "  Sword\n  Heal Lv1\n> Ice Lv1"
	if got := inv.SkillList(); got != want {
		t.Errorf("SkillList() = %q, want %q", got, want)
	}
}

func TestNewEnemy(t *testing.T) {
	def := &gamedata.EnemyDef{
		Name:        "Slime",
		HP:          30,
		Attack:      12,
		Defence:     6,
		Growth:      gamedata.Growth{HP: 15, Attack: 4, Defence: 3},
		LevelOffset: 1,
		Skill:       gamedata.Sword,
	}
	e := NewEnemy(def, def.LevelFor(3, MaxLevel))

	if e.Status.Level != 4 {
		t.Errorf("level = %d, want 4", e.Status.Level)
	}
	if e.Status.MaxHP != 75 || e.Status.HP != 75 {
		t.Errorf("hp = %d/%d, want 75/75", e.Status.HP, e.Status.MaxHP)
	}
	if e.Status.Attack != 24 || e.Status.Defence != 15 {
		t.Errorf("attack/defence = %d/%d, want 24/15", e.Status.Attack, e.Status.Defence)
	}
	if e.Status.MaxMP != MinStat {
		t.Errorf("max mp = %d, want clamped to %d", e.Status.MaxMP, MinStat)
	}
	if e.ExpReward() != 7 {
		t.Errorf("exp reward = %d, want 7", e.ExpReward())
	}
	if e.IsBoss() {
		t.Error("slime is not a boss")
	}
}
