package entity

import (
	"strings"

	"github.com/samdwyer/questfield/internal/gamedata"
)

// Inventory holds acquired items and the skills they grant. Both lists
// only grow during a run.
type Inventory struct {
	items  []gamedata.Item
	skills []gamedata.Skill
	cursor int
}

// NewInventory returns an inventory holding only the innate Sword skill.
func NewInventory() *Inventory {
	return &Inventory{
		skills: []gamedata.Skill{gamedata.Sword},
	}
}

// Add appends item; usable items also append their skill.
func (inv *Inventory) Add(item gamedata.Item) {
	inv.items = append(inv.items, item)
	if item.CanUse() {
		inv.skills = append(inv.skills, gamedata.SpellSkill(item))
	}
}

// Items returns the acquired items in order.
func (inv *Inventory) Items() []gamedata.Item {
	return append([]gamedata.Item(nil), inv.items...)
}

// Skills returns the usable skills in order.
func (inv *Inventory) Skills() []gamedata.Skill {
	return append([]gamedata.Skill(nil), inv.skills...)
}

// Cursor returns the selected skill index.
func (inv *Inventory) Cursor() int {
	return inv.cursor
}

// MoveCursor shifts the selection by delta, clamped to the skill list.
func (inv *Inventory) MoveCursor(delta int) {
	inv.SetCursor(inv.cursor + delta)
}

// SetCursor selects index i, clamped to the skill list.
func (inv *Inventory) SetCursor(i int) {
	inv.cursor = clamp(i, 0, len(inv.skills)-1)
}

// Selected returns the skill under the cursor.
func (inv *Inventory) Selected() gamedata.Skill {
	return inv.skills[inv.cursor]
}

// SkillList renders the skills one per line, marking the cursor with '>'.
func (inv *Inventory) SkillList() string {
	var b strings.Builder
	for i, sk := range inv.skills {
		if i == inv.cursor {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(sk.String())
		if i < len(inv.skills)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
