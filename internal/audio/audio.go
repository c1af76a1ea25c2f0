// Package audio defines the sound cues the game raises. Playback belongs
// to whichever shell hosts the game; the core only names what to play.
package audio

// Kind identifies a piece of music or a sound effect.
type Kind int

const (
	BGMTitle Kind = iota
	BGMField
	BGMBattle
	BGMBoss
	BGMClear
	SEWalk
	SEEncounter
	SEAttack
	SEHeal
	SEItem
	SEWin
	SELose
	SEMiss
)

// String returns the cue name.
func (k Kind) String() string {
	switch k {
	case BGMTitle:
		return "bgm_title"
	case BGMField:
		return "bgm_field"
	case BGMBattle:
		return "bgm_battle"
	case BGMBoss:
		return "bgm_boss"
	case BGMClear:
		return "bgm_clear"
	case SEWalk:
		return "se_walk"
	case SEEncounter:
		return "se_encounter"
	case SEAttack:
		return "se_attack"
	case SEHeal:
		return "se_heal"
	case SEItem:
		return "se_item"
	case SEWin:
		return "se_win"
	case SELose:
		return "se_lose"
	case SEMiss:
		return "se_miss"
	default:
		return "unknown"
	}
}

// IsMusic reports whether k is a looping background track.
func (k Kind) IsMusic() bool {
	return k >= BGMTitle && k <= BGMClear
}

// Sink receives fire-and-forget playback requests.
type Sink interface {
	Play(k Kind)
	Stop(k Kind)
}

// Nop discards every request.
type Nop struct{}

func (Nop) Play(Kind) {}
func (Nop) Stop(Kind) {}

// Cue is one request seen by a Recorder.
type Cue struct {
	Kind Kind
	Stop bool
}

// Recorder keeps every request in order.
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(k Kind) { r.Cues = append(r.Cues, Cue{Kind: k}) }
func (r *Recorder) Stop(k Kind) { r.Cues = append(r.Cues, Cue{Kind: k, Stop: true}) }

// Played reports whether k was started at least once.
func (r *Recorder) Played(k Kind) bool {
	for _, c := range r.Cues {
		if c.Kind == k && !c.Stop {
			return true
		}
	}
	return false
}

// Reset forgets all recorded requests.
func (r *Recorder) Reset() {
	r.Cues = nil
}
