package audio

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{BGMTitle, "bgm_title"},
		{BGMBoss, "bgm_boss"},
		{SEHeal, "se_heal"},
		{SEMiss, "se_miss"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsMusic(t *testing.T) {
	if !BGMClear.IsMusic() || SEWalk.IsMusic() {
		t.Error("BGM kinds are music, SE kinds are not")
	}
}

func TestRecorder(t *testing.T) {
	var s Sink = &Recorder{}
	s.Play(BGMField)
	s.Stop(BGMField)
	s.Play(SEWalk)

	r := s.(*Recorder)
	if len(r.Cues) != 3 {
		t.Fatalf("recorded %d cues, want 3", len(r.Cues))
	}
	if !r.Cues[1].Stop || r.Cues[1].Kind != BGMField {
		t.Errorf("second cue = %+v, want stop bgm_field", r.Cues[1])
	}
	if !r.Played(SEWalk) || r.Played(SEWin) {
		t.Error("Played reports wrong cues")
	}
	r.Reset()
	if len(r.Cues) != 0 {
		t.Error("Reset should clear cues")
	}
}
