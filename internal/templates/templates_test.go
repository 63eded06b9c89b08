package templates

import (
	"strings"
	"testing"
)

func TestLookupKnownKey(t *testing.T) {
	tmpl := Lookup("debate (English)")
	if tmpl.Intro == "" || tmpl.Dialog == "" {
		t.Fatal("debate (English) template missing prompt fragments")
	}
	if tmpl.Intro == Lookup(DefaultKey).Intro {
		t.Error("debate template should differ from the default podcast template")
	}
}

func TestLookupUnknownKeyFallsBack(t *testing.T) {
	def := Lookup(DefaultKey)
	got := Lookup("no such template")
	if got != def {
		t.Errorf("unknown key should fall back to %q", DefaultKey)
	}
	if Lookup("") != def {
		t.Error("empty key should fall back to the default template")
	}
}

func TestSingleSpeakerTemplates(t *testing.T) {
	// Lecture and the summaries direct the model to write for one voice;
	// their dialog prompts must say so or the output alternates hosts.
	for _, key := range []string{"lecture", "summary", "short summary"} {
		tmpl := Lookup(key)
		if tmpl.Intro == Lookup(DefaultKey).Intro {
			t.Fatalf("template %q is not registered", key)
		}
		if !strings.Contains(tmpl.Dialog, "only one speaker") {
			t.Errorf("template %q should instruct a single speaker", key)
		}
	}
}

func TestLookupSciAgents(t *testing.T) {
	tmpl := Lookup("SciAgents material discovery summary")
	if !strings.Contains(tmpl.Intro, "SciAgents") {
		t.Error("SciAgents template is not registered")
	}
}

func TestAllTemplatesComplete(t *testing.T) {
	for _, key := range Keys() {
		tmpl := Lookup(key)
		if tmpl.Intro == "" || tmpl.TextInstructions == "" || tmpl.ScratchPad == "" ||
			tmpl.Prelude == "" || tmpl.Dialog == "" {
			t.Errorf("template %q has empty fields", key)
		}
	}
}
