package atom

import "testing"

func TestPlaceholderRoundTrip(t *testing.T) {
	tab := New()
	idx := tab.Add(KindBrace, "{ x = 1; }")
	tok := Placeholder(KindBrace, idx)
	if tok != `"A 1"` {
		t.Fatalf("Placeholder = %q, want %q", tok, `"A 1"`)
	}

	kind, gotIdx, ok := ParseToken(tok)
	if !ok {
		t.Fatalf("ParseToken(%q) failed", tok)
	}
	if kind != KindBrace || gotIdx != idx {
		t.Fatalf("ParseToken = (%v, %d), want (%v, %d)", kind, gotIdx, KindBrace, idx)
	}

	entry := tab.MustGet(gotIdx)
	if entry.Text != "{ x = 1; }" {
		t.Fatalf("MustGet text = %q", entry.Text)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", `"A"`, `"AA 1"`, `"A 0"`, "A 1", `"A x"`} {
		if _, _, ok := ParseToken(s); ok {
			t.Fatalf("ParseToken(%q) should have failed", s)
		}
	}
}

func TestMissingAtomPanics(t *testing.T) {
	tab := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on missing atom index")
		}
	}()
	tab.MustGet(0)
}

func TestStringTableRoundTrip(t *testing.T) {
	st := NewStringTable()
	idx := st.Add(`"hello world"`)
	tok := StringPlaceholder(idx)
	if tok != "'0'" {
		t.Fatalf("StringPlaceholder = %q, want '0'", tok)
	}
	gotIdx, ok := ParseStringToken(tok)
	if !ok || gotIdx != idx {
		t.Fatalf("ParseStringToken = (%d, %v)", gotIdx, ok)
	}
	lit, ok := st.Get(gotIdx)
	if !ok || lit != `"hello world"` {
		t.Fatalf("Get = %q, %v", lit, ok)
	}
}
