package utils

import (
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Slovak diacritics", input: "Potrebujem majstra v Žiline", want: "potrebujem majstra v ziline"},
		{name: "Fixed substitutions", input: "šťžčý", want: "stzcy"},
		{name: "Other marks", input: "Ľubovňa Trenčín Piešťany Nové Zámky", want: "lubovna trencin piestany nove zamky"},
		{name: "Whitespace collapses", input: "  Banská \t Bystrica \n", want: "banska bystrica"},
		{name: "Empty", input: "", want: ""},
		{name: "Garbage", input: "@@@ ### 123", want: "@@@ ### 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Punctuation splits words", input: "Plyn uniká, čo robiť?", want: " plyn unika co robit "},
		{name: "Hyphen", input: "short-circuit", want: " short circuit "},
		{name: "Only punctuation", input: " ?!. ", want: ""},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Words(tt.input); got != tt.want {
				t.Errorf("Words(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if ContainsAny(Words("Ide to plynule"), []string{" plyn "}) {
		t.Error("anchored keyword must not match inside a longer word")
	}
}

func TestMatchedKeyword(t *testing.T) {
	keywords := []string{"plyn", "kotl", "gas"}

	if got := MatchedKeyword("servis kotla a plynu", keywords); got != "plyn" {
		t.Errorf("expected slice order to win, got %q", got)
	}
	if got := MatchedKeyword("", keywords); got != "" {
		t.Errorf("expected no match on empty text, got %q", got)
	}
	if ContainsAny("nic tu nie je", keywords) {
		t.Error("expected no match")
	}
	if !ContainsAny("gas leak", keywords) {
		t.Error("expected a match")
	}
}

func TestFoldAll(t *testing.T) {
	got := FoldAll([]string{"Kúrenie", "ZÁPACH"})
	if got[0] != "kurenie" || got[1] != "zapach" {
		t.Errorf("unexpected fold result: %v", got)
	}
}
