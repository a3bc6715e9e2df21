package analysis

import (
	"testing"

	"aris-service/internal/models"
)

func TestNormalizeLevelKeywords(t *testing.T) {
	cases := []struct {
		raw  string
		want models.SkillLevel
	}{
		{"Expert", models.LevelExpert},
		{"Senior Developer", models.LevelExpert},
		{"Lead", models.LevelExpert},
		{"Intermediate", models.LevelIntermediate},
		{"mid-level", models.LevelIntermediate},
		{"Associate", models.LevelIntermediate},
		{"Beginner", models.LevelBeginner},
		{"junior", models.LevelBeginner},
		{"Fresher", models.LevelBeginner},
	}

	for _, tc := range cases {
		if got := NormalizeLevel(tc.raw); got != tc.want {
			t.Errorf("NormalizeLevel(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeLevelYears(t *testing.T) {
	cases := []struct {
		raw  string
		want models.SkillLevel
	}{
		{"8 years", models.LevelExpert},
		{"6+ years", models.LevelExpert},
		{"10 yrs", models.LevelExpert},
		{"3 years", models.LevelIntermediate},
		{"4-5 years", models.LevelIntermediate},
		{"2 years", models.LevelBeginner},
		{"1 year", models.LevelBeginner},
	}

	for _, tc := range cases {
		if got := NormalizeLevel(tc.raw); got != tc.want {
			t.Errorf("NormalizeLevel(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeLevelDefaults(t *testing.T) {
	if got := NormalizeLevel(""); got != models.LevelIntermediate {
		t.Errorf("NormalizeLevel(\"\") = %s, want intermediate", got)
	}
	if got := NormalizeLevel("   "); got != models.LevelIntermediate {
		t.Errorf("NormalizeLevel(blank) = %s, want intermediate", got)
	}
	if got := NormalizeLevel("proficient"); got != models.LevelIntermediate {
		t.Errorf("NormalizeLevel(unknown) = %s, want intermediate", got)
	}
}

func TestLevelOrdinals(t *testing.T) {
	if models.LevelBeginner.Ordinal() != 1 ||
		models.LevelIntermediate.Ordinal() != 2 ||
		models.LevelExpert.Ordinal() != 3 {
		t.Error("level ordinals must be beginner=1, intermediate=2, expert=3")
	}
}
