package scoring

import "testing"

func TestModelEvidence_EmptyAnswers(t *testing.T) {
	got := ModelEvidence(AnswerSet{})

	if len(got.Unmodifiable) != 0 {
		t.Errorf("unmodifiable = %v, want empty", got.Unmodifiable)
	}
	if len(got.Modifiable) != 0 {
		t.Errorf("modifiable = %v, want empty", got.Modifiable)
	}
	if got.UnmodifiableRiskTotal != 0 {
		t.Errorf("unmodifiable total = %d, want 0", got.UnmodifiableRiskTotal)
	}
	if got.LifetimeRisk != "12%" {
		t.Errorf("lifetime risk = %q, want baseline 12%%", got.LifetimeRisk)
	}
}

func TestModelEvidence_UnmodifiableTotals(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantTotal int
		wantTier  string
	}{
		{
			"gene mutation alone",
			AnswerSet{KeyGeneticTesting: "Yes, BRCA1 positive"},
			900, "65%",
		},
		{
			"first-degree relative in the fifties",
			AnswerSet{KeyFamilyHistory: "Yes, first-degree relative", KeyAge: "52"},
			200, "20%", // 100 + 100; the >200 tier is exclusive
		},
		{
			"chest radiation",
			AnswerSet{KeyChestRadiation: "Yes"},
			300, "35%",
		},
		{
			"early menarche only",
			AnswerSet{KeyMenarcheAge: "11"},
			20, "12%",
		},
		{
			"age 60 plus dense tissue",
			AnswerSet{KeyAge: "63", KeyDenseBreast: "Yes"},
			250, "35%",
		},
		{
			"ashkenazi plus late menopause",
			AnswerSet{KeyEthnicity: "Ashkenazi Jewish", KeyMenopauseAge: "57"},
			70, "16%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ModelEvidence(tt.answers)
			if got.UnmodifiableRiskTotal != tt.wantTotal {
				t.Errorf("total = %d, want %d", got.UnmodifiableRiskTotal, tt.wantTotal)
			}
			if got.LifetimeRisk != tt.wantTier {
				t.Errorf("lifetime risk = %q, want %q", got.LifetimeRisk, tt.wantTier)
			}
		})
	}
}

func TestModelEvidence_AgeBracketsAreExclusive(t *testing.T) {
	got := ModelEvidence(AnswerSet{KeyAge: "65"})

	if _, ok := got.Unmodifiable["ageOver60"]; !ok {
		t.Error("ageOver60 not active at 65")
	}
	if _, ok := got.Unmodifiable["ageOver50"]; ok {
		t.Error("ageOver50 active at 65; brackets must not stack")
	}
	if _, ok := got.Unmodifiable["ageOver40"]; ok {
		t.Error("ageOver40 active at 65; brackets must not stack")
	}
}

func TestModelEvidence_ModifiableReductions(t *testing.T) {
	got := ModelEvidence(AnswerSet{
		KeyAlcohol:  "2 or more drinks per day",
		KeyExercise: "Little or no exercise",
		KeyBMI:      "32",
	})

	// alcohol 30 + exercise 25 + obesity 40; BMI 32 is out of the 25-30
	// overweight band so only the obesity rule fires.
	if got.ModifiableReductionPotential != 95 {
		t.Errorf("reduction = %d, want 95", got.ModifiableReductionPotential)
	}
	if _, ok := got.Modifiable["overweight"]; ok {
		t.Error("overweight rule active at BMI 32")
	}
	if _, ok := got.Modifiable["obesity"]; !ok {
		t.Error("obesity rule not active at BMI 32")
	}
}

func TestModelEvidence_BodyTypeFallback(t *testing.T) {
	// Without BMI data the self-reported body type drives the weight rules.
	got := ModelEvidence(AnswerSet{KeyBodyType: "Obese"})

	if _, ok := got.Modifiable["obesity"]; !ok {
		t.Error("obesity rule not active for self-reported obese")
	}
}

func TestModelEvidence_EveryFactorCarriesExactlyOnePercent(t *testing.T) {
	got := ModelEvidence(AnswerSet{
		KeyGeneticTesting: "Yes",
		KeyAlcohol:        "2 or more drinks per day",
	})

	for id, d := range got.Unmodifiable {
		if d.RiskIncrease == "" || d.RiskReduction != "" {
			t.Errorf("unmodifiable %q: increase=%q reduction=%q", id, d.RiskIncrease, d.RiskReduction)
		}
	}
	for id, d := range got.Modifiable {
		if d.RiskReduction == "" || d.RiskIncrease != "" {
			t.Errorf("modifiable %q: increase=%q reduction=%q", id, d.RiskIncrease, d.RiskReduction)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+900%", 900},
		{"+50%", 50},
		{"40%", 40},
		{"%", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := parsePercent(tt.in); got != tt.want {
			t.Errorf("parsePercent(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEvidenceTableConstantsParse(t *testing.T) {
	// A table constant that fails to parse would silently contribute 0 to the
	// totals; catch that at test time.
	for _, r := range unmodifiableRules {
		if parsePercent(r.percent) == 0 {
			t.Errorf("unmodifiable rule %q has unparseable percent %q", r.id, r.percent)
		}
	}
	for _, r := range modifiableRules {
		if parsePercent(r.percent) == 0 {
			t.Errorf("modifiable rule %q has unparseable percent %q", r.id, r.percent)
		}
	}
}
