package scoring

import "testing"

func TestDemographicsCeilingBrackets(t *testing.T) {
	tests := []struct {
		age       string
		wantScore int
		wantLevel RiskLevel
	}{
		{"25", 90, LevelLow},
		{"39", 90, LevelLow},
		{"40", 80, LevelLow},
		{"49", 80, LevelLow},
		{"50", 70, LevelModerate},
		{"59", 70, LevelModerate},
		{"60", 60, LevelModerate},
		{"69", 60, LevelModerate},
		{"70", 50, LevelHigh},
		{"85", 50, LevelHigh},
	}
	for _, tt := range tests {
		t.Run("age "+tt.age, func(t *testing.T) {
			s := demographicsTable.evaluate(AnswerSet{KeyAge: tt.age})
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.RiskLevel != tt.wantLevel {
				t.Errorf("level = %q, want %q", s.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestDemographics_FactorsCarryNoPenalty(t *testing.T) {
	s := demographicsTable.evaluate(AnswerSet{KeyAge: "45", KeyEthnicity: "White"})

	// The age bracket is priced into the ceiling; the labels only name it.
	if s.Score != 80 {
		t.Errorf("score = %d, want 80", s.Score)
	}
	wantFactors := []string{"Age 40-49", "White ethnicity (highest incidence rate)"}
	assertFactors(t, s, wantFactors)
}

func TestFamilyHistory_Penalties(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantScore int
	}{
		{"no history", AnswerSet{}, 95},
		{"gene mutation", AnswerSet{KeyGeneticTesting: "Yes, BRCA1 positive"}, 55},
		{"first-degree relative", AnswerSet{KeyFamilyHistory: "Yes, first-degree relative (mother, sister, or daughter)"}, 70},
		{"second-degree relative", AnswerSet{KeyFamilyHistory: "Yes, second-degree relative (aunt or grandmother)"}, 85},
		{"relative under 50", AnswerSet{KeyRelativeUnder50: "Yes"}, 85},
		{"ashkenazi ancestry", AnswerSet{KeyEthnicity: "Ashkenazi Jewish"}, 90},
		{"male relative", AnswerSet{KeyMaleRelative: "Yes"}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := familyHistoryTable.evaluate(tt.answers)
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
		})
	}
}

func TestFamilyHistory_FloorIs15(t *testing.T) {
	// Combined penalties total 85 against a ceiling of 95; the raw result of
	// 10 must clamp to the domain floor.
	s := familyHistoryTable.evaluate(AnswerSet{
		KeyGeneticTesting:  "Yes",
		KeyFamilyHistory:   "Yes, first-degree relative",
		KeyRelativeUnder50: "Yes",
		KeyEthnicity:       "Ashkenazi Jewish",
		KeyMaleRelative:    "Yes",
	})

	if s.Score != 15 {
		t.Errorf("score = %d, want floor 15", s.Score)
	}
	if s.RiskLevel != LevelHigh {
		t.Errorf("level = %q, want high", s.RiskLevel)
	}
	if s.FactorCount != 5 {
		t.Errorf("factorCount = %d, want 5", s.FactorCount)
	}
}

func TestLifestyle_Penalties(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantScore int
	}{
		{"clean slate", AnswerSet{}, 100},
		{"smoker", AnswerSet{KeySmoke: "Yes"}, 85},
		{"heavy alcohol", AnswerSet{KeyAlcohol: "2 or more drinks per day"}, 80},
		{"sedentary", AnswerSet{KeyExercise: "Little or no exercise"}, 75},
		{"western diet", AnswerSet{KeyDiet: "Mostly processed foods"}, 90},
		{"high stress", AnswerSet{KeyStress: "High most days"}, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := lifestyleTable.evaluate(tt.answers)
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
		})
	}
}

func TestLifestyle_SmokingIsMonotonic(t *testing.T) {
	// Flipping only the smoking answer from No to Yes must lower the score by
	// exactly the smoking penalty, never raise it.
	base := AnswerSet{KeyExercise: "Little or no exercise", KeySmoke: "No"}
	smoker := AnswerSet{KeyExercise: "Little or no exercise", KeySmoke: "Yes"}

	before := lifestyleTable.evaluate(base).Score
	after := lifestyleTable.evaluate(smoker).Score

	if before-after != 15 {
		t.Errorf("smoking delta = %d (from %d to %d), want exactly 15", before-after, before, after)
	}
}

func TestLifestyle_FloorIs20(t *testing.T) {
	s := lifestyleTable.evaluate(AnswerSet{
		KeySmoke:    "Yes",
		KeyAlcohol:  "2 or more drinks per day",
		KeyExercise: "Little or no exercise",
		KeyDiet:     "Western diet with red meat",
		KeyStress:   "High",
	})

	if s.Score != 20 {
		t.Errorf("score = %d, want floor 20", s.Score)
	}
}

func TestMedicalHistory_Penalties(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantScore int
		wantLevel RiskLevel
	}{
		{"clean history", AnswerSet{}, 100, LevelLow},
		{"current treatment", AnswerSet{KeyTreatment: "Yes"}, 60, LevelModerate},
		{"survivor", AnswerSet{KeyCancerHistory: "Yes"}, 75, LevelModerate},
		{"benign condition", AnswerSet{KeyBenignCondition: "Yes"}, 85, LevelLow},
		{"chest radiation", AnswerSet{KeyChestRadiation: "Yes"}, 80, LevelLow},
		{"biopsy", AnswerSet{KeyBiopsy: "Yes"}, 90, LevelLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := medicalTable.evaluate(tt.answers)
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.RiskLevel != tt.wantLevel {
				t.Errorf("level = %q, want %q", s.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestHormonal_Penalties(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantScore int
	}{
		{"long-term HRT", AnswerSet{KeyHormoneTherapy: "Yes, more than 5 years"}, 80},
		{"short-term HRT", AnswerSet{KeyHormoneTherapy: "Yes, less than 5 years"}, 90},
		{"long-term birth control", AnswerSet{KeyBirthControl: "Yes, more than 10 years"}, 85},
		{"short-term birth control", AnswerSet{KeyBirthControl: "Yes, about 3 years"}, 95},
		{"late menopause numeric", AnswerSet{KeyMenopauseAge: "56"}, 90},
		{"late menopause label", AnswerSet{KeyMenopauseAge: "After 55"}, 90},
		{"menopause at 54 is not late", AnswerSet{KeyMenopauseAge: "54"}, 100},
		{"early menarche numeric", AnswerSet{KeyMenarcheAge: "11"}, 90},
		{"menarche at 12 is not early", AnswerSet{KeyMenarcheAge: "12"}, 100},
		{"late first pregnancy", AnswerSet{KeyFirstPregnancy: "32"}, 90},
		{"never breastfed", AnswerSet{KeyBreastfeeding: "Never"}, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := hormonalTable.evaluate(tt.answers)
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
		})
	}
}

func TestHormonal_HRTDurationRulesAreExclusive(t *testing.T) {
	s := hormonalTable.evaluate(AnswerSet{KeyHormoneTherapy: "Yes, more than 5 years"})
	if s.FactorCount != 1 {
		t.Errorf("factorCount = %d, want 1 (long-term rule only)", s.FactorCount)
	}
}

func TestPhysical_BMIRulesStack(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantScore int
	}{
		{"no data", AnswerSet{}, 100},
		{"bmi 24", AnswerSet{KeyBMI: "24"}, 100},
		{"bmi 27 overweight only", AnswerSet{KeyBMI: "27"}, 90},
		{"bmi 32 matches both brackets", AnswerSet{KeyBMI: "32"}, 80},
		{"dense tissue", AnswerSet{KeyDenseBreast: "Yes"}, 85},
		{"self-reported overweight", AnswerSet{KeyBodyType: "Overweight"}, 90},
		{"self-reported obese", AnswerSet{KeyBodyType: "Obese"}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := physicalTable.evaluate(tt.answers)
			if s.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.Score, tt.wantScore)
			}
		})
	}
}

func TestLevelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{100, LevelLow},
		{80, LevelLow},
		{79, LevelModerate},
		{60, LevelModerate},
		{59, LevelHigh},
		{20, LevelHigh},
	}
	for _, tt := range tests {
		if got := levelForScore(tt.score); got != tt.want {
			t.Errorf("levelForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreDomains_AbsentAnswersNeverMatch(t *testing.T) {
	scores := ScoreDomains(AnswerSet{})

	for _, s := range scores.All() {
		if s.FactorCount != 0 {
			t.Errorf("domain %s: factorCount = %d with empty answers, want 0", s.Domain, s.FactorCount)
		}
		if len(s.RiskFactors) != 0 {
			t.Errorf("domain %s: riskFactors = %v, want empty", s.Domain, s.RiskFactors)
		}
	}
	// Default age 30 lands in the under-40 bracket.
	if scores.Demographics.Score != 90 {
		t.Errorf("demographics = %d, want 90", scores.Demographics.Score)
	}
}

func TestScoreDomains_Deterministic(t *testing.T) {
	a := Normalize(AnswerSet{
		KeyAge:           "52",
		KeySmoke:         "Yes",
		KeyFamilyHistory: "Yes, first-degree relative",
		KeyBMI:           "31",
	})

	first := ScoreDomains(a)
	second := ScoreDomains(a)

	for i, s := range first.All() {
		if s.Score != second.All()[i].Score {
			t.Errorf("domain %s scored %d then %d", s.Domain, s.Score, second.All()[i].Score)
		}
	}
}

func assertFactors(t *testing.T, s DomainScore, want []string) {
	t.Helper()
	if len(s.RiskFactors) != len(want) {
		t.Fatalf("riskFactors = %v, want %v", s.RiskFactors, want)
	}
	for i := range want {
		if s.RiskFactors[i] != want[i] {
			t.Errorf("riskFactors[%d] = %q, want %q", i, s.RiskFactors[i], want[i])
		}
	}
	if s.FactorCount != len(want) {
		t.Errorf("factorCount = %d, want %d", s.FactorCount, len(want))
	}
}
