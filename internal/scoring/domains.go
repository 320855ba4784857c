package scoring

// ─── TYPES ────────────────────────────────────────────────────────────────────

// RiskLevel is the per-domain three-bucket classification.
type RiskLevel string

const (
	LevelLow      RiskLevel = "low"
	LevelModerate RiskLevel = "moderate"
	LevelHigh     RiskLevel = "high"
)

// Domain identifies one of the six risk-factor categories. The string values
// are the JSON keys used in sectionScores / sectionSummaries.
type Domain string

const (
	DomainDemographics  Domain = "demographics"
	DomainFamilyHistory Domain = "familyHistory"
	DomainLifestyle     Domain = "lifestyle"
	DomainMedical       Domain = "medicalHistory"
	DomainHormonal      Domain = "hormonalFactors"
	DomainPhysical      Domain = "physicalCharacteristics"
)

// DomainTitle returns the human-readable section title for a domain.
func DomainTitle(d Domain) string {
	switch d {
	case DomainDemographics:
		return "Demographics"
	case DomainFamilyHistory:
		return "Family History & Genetics"
	case DomainLifestyle:
		return "Lifestyle"
	case DomainMedical:
		return "Medical History"
	case DomainHormonal:
		return "Hormonal Factors"
	case DomainPhysical:
		return "Physical Characteristics"
	default:
		return string(d)
	}
}

// DomainScore is the output of one domain evaluator.
type DomainScore struct {
	Domain      Domain    `json:"-"`
	Score       int       `json:"score"`
	FactorCount int       `json:"factorCount"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	RiskFactors []string  `json:"riskFactors"`
}

// DomainScores holds all six domain results in a fixed evaluation order.
type DomainScores struct {
	Demographics  DomainScore
	FamilyHistory DomainScore
	Lifestyle     DomainScore
	Medical       DomainScore
	Hormonal      DomainScore
	Physical      DomainScore
}

// All returns the six scores in canonical order.
func (d DomainScores) All() []DomainScore {
	return []DomainScore{
		d.Demographics, d.FamilyHistory, d.Lifestyle,
		d.Medical, d.Hormonal, d.Physical,
	}
}

// ─── RULE TABLES ──────────────────────────────────────────────────────────────

// rule is one (predicate, penalty, label) tuple. Evaluation subtracts Penalty
// from the domain ceiling for every matching rule and collects Label into the
// domain's riskFactors.
type rule struct {
	label   string
	penalty int
	match   func(a AnswerSet) bool
}

// domainTable is one domain's full evaluator definition. ceiling is a
// function because the Demographics ceiling depends on age.
type domainTable struct {
	domain  Domain
	floor   int
	ceiling func(a AnswerSet) int
	rules   []rule
}

func fixedCeiling(n int) func(AnswerSet) int {
	return func(AnswerSet) int { return n }
}

// demographicsCeiling derives the starting score from the age bracket.
func demographicsCeiling(a AnswerSet) int {
	switch age := Age(a); {
	case age < 40:
		return 90
	case age < 50:
		return 80
	case age < 60:
		return 70
	case age < 70:
		return 60
	default:
		return 50
	}
}

// Demographics factors carry no penalty of their own: age is already priced
// into the ceiling. The labels still surface in riskFactors so the report
// names what drove the bracket.
var demographicsTable = domainTable{
	domain:  DomainDemographics,
	floor:   20,
	ceiling: demographicsCeiling,
	rules: []rule{
		{label: "Age 40-49", penalty: 0,
			match: func(a AnswerSet) bool { age := Age(a); return age >= 40 && age < 50 }},
		{label: "Age 50-59", penalty: 0,
			match: func(a AnswerSet) bool { age := Age(a); return age >= 50 && age < 60 }},
		{label: "Age 60-69", penalty: 0,
			match: func(a AnswerSet) bool { age := Age(a); return age >= 60 && age < 70 }},
		{label: "Age 70 or older", penalty: 0,
			match: func(a AnswerSet) bool { return Age(a) >= 70 }},
		{label: "White ethnicity (highest incidence rate)", penalty: 0,
			match: func(a AnswerSet) bool { return answerIs(a, KeyEthnicity, "White") }},
		{label: "Black ethnicity (higher rate of aggressive subtypes)", penalty: 0,
			match: func(a AnswerSet) bool { return answerIs(a, KeyEthnicity, "Black") }},
	},
}

var familyHistoryTable = domainTable{
	domain:  DomainFamilyHistory,
	floor:   15,
	ceiling: fixedCeiling(95),
	rules: []rule{
		{label: "Confirmed hereditary gene mutation (BRCA1/BRCA2 or other)", penalty: 40,
			match: func(a AnswerSet) bool { return answerYes(a, KeyGeneticTesting) }},
		{label: "First-degree relative with breast cancer", penalty: 25,
			match: func(a AnswerSet) bool { return answerHas(a, KeyFamilyHistory, "first-degree") }},
		{label: "Second-degree relative with breast cancer", penalty: 10,
			match: func(a AnswerSet) bool { return answerHas(a, KeyFamilyHistory, "second-degree") }},
		{label: "Relative diagnosed before age 50", penalty: 10,
			match: func(a AnswerSet) bool { return answerYes(a, KeyRelativeUnder50) }},
		{label: "Ashkenazi Jewish ancestry", penalty: 5,
			match: func(a AnswerSet) bool { return answerHas(a, KeyEthnicity, "Ashkenazi") }},
		{label: "Male relative with breast cancer", penalty: 5,
			match: func(a AnswerSet) bool { return answerYes(a, KeyMaleRelative) }},
	},
}

var lifestyleTable = domainTable{
	domain:  DomainLifestyle,
	floor:   20,
	ceiling: fixedCeiling(100),
	rules: []rule{
		{label: "Current smoker", penalty: 15,
			match: func(a AnswerSet) bool { return answerYes(a, KeySmoke) }},
		{label: "Two or more alcoholic drinks per day", penalty: 20,
			match: func(a AnswerSet) bool { return answerHas(a, KeyAlcohol, "2 or more") }},
		{label: "Little or no regular exercise", penalty: 25,
			match: func(a AnswerSet) bool { return answerHas(a, KeyExercise, "little or no") }},
		{label: "Western diet pattern (processed foods, red meat)", penalty: 10,
			match: func(a AnswerSet) bool {
				return answerHas(a, KeyDiet, "western") || answerHas(a, KeyDiet, "processed")
			}},
		{label: "Chronic high stress", penalty: 15,
			match: func(a AnswerSet) bool { return answerHas(a, KeyStress, "high") }},
	},
}

var medicalTable = domainTable{
	domain:  DomainMedical,
	floor:   20,
	ceiling: fixedCeiling(100),
	rules: []rule{
		{label: "Currently undergoing breast cancer treatment", penalty: 40,
			match: func(a AnswerSet) bool { return answerYes(a, KeyTreatment) }},
		{label: "Previous breast cancer diagnosis (survivor)", penalty: 25,
			match: func(a AnswerSet) bool { return answerYes(a, KeyCancerHistory) }},
		{label: "History of benign breast conditions", penalty: 15,
			match: func(a AnswerSet) bool { return answerYes(a, KeyBenignCondition) }},
		{label: "Prior radiation therapy to the chest", penalty: 20,
			match: func(a AnswerSet) bool { return answerYes(a, KeyChestRadiation) }},
		{label: "Previous breast biopsy", penalty: 10,
			match: func(a AnswerSet) bool { return answerYes(a, KeyBiopsy) }},
	},
}

// lateMenopause and earlyMenarche are shared between the hormonal domain
// table and the evidence model, so the two stay in lockstep.
func lateMenopause(a AnswerSet) bool {
	if n, ok := answerInt(a, KeyMenopauseAge); ok {
		return n >= 55
	}
	return answerHas(a, KeyMenopauseAge, "after 55")
}

func earlyMenarche(a AnswerSet) bool {
	if n, ok := answerInt(a, KeyMenarcheAge); ok {
		return n < 12
	}
	return answerHas(a, KeyMenarcheAge, "before 12")
}

var hormonalTable = domainTable{
	domain:  DomainHormonal,
	floor:   20,
	ceiling: fixedCeiling(100),
	rules: []rule{
		{label: "Long-term hormone replacement therapy (5+ years)", penalty: 20,
			match: func(a AnswerSet) bool { return answerHas(a, KeyHormoneTherapy, "more than 5") }},
		{label: "Hormone replacement therapy (under 5 years)", penalty: 10,
			match: func(a AnswerSet) bool {
				return answerYes(a, KeyHormoneTherapy) && !answerHas(a, KeyHormoneTherapy, "more than 5")
			}},
		{label: "Long-term hormonal contraception (10+ years)", penalty: 15,
			match: func(a AnswerSet) bool { return answerHas(a, KeyBirthControl, "more than 10") }},
		{label: "Hormonal contraception (under 10 years)", penalty: 5,
			match: func(a AnswerSet) bool {
				return answerYes(a, KeyBirthControl) && !answerHas(a, KeyBirthControl, "more than 10")
			}},
		{label: "Late menopause (after 55)", penalty: 10, match: lateMenopause},
		{label: "Early menarche (before 12)", penalty: 10, match: earlyMenarche},
		{label: "First pregnancy after 30", penalty: 10,
			match: func(a AnswerSet) bool {
				if n, ok := answerInt(a, KeyFirstPregnancy); ok {
					return n > 30
				}
				return answerHas(a, KeyFirstPregnancy, "after 30")
			}},
		{label: "Never breastfed", penalty: 5,
			match: func(a AnswerSet) bool {
				return answerIs(a, KeyBreastfeeding, "No") || answerIs(a, KeyBreastfeeding, "Never")
			}},
	},
}

var physicalTable = domainTable{
	domain:  DomainPhysical,
	floor:   20,
	ceiling: fixedCeiling(100),
	rules: []rule{
		{label: "Dense breast tissue", penalty: 15,
			match: func(a AnswerSet) bool { return answerYes(a, KeyDenseBreast) }},
		// The two BMI rules stack: BMI 32 matches both for a total of -20.
		{label: "BMI above 25 (overweight)", penalty: 10,
			match: func(a AnswerSet) bool { bmi, ok := BMI(a); return ok && bmi > 25 }},
		{label: "BMI above 30 (obese)", penalty: 10,
			match: func(a AnswerSet) bool { bmi, ok := BMI(a); return ok && bmi > 30 }},
		{label: "Self-reported overweight", penalty: 10,
			match: func(a AnswerSet) bool { return answerIs(a, KeyBodyType, "Overweight") }},
		{label: "Self-reported obese", penalty: 20,
			match: func(a AnswerSet) bool { return answerIs(a, KeyBodyType, "Obese") }},
	},
}

// ─── EVALUATION ───────────────────────────────────────────────────────────────

// evaluate runs one domain table against a normalized answer set.
func (t domainTable) evaluate(a AnswerSet) DomainScore {
	score := t.ceiling(a)
	factors := []string{}

	for _, r := range t.rules {
		if r.match(a) {
			score -= r.penalty
			factors = append(factors, r.label)
		}
	}

	if score < t.floor {
		score = t.floor
	}

	return DomainScore{
		Domain:      t.domain,
		Score:       score,
		FactorCount: len(factors),
		RiskLevel:   levelForScore(score),
		RiskFactors: factors,
	}
}

// levelForScore classifies a domain score: >=80 low, >=60 moderate, else high.
func levelForScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return LevelLow
	case score >= 60:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// ScoreDomains evaluates all six domain tables against a normalized answer
// set. Each domain is independent: the same AnswerSet always produces the
// same DomainScores regardless of evaluation order.
func ScoreDomains(a AnswerSet) DomainScores {
	return DomainScores{
		Demographics:  demographicsTable.evaluate(a),
		FamilyHistory: familyHistoryTable.evaluate(a),
		Lifestyle:     lifestyleTable.evaluate(a),
		Medical:       medicalTable.evaluate(a),
		Hormonal:      hormonalTable.evaluate(a),
		Physical:      physicalTable.evaluate(a),
	}
}
