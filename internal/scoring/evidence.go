package scoring

import (
	"strconv"
	"strings"
)

// ─── TYPES ────────────────────────────────────────────────────────────────────

// RiskFactorDetail is one entry in the evidence-based risk model. Exactly one
// of RiskIncrease / RiskReduction is set: unmodifiable factors carry an
// increase, modifiable factors carry the reduction achievable by changing
// the behaviour.
type RiskFactorDetail struct {
	Factor        string `json:"factor"`
	RiskIncrease  string `json:"riskIncrease,omitempty"`
	RiskReduction string `json:"riskReduction,omitempty"`
	Description   string `json:"description"`
}

// EvidenceBasedRisk separates what the subject cannot change from what they
// can, with percentage constants taken from published cohort studies. The
// constants are a fixed, auditable rule set — not a fitted statistical model.
type EvidenceBasedRisk struct {
	Unmodifiable map[string]RiskFactorDetail `json:"unmodifiable"`
	Modifiable   map[string]RiskFactorDetail `json:"modifiable"`

	// UnmodifiableRiskTotal is the uncapped sum of the increase percentages.
	UnmodifiableRiskTotal int `json:"unmodifiableRisk"`

	// ModifiableReductionPotential is the sum of the reduction percentages,
	// capped at 250.
	ModifiableReductionPotential int `json:"modifiableReduction"`

	// LifetimeRisk is the tiered estimate derived from UnmodifiableRiskTotal.
	LifetimeRisk string `json:"lifetimeRisk"`
}

const maxModifiableReduction = 250

// ─── RULE TABLES ──────────────────────────────────────────────────────────────

type evidenceRule struct {
	id          string
	factor      string
	percent     string // "+900%" for increases, "40%" for reductions
	description string
	match       func(a AnswerSet) bool
}

var unmodifiableRules = []evidenceRule{
	{
		id: "geneticMutation", factor: "BRCA1/BRCA2 mutation", percent: "+900%",
		description: "Carriers face up to a 72% lifetime risk versus a 12% baseline.",
		match:       func(a AnswerSet) bool { return answerYes(a, KeyGeneticTesting) },
	},
	{
		id: "firstDegreeFamilyHistory", factor: "First-degree relative with breast cancer", percent: "+100%",
		description: "One affected first-degree relative roughly doubles lifetime risk.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyFamilyHistory, "first-degree") },
	},
	{
		id: "secondDegreeFamilyHistory", factor: "Second-degree relative with breast cancer", percent: "+50%",
		description: "An affected aunt or grandmother raises risk by about half.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyFamilyHistory, "second-degree") },
	},
	{
		id: "chestRadiation", factor: "Prior chest radiation therapy", percent: "+300%",
		description: "Radiation to the chest before age 30 markedly increases later risk.",
		match:       func(a AnswerSet) bool { return answerYes(a, KeyChestRadiation) },
	},
	{
		id: "denseBreastTissue", factor: "Dense breast tissue", percent: "+100%",
		description: "Extremely dense tissue carries up to double the risk and masks tumours on mammograms.",
		match:       func(a AnswerSet) bool { return answerYes(a, KeyDenseBreast) },
	},
	{
		id: "ageOver60", factor: "Age 60 or older", percent: "+150%",
		description: "Most breast cancers are diagnosed after 60.",
		match:       func(a AnswerSet) bool { return Age(a) >= 60 },
	},
	{
		id: "ageOver50", factor: "Age 50-59", percent: "+100%",
		description: "Incidence climbs steeply through the fifties.",
		match:       func(a AnswerSet) bool { age := Age(a); return age >= 50 && age < 60 },
	},
	{
		id: "ageOver40", factor: "Age 40-49", percent: "+50%",
		description: "Risk begins rising meaningfully from 40.",
		match:       func(a AnswerSet) bool { age := Age(a); return age >= 40 && age < 50 },
	},
	{
		id: "earlyMenarche", factor: "Menarche before age 12", percent: "+20%",
		description: "Longer lifetime estrogen exposure from early first period.",
		match:       earlyMenarche,
	},
	{
		id: "lateMenopause", factor: "Menopause after age 55", percent: "+30%",
		description: "Each additional year of menstruation adds estrogen exposure.",
		match:       lateMenopause,
	},
	{
		id: "ashkenaziAncestry", factor: "Ashkenazi Jewish ancestry", percent: "+40%",
		description: "Founder BRCA mutations occur in about 1 in 40 people of Ashkenazi descent.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyEthnicity, "Ashkenazi") },
	},
}

var modifiableRules = []evidenceRule{
	{
		id: "alcohol", factor: "Alcohol consumption", percent: "30%",
		description: "Cutting from 2+ daily drinks to none removes a 7-10% risk increase per daily drink.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyAlcohol, "2 or more") },
	},
	{
		id: "exercise", factor: "Physical inactivity", percent: "25%",
		description: "150 minutes of moderate weekly activity lowers risk 10-25%.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyExercise, "little or no") },
	},
	{
		id: "obesity", factor: "Obesity (BMI over 30)", percent: "40%",
		description: "Post-menopausal obesity raises risk 20-40%; weight loss reverses much of it.",
		match: func(a AnswerSet) bool {
			if bmi, ok := BMI(a); ok && bmi > 30 {
				return true
			}
			return answerIs(a, KeyBodyType, "Obese")
		},
	},
	{
		id: "overweight", factor: "Overweight (BMI 25-30)", percent: "20%",
		description: "Excess post-menopausal weight is a consistent, reversible risk factor.",
		match: func(a AnswerSet) bool {
			if bmi, ok := BMI(a); ok {
				return bmi > 25 && bmi <= 30
			}
			return answerIs(a, KeyBodyType, "Overweight")
		},
	},
	{
		id: "smoking", factor: "Smoking", percent: "15%",
		description: "Current smoking is linked to a modest but clear risk increase, especially pre-menopause.",
		match:       func(a AnswerSet) bool { return answerYes(a, KeySmoke) },
	},
	{
		id: "diet", factor: "Western diet pattern", percent: "20%",
		description: "A Mediterranean-style diet is associated with meaningfully lower incidence.",
		match: func(a AnswerSet) bool {
			return answerHas(a, KeyDiet, "western") || answerHas(a, KeyDiet, "processed")
		},
	},
	{
		id: "hormoneTherapy", factor: "Long-term hormone replacement therapy", percent: "50%",
		description: "Risk from combined HRT declines within a few years of stopping.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyHormoneTherapy, "more than 5") },
	},
	{
		id: "stress", factor: "Chronic stress", percent: "15%",
		description: "Sustained stress drives inflammatory and behavioural pathways that are reversible.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeyStress, "high") },
	},
	{
		id: "sleep", factor: "Insufficient sleep", percent: "10%",
		description: "Regular sleep under 6 hours disrupts melatonin and circadian regulation.",
		match:       func(a AnswerSet) bool { return answerHas(a, KeySleep, "less than 6") },
	},
}

// ─── MODEL ────────────────────────────────────────────────────────────────────

// ModelEvidence evaluates both evidence rule tables against a normalized
// answer set and derives the aggregate totals and the tiered lifetime risk.
func ModelEvidence(a AnswerSet) EvidenceBasedRisk {
	out := EvidenceBasedRisk{
		Unmodifiable: map[string]RiskFactorDetail{},
		Modifiable:   map[string]RiskFactorDetail{},
	}

	for _, r := range unmodifiableRules {
		if !r.match(a) {
			continue
		}
		out.Unmodifiable[r.id] = RiskFactorDetail{
			Factor:       r.factor,
			RiskIncrease: r.percent,
			Description:  r.description,
		}
		out.UnmodifiableRiskTotal += parsePercent(r.percent)
	}

	for _, r := range modifiableRules {
		if !r.match(a) {
			continue
		}
		out.Modifiable[r.id] = RiskFactorDetail{
			Factor:        r.factor,
			RiskReduction: r.percent,
			Description:   r.description,
		}
		out.ModifiableReductionPotential += parsePercent(r.percent)
	}

	if out.ModifiableReductionPotential > maxModifiableReduction {
		out.ModifiableReductionPotential = maxModifiableReduction
	}

	out.LifetimeRisk = lifetimeRiskTier(out.UnmodifiableRiskTotal)
	return out
}

// lifetimeRiskTier maps the uncapped unmodifiable total onto a lifetime risk
// estimate. The 12% baseline is the population average.
func lifetimeRiskTier(total int) string {
	switch {
	case total > 500:
		return "65%"
	case total > 200:
		return "35%"
	case total > 100:
		return "20%"
	case total > 50:
		return "16%"
	default:
		return "12%"
	}
}

// parsePercent extracts the integer value from a literal percentage string
// such as "+900%" or "40%". Table constants are validated by tests, so a
// malformed literal parses as 0 rather than panicking.
func parsePercent(s string) int {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "+"), "%")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
