package scoring

// DailyPlan is the personalized day/week structure in the report.
type DailyPlan struct {
	Morning     string            `json:"morning"`
	Afternoon   string            `json:"afternoon"`
	Evening     string            `json:"evening"`
	Weekly      map[string]string `json:"weekly"`
	Supplements []string          `json:"supplements"`
}

// BuildDailyPlan selects template plan content by profile, then tightens the
// weekly entries for each active lifestyle finding. Content is static; the
// same profile and findings always produce the same plan.
func BuildDailyPlan(profile UserProfile, findings []FindingCode) DailyPlan {
	plan := basePlan(profile)

	for _, f := range findings {
		switch f {
		case FindingLowExercise:
			plan.Weekly["movement"] = "Three 30-minute brisk walks plus two short strength sessions."
		case FindingPoorDiet:
			plan.Weekly["nutrition"] = "Plan five home-cooked dinners; batch-cook vegetables on Sunday."
		case FindingHighStress:
			plan.Weekly["recovery"] = "Two screen-free evenings and one longer outdoor session."
		case FindingAlcoholHigh:
			plan.Weekly["alcohol"] = "Keep at least four alcohol-free days this week."
		case FindingPoorSleep:
			plan.Weekly["sleep"] = "Fixed lights-out time every night; no caffeine after 2pm."
		}
	}

	return plan
}

func basePlan(profile UserProfile) DailyPlan {
	plan := DailyPlan{
		Morning:   "10 minutes of mobility work, a protein-forward breakfast, and daylight exposure before screens.",
		Afternoon: "A 20-minute walk after lunch; water instead of a second coffee.",
		Evening:   "Wind down with a consistent routine: light stretching, no screens in the last 30 minutes.",
		Weekly: map[string]string{
			"movement":  "Accumulate 150 minutes of moderate activity.",
			"nutrition": "Vegetables at two meals a day; fish twice this week.",
			"recovery":  "One fully unplugged half-day.",
		},
		Supplements: []string{"Vitamin D3 (1000-2000 IU, per your doctor)", "Omega-3 fish oil"},
	}

	switch profile {
	case ProfileTeenager:
		plan.Morning = "A real breakfast and daylight before school; movement counts more than structure at this age."
		plan.Supplements = []string{"Vitamin D3 (per your doctor)"}
	case ProfilePostmenopausal:
		plan.Weekly["strength"] = "Two resistance sessions to protect bone density and lean mass."
		plan.Supplements = append(plan.Supplements, "Calcium (dietary sources first)")
	case ProfileCurrentPatient:
		plan.Morning = "Gentle mobility within your care team's limits; hydration before anything else."
		plan.Afternoon = "Short walks as energy allows; rest is part of treatment, not a failure of the plan."
		plan.Weekly = map[string]string{
			"recovery": "Energy-led movement only; coordinate every change with your oncology team.",
		}
		plan.Supplements = []string{"Only what your oncology team has approved"}
	case ProfileSurvivor:
		plan.Weekly["movement"] = "150 minutes of moderate activity — the strongest evidence-backed habit for survivors."
	}

	return plan
}

// ─── RECOMMENDATIONS ─────────────────────────────────────────────────────────

// recommendationByFinding maps each finding to its primary recommendation,
// emitted in findingOrder priority.
var recommendationByFinding = map[FindingCode]string{
	FindingOverdueScreening: "Book a mammogram this week — screening is your highest-leverage action.",
	FindingFamilyHistory:    "Discuss your family history with your doctor; ask whether earlier or supplemental screening applies.",
	FindingDenseBreast:      "Ask about supplemental ultrasound or MRI given your breast density.",
	FindingAlcoholHigh:      "Reduce alcohol toward no more than one drink per day; risk falls with intake.",
	FindingLowExercise:      "Build up to 150 minutes of moderate activity per week, starting with daily walks.",
	FindingPoorDiet:         "Shift toward a Mediterranean-style pattern: vegetables, fish, olive oil, less processed food.",
	FindingHighStress:       "Adopt a daily 10-minute downregulation practice — breathing, meditation, or a quiet walk.",
	FindingPoorSleep:        "Protect a consistent 7-8 hour sleep window with a fixed wind-down routine.",
}

const maxRecommendations = 8

// BuildRecommendations produces the ordered recommendation list: finding
// recommendations first (in priority order), then generic guidance to fill
// out the list for low-finding profiles.
func BuildRecommendations(findings []FindingCode, profile UserProfile) []string {
	recs := []string{}
	for _, f := range findings {
		if r, ok := recommendationByFinding[f]; ok {
			recs = append(recs, r)
		}
	}

	general := []string{
		"Perform a breast self-exam monthly and report any change promptly.",
		"Keep an annual review of this assessment as your answers change.",
		"Maintain a healthy weight; post-menopausal weight gain is a modifiable risk.",
	}
	if profile == ProfileCurrentPatient {
		general = []string{
			"Keep every scheduled appointment with your care team.",
			"Track side effects daily so your team can adjust early.",
		}
	}
	for _, g := range general {
		if len(recs) >= maxRecommendations {
			break
		}
		recs = append(recs, g)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// ─── COACHING FOCUS & TIMELINE ───────────────────────────────────────────────

var coachingByFinding = map[FindingCode]string{
	FindingLowExercise:      "Movement consistency",
	FindingPoorDiet:         "Food pattern redesign",
	FindingHighStress:       "Stress downregulation",
	FindingAlcoholHigh:      "Alcohol reduction",
	FindingPoorSleep:        "Sleep architecture",
	FindingOverdueScreening: "Screening follow-through",
}

const maxCoachingFocus = 3

// BuildCoachingFocus returns up to three coaching themes in priority order.
func BuildCoachingFocus(findings []FindingCode) []string {
	focus := []string{}
	for _, f := range findings {
		if c, ok := coachingByFinding[f]; ok {
			focus = append(focus, c)
			if len(focus) == maxCoachingFocus {
				break
			}
		}
	}
	if len(focus) == 0 {
		focus = append(focus, "Habit maintenance")
	}
	return focus
}

// BuildFollowUpTimeline maps review periods to actions, tightened when the
// assessment is urgent or high-risk.
func BuildFollowUpTimeline(category RiskCategory, urgent bool) map[string]string {
	timeline := map[string]string{
		"1_month":   "Review your daily plan adherence and adjust one habit.",
		"3_months":  "Re-check weight, activity minutes, and alcohol pattern.",
		"6_months":  "Repeat this assessment and compare controllable scores.",
		"12_months": "Annual screening conversation with your doctor.",
	}
	if urgent {
		timeline["1_month"] = "Complete the flagged screening or specialist conversation."
	}
	if category == RiskHigh {
		timeline["3_months"] = "Clinical follow-up on your highest-risk domain, plus habit re-check."
	}
	return timeline
}

// ─── SECTION SUMMARIES ───────────────────────────────────────────────────────

// SummarizeSection renders the template narrative for one domain. The AI
// narrative, when available, replaces these strings at read time.
func SummarizeSection(s DomainScore) string {
	title := DomainTitle(s.Domain)
	switch s.RiskLevel {
	case LevelLow:
		if s.FactorCount == 0 {
			return title + ": no notable risk factors identified. Keep doing what you're doing."
		}
		return title + ": overall low risk, with minor factors worth keeping an eye on."
	case LevelModerate:
		return title + ": a moderate risk picture. The factors listed here are where attention pays off first."
	default:
		return title + ": this area carries your most significant risk factors and should anchor your plan."
	}
}
