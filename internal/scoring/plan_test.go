package scoring

import (
	"slices"
	"strings"
	"testing"
)

func TestBuildDailyPlan_FindingsTightenWeekly(t *testing.T) {
	plan := BuildDailyPlan(ProfilePremenopausal, []FindingCode{FindingLowExercise, FindingAlcoholHigh})

	if !strings.Contains(plan.Weekly["movement"], "strength sessions") {
		t.Errorf("movement entry not tightened: %q", plan.Weekly["movement"])
	}
	if !strings.Contains(plan.Weekly["alcohol"], "alcohol-free days") {
		t.Errorf("alcohol entry not added: %q", plan.Weekly["alcohol"])
	}
	// Findings without a tightening rule leave the base entry alone.
	if plan.Weekly["nutrition"] != "Vegetables at two meals a day; fish twice this week." {
		t.Errorf("nutrition entry changed unexpectedly: %q", plan.Weekly["nutrition"])
	}
}

func TestBuildDailyPlan_CurrentPatientIsConservative(t *testing.T) {
	plan := BuildDailyPlan(ProfileCurrentPatient, nil)

	if len(plan.Weekly) != 1 {
		t.Errorf("weekly = %v, want only the recovery entry", plan.Weekly)
	}
	if !strings.Contains(plan.Weekly["recovery"], "oncology team") {
		t.Errorf("recovery entry = %q", plan.Weekly["recovery"])
	}
	if len(plan.Supplements) != 1 || !strings.Contains(plan.Supplements[0], "oncology team") {
		t.Errorf("supplements = %v", plan.Supplements)
	}
}

func TestBuildDailyPlan_PostmenopausalAddsStrength(t *testing.T) {
	plan := BuildDailyPlan(ProfilePostmenopausal, nil)

	if _, ok := plan.Weekly["strength"]; !ok {
		t.Error("postmenopausal plan missing the strength entry")
	}
	if !slices.Contains(plan.Supplements, "Calcium (dietary sources first)") {
		t.Errorf("supplements = %v, want calcium included", plan.Supplements)
	}
}

func TestBuildRecommendations_FindingsFirstThenGeneral(t *testing.T) {
	recs := BuildRecommendations([]FindingCode{FindingOverdueScreening, FindingAlcoholHigh}, ProfilePremenopausal)

	if len(recs) != 5 { // 2 finding recs + 3 general
		t.Fatalf("got %d recommendations: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "mammogram") {
		t.Errorf("recs[0] = %q, want the screening recommendation first", recs[0])
	}
	if !strings.Contains(recs[1], "alcohol") {
		t.Errorf("recs[1] = %q, want the alcohol recommendation second", recs[1])
	}
	if !strings.Contains(recs[2], "self-exam") {
		t.Errorf("recs[2] = %q, want general guidance after findings", recs[2])
	}
}

func TestBuildRecommendations_CapsAtEight(t *testing.T) {
	recs := BuildRecommendations(findingOrder, ProfilePremenopausal)

	if len(recs) != maxRecommendations {
		t.Errorf("got %d recommendations, want %d", len(recs), maxRecommendations)
	}
}

func TestBuildRecommendations_CurrentPatientGeneralGuidance(t *testing.T) {
	recs := BuildRecommendations(nil, ProfileCurrentPatient)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "care team") {
		t.Errorf("recs[0] = %q", recs[0])
	}
}

func TestBuildCoachingFocus(t *testing.T) {
	t.Run("caps at three in priority order", func(t *testing.T) {
		focus := BuildCoachingFocus(findingOrder)
		want := []string{"Screening follow-through", "Alcohol reduction", "Movement consistency"}
		if !slices.Equal(focus, want) {
			t.Errorf("focus = %v, want %v", focus, want)
		}
	})

	t.Run("defaults when nothing is active", func(t *testing.T) {
		focus := BuildCoachingFocus(nil)
		if !slices.Equal(focus, []string{"Habit maintenance"}) {
			t.Errorf("focus = %v", focus)
		}
	})
}

func TestBuildFollowUpTimeline(t *testing.T) {
	t.Run("baseline has four periods", func(t *testing.T) {
		timeline := BuildFollowUpTimeline(RiskLow, false)
		for _, period := range []string{"1_month", "3_months", "6_months", "12_months"} {
			if timeline[period] == "" {
				t.Errorf("missing %q entry", period)
			}
		}
	})

	t.Run("urgency tightens the first month", func(t *testing.T) {
		timeline := BuildFollowUpTimeline(RiskModerate, true)
		if !strings.Contains(timeline["1_month"], "flagged screening") {
			t.Errorf("1_month = %q", timeline["1_month"])
		}
	})

	t.Run("high risk tightens the quarter", func(t *testing.T) {
		timeline := BuildFollowUpTimeline(RiskHigh, false)
		if !strings.Contains(timeline["3_months"], "Clinical follow-up") {
			t.Errorf("3_months = %q", timeline["3_months"])
		}
	})
}
