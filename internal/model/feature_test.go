package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "in_progress",
		"completed", "planning", "research", "development", "backlog"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "PENDING", "in-progress"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestValidCustomerType(t *testing.T) {
	// The set includes the "mid-market" and "all" values seen in
	// historical data, not just the documented three.
	for _, s := range []string{"internal", "enterprise", "smb", "mid-market", "all"} {
		if !ValidCustomerType(s) {
			t.Errorf("ValidCustomerType(%q) = false, want true", s)
		}
	}
	if ValidCustomerType("consumer") {
		t.Error("ValidCustomerType(\"consumer\") = true, want false")
	}
}

func TestFeaturePatchTouchesScore(t *testing.T) {
	n := 10
	title := "t"
	if (FeaturePatch{Title: &title}).TouchesScore() {
		t.Error("title-only patch should not touch the score")
	}
	if !(FeaturePatch{ImpactScore: &n}).TouchesScore() {
		t.Error("impact patch should touch the score")
	}
	if !(FeaturePatch{EffortScore: &n}).TouchesScore() {
		t.Error("effort patch should touch the score")
	}
}
