package models

import "testing"

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{CampaignStatusRecruiting, CampaignStatusRecruitEnded, true},
		{CampaignStatusRecruitEnded, CampaignStatusSelectionCompleted, true},

		// Cancellation paths
		{CampaignStatusRecruiting, CampaignStatusCancelled, true},
		{CampaignStatusRecruitEnded, CampaignStatusCancelled, true},

		// Invalid transitions
		{CampaignStatusRecruiting, CampaignStatusSelectionCompleted, false},
		{CampaignStatusRecruitEnded, CampaignStatusRecruiting, false},
		{CampaignStatusSelectionCompleted, CampaignStatusRecruiting, false},
		{CampaignStatusSelectionCompleted, CampaignStatusCancelled, false},
		{CampaignStatusCancelled, CampaignStatusRecruiting, false},
		{CampaignStatusCancelled, CampaignStatusRecruitEnded, false},
		{CampaignStatusCancelled, CampaignStatusSelectionCompleted, false},
		{CampaignStatusRecruiting, CampaignStatusRecruiting, false},
		{"nonexistent", CampaignStatusRecruitEnded, false},
		{CampaignStatusRecruiting, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllCampaignStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		CampaignStatusRecruiting, CampaignStatusRecruitEnded,
		CampaignStatusSelectionCompleted, CampaignStatusCancelled,
	}

	for _, status := range allStatuses {
		if _, ok := ValidCampaignTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidCampaignTransitions map", status)
		}
	}
}

func TestTerminalCampaignStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{CampaignStatusSelectionCompleted, CampaignStatusCancelled}
	for _, status := range terminal {
		transitions := ValidCampaignTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestIsDecidedApplicationStatus(t *testing.T) {
	if !IsDecidedApplicationStatus(ApplicationStatusSelected) {
		t.Error("selected should be a decided status")
	}
	if !IsDecidedApplicationStatus(ApplicationStatusRejected) {
		t.Error("rejected should be a decided status")
	}
	if IsDecidedApplicationStatus(ApplicationStatusSubmitted) {
		t.Error("submitted must not be assignable by advertisers")
	}
	if IsDecidedApplicationStatus("cancelled") {
		t.Error("unknown status must not be assignable")
	}
}
