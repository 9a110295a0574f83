package service

import (
	"time"

	"synthex-backend/internal/database/models"
)

// PlanLimits describes what a billing tier is allowed to use.
// A value of -1 means unlimited.
type PlanLimits struct {
	MaxContacts          int `json:"max_contacts"`
	MaxCampaignsPerMonth int `json:"max_campaigns_per_month"`
	MaxWorkspaces        int `json:"max_workspaces"`
	AICreditsPerMonth    int `json:"ai_credits_per_month"`
}

var planLimits = map[models.PlanTier]PlanLimits{
	models.PlanFree: {
		MaxContacts:          250,
		MaxCampaignsPerMonth: 2,
		MaxWorkspaces:        1,
		AICreditsPerMonth:    20,
	},
	models.PlanStarter: {
		MaxContacts:          2500,
		MaxCampaignsPerMonth: 20,
		MaxWorkspaces:        3,
		AICreditsPerMonth:    200,
	},
	models.PlanProfessional: {
		MaxContacts:          25000,
		MaxCampaignsPerMonth: 100,
		MaxWorkspaces:        10,
		AICreditsPerMonth:    1000,
	},
	models.PlanEnterprise: {
		MaxContacts:          -1,
		MaxCampaignsPerMonth: -1,
		MaxWorkspaces:        -1,
		AICreditsPerMonth:    5000,
	},
}

// LimitsForTier returns the limits for a plan tier. Unknown tiers fall
// back to the free plan.
func LimitsForTier(tier models.PlanTier) PlanLimits {
	if limits, ok := planLimits[tier]; ok {
		return limits
	}
	return planLimits[models.PlanFree]
}

// withinLimit reports whether current usage leaves room under a limit
func withinLimit(current int64, limit int) bool {
	return limit < 0 || current < int64(limit)
}

// startOfMonth returns the first instant of t's calendar month in UTC.
// Every "per month" quota meters against this boundary.
func startOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
