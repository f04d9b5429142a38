package models

// Action codes for manual ledger adjustments. The table below is the single
// source of truth for point deltas; clients send a code, never a delta.
const (
	ActionNestMade        = "NEST_MADE"
	ActionCleanup         = "CLEANUP"
	ActionJamboAttendance = "JAMBO_ATTENDANCE"
	ActionNestNotMade     = "NEST_NOT_MADE"
	ActionSpitting        = "SPITTING"
	ActionShouting        = "SHOUTING"

	// ActionRewardRedeemed is recorded on reward redemptions. It is not in
	// the adjustment table: its delta is the reward cost, not a fixed value.
	ActionRewardRedeemed = "REWARD_REDEEMED"
)

// Action categories, used by the front ends to split award/deduct tabs.
const (
	ActionCategoryCredit = "credit"
	ActionCategoryDebit  = "debit"
)

type Action struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Points   int    `json:"points"`
}

// Actions returns the fixed adjustment table, credits first.
func Actions() []Action {
	return []Action{
		{Code: ActionNestMade, Label: "Nest made before 7 AM", Category: ActionCategoryCredit, Points: 5},
		{Code: ActionCleanup, Label: "Common area cleanup", Category: ActionCategoryCredit, Points: 3},
		{Code: ActionJamboAttendance, Label: "Jambo attendance (full session)", Category: ActionCategoryCredit, Points: 10},
		{Code: ActionNestNotMade, Label: "Nest not made", Category: ActionCategoryDebit, Points: -3},
		{Code: ActionSpitting, Label: "Spitting in common areas", Category: ActionCategoryDebit, Points: -10},
		{Code: ActionShouting, Label: "Shouting / creating disturbance", Category: ActionCategoryDebit, Points: -15},
	}
}

// ActionByCode looks up an adjustment action. The second return is false for
// codes outside the table (including REWARD_REDEEMED).
func ActionByCode(code string) (Action, bool) {
	for _, a := range Actions() {
		if a.Code == code {
			return a, true
		}
	}
	return Action{}, false
}
