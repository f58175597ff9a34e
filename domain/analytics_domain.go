package domain

var (
	MessageSuccessGetStats     = "statistics retrieved successfully"
	MessageSuccessGetImpact    = "environmental impact retrieved successfully"
	MessageSuccessGetAnalytics = "analytics dashboard retrieved successfully"

	MessageFailedGetStats     = "failed to retrieve statistics"
	MessageFailedGetImpact    = "failed to retrieve environmental impact"
	MessageFailedGetAnalytics = "failed to retrieve analytics dashboard"
)

type (
	UserStatsResponse struct {
		TotalItems            int     `json:"total_items"`
		FreshCount            int     `json:"fresh_count"`
		ExpiringSoonCount     int     `json:"expiring_soon_count"`
		ExpiredCount          int     `json:"expired_count"`
		ConsumedCount         int     `json:"consumed_count"`
		WastedCount           int     `json:"wasted_count"`
		DonatedCount          int     `json:"donated_count"`
		SavedItems            int     `json:"saved_items"`
		WastePercentage       float64 `json:"waste_percentage"`
		ConsumptionPercentage float64 `json:"consumption_percentage"`
	}

	EnvironmentalImpactResponse struct {
		CO2SavedKg       float64 `json:"co2_saved"`
		WaterSavedLiters int     `json:"water_saved"`
		MealsSaved       int     `json:"meals_saved"`
	}

	AnalyticsDashboardResponse struct {
		Stats               UserStatsResponse           `json:"stats"`
		EnvironmentalImpact EnvironmentalImpactResponse `json:"environmental_impact"`
	}
)
