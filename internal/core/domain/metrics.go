package domain

// ClientMetrics is one dashboard row for a single client. It is derived on
// every request and never persisted. JSON field names are part of the API
// contract consumed by the mobile client.
type ClientMetrics struct {
	Client           string  `json:"Client"`
	TotalHours       float64 `json:"Total_Hours"`
	AdminHours       float64 `json:"Admin_Hours"`
	Revenue          float64 `json:"Revenue"`
	RealHourlyRate   float64 `json:"Real_Hourly_Rate"`
	FrictionScore    float64 `json:"Friction_Score"`
	ForecastNextHour float64 `json:"Forecast_Next_Hour"`
}
