package dto

// InsightsResponse respuesta de GET /api/dashboard/insights.
// Source indica si el texto vino del modelo ("ai") o del respaldo fijo ("fallback").
type InsightsResponse struct {
	Insights string `json:"insights"`
	Source   string `json:"source"`
}
