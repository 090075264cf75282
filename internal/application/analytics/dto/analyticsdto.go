package dto

// TechnicianStatsDTO is one technician's rollup over the full store.
type TechnicianStatsDTO struct {
	Technician       string  `json:"technician"`
	TotalTickets     int     `json:"totalTickets"`
	CompletedTickets int     `json:"completedTickets"`
	ReworkTickets    int     `json:"reworkTickets"`
	CompletionRate   float64 `json:"completionRate"`
	ReworkRate       float64 `json:"reworkRate"`
	AvgDurationHours float64 `json:"avgDurationHours"`
	AvgQualityScore  float64 `json:"avgQualityScore"`
}

// DeviceStatsDTO is the rollup for one device category and repair type
// pairing.
type DeviceStatsDTO struct {
	DeviceCategory   string  `json:"deviceCategory"`
	RepairType       string  `json:"repairType"`
	TotalTickets     int     `json:"totalTickets"`
	ReworkTickets    int     `json:"reworkTickets"`
	AvgDurationHours float64 `json:"avgDurationHours"`
	DifficultyTier   string  `json:"difficultyTier"`
}

// TimeSeriesBucketDTO is one period bucket of completed-ticket counts.
type TimeSeriesBucketDTO struct {
	Period           string  `json:"period"`
	TotalCompleted   int     `json:"totalCompleted"`
	ReworkCount      int     `json:"reworkCount"`
	AvgDurationHours float64 `json:"avgDurationHours"`
}
