package packets

type LocationRequest struct {
	Label     string  `json:"label" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Timezone  *string `json:"timezone"`
	Method    *int    `json:"method"`
}

type SettingsRequest struct {
	FajrOffset    int  `json:"fajr_offset" binding:"gte=-60,lte=60"`
	DhuhrOffset   int  `json:"dhuhr_offset" binding:"gte=-60,lte=60"`
	AsrOffset     int  `json:"asr_offset" binding:"gte=-60,lte=60"`
	MaghribOffset int  `json:"maghrib_offset" binding:"gte=-60,lte=60"`
	IshaOffset    int  `json:"isha_offset" binding:"gte=-60,lte=60"`
	Method        *int `json:"method"`
}
