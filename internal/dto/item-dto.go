package dto

type ItemRequest struct {
	Name       string `json:"name" validate:"required"`
	Brand      string `json:"brand,omitempty"`
	Barcode    string `json:"barcode,omitempty"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	Quantity   int    `json:"quantity,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Category   string `json:"category,omitempty"`
	Location   string `json:"location,omitempty"`
	IsPriority bool   `json:"is_priority,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type ReminderRequest struct {
	ItemID     uint   `json:"item_id" validate:"required"`
	DaysBefore *int   `json:"days_before" validate:"required"`
	NotifyTime string `json:"notify_time" validate:"required"`
	Method     string `json:"method,omitempty"`
}

type ScanResponse struct {
	Barcode    string  `json:"barcode"`
	ExpiryDate *string `json:"expiry_date"`
}
