package entities

import "time"

// Ship is a vessel owned or managed by a company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company-index): company
//
// Company holds either the company id or, for records imported from older
// systems, the company display name. Lookups query both.
type Ship struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IMO     string `json:"imo"`
	Company string `json:"company"`
	Flag    string `json:"flag"`

	// Anniversary day/month drive the annual survey cycle; zero when unknown.
	AnniversaryDay          int    `json:"anniversary_day"`
	AnniversaryMonth        int    `json:"anniversary_month"`
	SpecialSurveyCycleStart string `json:"special_survey_cycle_start"`
	DeliveryDate            string `json:"delivery_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
