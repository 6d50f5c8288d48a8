package request

import (
	"fleet_survey/internal/domain/entities"
	"strings"
)

type ShipRequest struct {
	Name                    string `json:"name" binding:"required"`
	IMO                     string `json:"imo"`
	Company                 string `json:"company"`
	Flag                    string `json:"flag"`
	AnniversaryDay          int    `json:"anniversary_day" binding:"omitempty,min=1,max=31"`
	AnniversaryMonth        int    `json:"anniversary_month" binding:"omitempty,min=1,max=12"`
	SpecialSurveyCycleStart string `json:"special_survey_cycle_start"`
	DeliveryDate            string `json:"delivery_date"`
}

// ToEntity builds the ship; company falls back to the caller's company header
// when the body does not name one.
func (r ShipRequest) ToEntity(callerCompany string) entities.Ship {
	company := strings.TrimSpace(r.Company)
	if company == "" {
		company = strings.TrimSpace(callerCompany)
	}
	return entities.Ship{
		Name:                    strings.TrimSpace(r.Name),
		IMO:                     strings.TrimSpace(r.IMO),
		Company:                 company,
		Flag:                    strings.TrimSpace(r.Flag),
		AnniversaryDay:          r.AnniversaryDay,
		AnniversaryMonth:        r.AnniversaryMonth,
		SpecialSurveyCycleStart: strings.TrimSpace(r.SpecialSurveyCycleStart),
		DeliveryDate:            strings.TrimSpace(r.DeliveryDate),
	}
}

type CompanyRequest struct {
	Name string `json:"name" binding:"required"`
}
