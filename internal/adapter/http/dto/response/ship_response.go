package response

import (
	"fleet_survey/internal/domain/entities"
	"time"
)

type ShipResponse struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	IMO                     string    `json:"imo"`
	Company                 string    `json:"company"`
	Flag                    string    `json:"flag"`
	AnniversaryDay          int       `json:"anniversary_day"`
	AnniversaryMonth        int       `json:"anniversary_month"`
	SpecialSurveyCycleStart string    `json:"special_survey_cycle_start"`
	DeliveryDate            string    `json:"delivery_date"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func FromShip(s entities.Ship) ShipResponse {
	return ShipResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		IMO:                     s.IMO,
		Company:                 s.Company,
		Flag:                    s.Flag,
		AnniversaryDay:          s.AnniversaryDay,
		AnniversaryMonth:        s.AnniversaryMonth,
		SpecialSurveyCycleStart: s.SpecialSurveyCycleStart,
		DeliveryDate:            s.DeliveryDate,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCompany(c entities.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}
