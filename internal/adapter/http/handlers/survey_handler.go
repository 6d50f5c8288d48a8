package handlers

import (
	"errors"
	request "fleet_survey/internal/adapter/http/dto/request"
	response "fleet_survey/internal/adapter/http/dto/response"
	"fleet_survey/internal/usecase"
	"fleet_survey/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderCompanyID carries the caller's company, set by the upstream gateway.
const HeaderCompanyID = "X-Company-ID"

var (
	errMissingCompany = pkg.NewDomainErrorSimple("MISSING_COMPANY", "X-Company-ID header is required", http.StatusBadRequest)
	errInvalidDays    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "days must be a non-negative integer", http.StatusBadRequest)
)

// SurveyHandler exposes the bulk next-survey recompute and the upcoming
// surveys query.

type SurveyHandler struct {
	usecase usecase.ISurveyUseCase
}

func NewSurveyHandler(uc usecase.ISurveyUseCase) *SurveyHandler {
	return &SurveyHandler{usecase: uc}
}

// UpdateNextSurvey recomputes next_survey* for every certificate of the ship
// in the path.
func (h *SurveyHandler) UpdateNextSurvey(c *gin.Context) {
	shipID := c.Param("id")
	log.Printf("[survey][handler] recompute start ship_id=%s", shipID)

	summary, err := h.usecase.RecomputeShip(c.Request.Context(), shipID)
	if err != nil {
		log.Printf("[survey][handler] recompute failed ship_id=%s err=%v", shipID, err)
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecomputeSummary(summary))
}

// UpcomingSurveys lists the caller company's certificates that are inside
// their survey window today.
func (h *SurveyHandler) UpcomingSurveys(c *gin.Context) {
	company := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
	if company == "" {
		c.JSON(errMissingCompany.HTTPStatus, errMissingCompany.ToHTTPError())
		return
	}

	var q request.UpcomingSurveysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidDays.HTTPStatus, errInvalidDays.ToHTTPError())
		return
	}
	days, err := q.ResolveDays()
	if err != nil {
		c.JSON(errInvalidDays.HTTPStatus, errInvalidDays.ToHTTPError())
		return
	}

	res, err := h.usecase.UpcomingSurveys(c.Request.Context(), company)
	if err != nil {
		log.Printf("[survey][handler] upcoming failed company=%s err=%v", company, err)
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[survey][handler] upcoming company=%s total=%d skipped=%d", company, len(res.Surveys), res.Skipped)

	c.JSON(http.StatusOK, response.FromUpcomingSurveys(res, days))
}

func mapSurveyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShipID), errors.Is(err, usecase.ErrInvalidCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipNotFound):
		return pkg.NewDomainErrorSimple("SHIP_NOT_FOUND", "Ship not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
