package list_sessions

import (
	"strconv"
	"time"

	"github.com/LauraGA777/gmsf-backend-sub001/internal/domain"
	"github.com/LauraGA777/gmsf-backend-sub001/internal/service/sessions/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров.
// Все параметры опциональны; некорректные значения - ошибка, а не молчаливый
// пропуск фильтра.
func ToServiceRequest(caller domain.Caller, pageStr, limitStr, search, status, trainerIDStr, clientIDStr, dateFromStr, dateToStr string) (*models.ListSessionsRequest, error) {
	req := &models.ListSessionsRequest{
		Caller: caller,
		Page:   domain.DefaultPage,
		Limit:  domain.DefaultLimit,
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return nil, strconv.ErrSyntax
		}
		req.Page = page
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return nil, strconv.ErrSyntax
		}
		req.Limit = limit
	}

	if search != "" {
		req.Search = &search
	}

	if status != "" {
		req.Status = &status
	}

	if trainerIDStr != "" {
		trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
		if err != nil || trainerID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.TrainerID = &trainerID
	}

	if clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil || clientID <= 0 {
			return nil, strconv.ErrSyntax
		}
		req.ClientID = &clientID
	}

	if dateFromStr != "" {
		dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &dateFrom
	}

	if dateToStr != "" {
		dateTo, err := time.Parse(domain.DateFormat, dateToStr)
		if err != nil {
			return nil, err
		}
		// Верхняя граница включает весь день
		end := dateTo.AddDate(0, 0, 1)
		req.DateTo = &end
	}

	return req, nil
}
