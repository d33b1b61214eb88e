package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeForecastingError(w http.ResponseWriter, err error) {
	if errors.Is(err, forecasting.ErrEventNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Evento não encontrado", nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular a projeção de vendas", nil)
}

// GetSalesForecast entrega a projeção consolidada do evento: meta,
// ritmo esperado versus realizado e os três cenários de fechamento.
func GetSalesForecast(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forecast, err := service.Forecast(pathParam(r, "id"))
		if err != nil {
			writeForecastingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	}
}

func GetSalesDailySeries(service forecasting.ForecastService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series, err := service.DailySeries(pathParam(r, "id"))
		if err != nil {
			writeForecastingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, series)
	}
}
