package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

//	@Summary		optimal journeys between two stations
//	@Description	pareto optimal journeys (arrival time, changes) from one station to another on a service day.
//	@Tags			journeys
//	@Produce		json
//	@Param			date	query		string	true	"service day, YYYY-MM-DD"
//	@Param			from	query		string	true	"departure station name or alias"
//	@Param			to		query		string	true	"arrival station name or alias"
//	@Success		200		{object}	[]journeyResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/journeys [get]
func (api *transitAPI) journeys(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := journeysRequest{
		Date: query.Get("date"),
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	journeys, err := api.journeyService.Journeys(r.Context(), request.Date, request.From, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewJourneysResponse(journeys)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

//	@Summary		journeys from several stations
//	@Description	journeys towards one station for each repeated from parameter, in request order.
//	@Tags			journeys
//	@Produce		json
//	@Param			date	query		string		true	"service day, YYYY-MM-DD"
//	@Param			from	query		[]string	true	"departure station names or aliases"
//	@Param			to		query		string		true	"arrival station name or alias"
//	@Success		200		{object}	[]journeysFromResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/journeys/batch [get]
func (api *transitAPI) journeysBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := journeysBatchRequest{
		Date:  query.Get("date"),
		Froms: query["from"],
		To:    query.Get("to"),
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	all, err := api.journeyService.JourneysFrom(r.Context(), request.Date, request.Froms, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewJourneysFromResponse(request.Froms, all)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
