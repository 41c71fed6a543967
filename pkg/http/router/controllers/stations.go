package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

const defaultNearbyLimit = 10

//	@Summary		station by name
//	@Tags			stations
//	@Produce		json
//	@Param			name	query		string	true	"station name or alias, case insensitive"
//	@Success		200		{object}	stationResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/stations [get]
func (api *transitAPI) stationByName(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := stationRequest{Name: r.URL.Query().Get("name")}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	station, err := api.stationService.StationByName(r.Context(), request.Name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStationResponse(station)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

//	@Summary		stations around a point
//	@Tags			stations
//	@Produce		json
//	@Param			lat		query		number	true	"latitude"
//	@Param			lon		query		number	true	"longitude"
//	@Param			radius	query		number	true	"search radius in km"
//	@Param			limit	query		int		false	"maximum number of stations"
//	@Success		200		{object}	[]nearbyStationResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/stations/nearby [get]
func (api *transitAPI) nearbyStations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyStationsRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Radius, err = strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float"))
		return
	}
	request.Limit = defaultNearbyLimit
	if l := query.Get("limit"); l != "" {
		request.Limit, err = strconv.Atoi(l)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("limit must be a valid int"))
			return
		}
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	nearby, err := api.stationService.NearbyStations(r.Context(), request.Lat, request.Lon, request.Radius, request.Limit)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyStationsResponse(nearby)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
