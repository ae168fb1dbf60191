package routes

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_api/internal/models"
	"travel_api/internal/store"
)

func seedAirline(t *testing.T, s store.Store, id string, a models.Airline) {
	t.Helper()
	require.NoError(t, s.Upsert(context.Background(), store.KindAirline, id, a))
}

func seedRoute(t *testing.T, s store.Store, id string, r models.Route) {
	t.Helper()
	require.NoError(t, s.Upsert(context.Background(), store.KindRoute, id, r))
}

var mileAir = models.Airline{
	Name:     "40-Mile Air",
	Callsign: "MILE-AIR",
	Iata:     "Q5",
	Icao:     "MLA",
	Country:  "United States",
}

func TestGetAirline(t *testing.T) {
	s := store.NewMemoryStore()
	seedAirline(t, s, "airline_10", mileAir)
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/airline_10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"name":     "40-Mile Air",
		"iata":     "Q5",
		"icao":     "MLA",
		"callsign": "MILE-AIR",
		"country":  "United States",
	}, parseBody(t, w))
}

func TestGetAirlineNotFound(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/invalid_id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "Airline with ID invalid_id not found"}, parseBody(t, w))
}

func TestCreateAirlineRoundTrip(t *testing.T) {
	s := store.NewMemoryStore()
	r := newTestRouter(s)

	// idempotent fixture: clear any leftover before creating
	doRequest(r, http.MethodDelete, "/api/v1/airlines/airline_post", nil)

	w := doRequest(r, http.MethodPost, "/api/v1/airlines/airline_post", map[string]any{"airline": mileAir})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/airlines/airline_post", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "40-Mile Air", parseBody(t, w)["name"])
}

func TestCreateAirlineConflict(t *testing.T) {
	s := store.NewMemoryStore()
	seedAirline(t, s, "airline_137", models.Airline{
		Name: "Air France", Callsign: "AIRFRANS", Iata: "AF", Icao: "AFR", Country: "France",
	})
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/airlines/airline_137", map[string]any{"airline": mileAir})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Airline with ID airline_137 already exists", parseBody(t, w)["message"])

	// the existing document was not overwritten
	w = doRequest(r, http.MethodGet, "/api/v1/airlines/airline_137", nil)
	assert.Equal(t, "Air France", parseBody(t, w)["name"])
}

func TestCreateAirlineValidation(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	w := doRequest(r, http.MethodPost, "/api/v1/airlines/airline_new", map[string]any{
		"airline": map[string]any{"name": "temp"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	got := parseBody(t, w)
	assert.Equal(t, "Invalid request", got["error"])
	assert.Equal(t, []any{
		"Callsign can't be blank",
		"Iata can't be blank",
		"Iata is the wrong length (should be 2 characters)",
		"Icao can't be blank",
		"Icao is the wrong length (should be 3 characters)",
		"Country can't be blank",
	}, got["message"])
}

func TestUpdateAirlineUpsertsAndValidates(t *testing.T) {
	s := store.NewMemoryStore()
	r := newTestRouter(s)

	updated := models.Airline{
		Name: "41-Mile Air", Callsign: "UPDA-AIR", Iata: "U6", Icao: "UPE", Country: "Updated States",
	}

	// airlines upsert on PUT: a missing id is created
	w := doRequest(r, http.MethodPut, "/api/v1/airlines/airline_put", map[string]any{"airline": updated})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/airlines/airline_put", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "41-Mile Air", parseBody(t, w)["name"])

	// a partial body fails with the full ordered violation list
	w = doRequest(r, http.MethodPut, "/api/v1/airlines/airline_put", map[string]any{
		"airline": map[string]any{"name": "temp"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	got := parseBody(t, w)
	assert.Equal(t, "Invalid request", got["error"])
	assert.Len(t, got["message"], 6)
}

func TestDeleteAirline(t *testing.T) {
	s := store.NewMemoryStore()
	r := newTestRouter(s)

	// never-created id
	w := doRequest(r, http.MethodDelete, "/api/v1/airlines/airline_delete", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"message": "Airline with ID airline_delete not found"}, parseBody(t, w))

	// create-then-delete
	w = doRequest(r, http.MethodPost, "/api/v1/airlines/airline_delete", map[string]any{"airline": mileAir})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/airlines/airline_delete", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, map[string]any{"message": "Airline deleted successfully"}, parseBody(t, w))
}

var franceAirlines = []models.Airline{
	{Callsign: "REUNION", Country: "France", Iata: "UU", Icao: "REU", Name: "Air Austral"},
	{Callsign: "AIRLINAIR", Country: "France", Iata: "A5", Icao: "RLA", Name: "Airlinair"},
	{Callsign: "AIRFRANS", Country: "France", Iata: "AF", Icao: "AFR", Name: "Air France"},
	{Callsign: "AIRCALIN", Country: "France", Iata: "SB", Icao: "ACI", Name: "Air Caledonie International"},
	{Callsign: "T&", Country: "France", Iata: "&T", Icao: "T&O", Name: "Tom\\'s & co airliners"},
	{Callsign: "BRITAIR", Country: "France", Iata: "DB", Icao: "BZH", Name: "Brit Air"},
	{Callsign: "Vickjet", Country: "France", Iata: "KT", Icao: "VKJ", Name: "VickJet"},
	{Callsign: "CORSAIR", Country: "France", Iata: "SS", Icao: "CRL", Name: "Corsairfly"},
	{Callsign: "CORSICA", Country: "France", Iata: "XK", Icao: "CCM", Name: "Corse-Mediterranee"},
	{Callsign: "AIGLE AZUR", Country: "France", Iata: "ZI", Icao: "AAF", Name: "Aigle Azur"},
}

func seedFrance(t *testing.T, s store.Store) {
	t.Helper()
	seedAirline(t, s, "airline_10", mileAir)
	for i, a := range franceAirlines {
		seedAirline(t, s, "airline_fr_"+string(rune('a'+i)), a)
	}
}

func TestListAirlinesByCountry(t *testing.T) {
	s := store.NewMemoryStore()
	seedFrance(t, s)
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/list?country=France&limit=10&offset=0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := parseList(t, w)
	require.Len(t, rows, 10)
	for i, a := range franceAirlines {
		assert.Equal(t, map[string]any{
			"callsign": a.Callsign,
			"country":  a.Country,
			"iata":     a.Iata,
			"icao":     a.Icao,
			"name":     a.Name,
		}, rows[i])
	}

	// projections are emitted in the fixed field order
	body := w.Body.String()
	first := body[:strings.Index(body, "}")]
	order := []string{`"callsign"`, `"country"`, `"iata"`, `"icao"`, `"name"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(first, key)
		require.Greater(t, idx, last, "expected %s after previous key", key)
		last = idx
	}
}

func TestListAirlinesPaginationNoOverlap(t *testing.T) {
	s := store.NewMemoryStore()
	seedFrance(t, s)
	r := newTestRouter(s)

	w1 := doRequest(r, http.MethodGet, "/api/v1/airlines/list?country=France&limit=4&offset=0", nil)
	w2 := doRequest(r, http.MethodGet, "/api/v1/airlines/list?country=France&limit=4&offset=4", nil)
	require.Equal(t, http.StatusOK, w1.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	page1 := parseList(t, w1)
	page2 := parseList(t, w2)
	require.Len(t, page1, 4)
	require.Len(t, page2, 4)

	seen := make(map[any]bool)
	for _, row := range page1 {
		seen[row["icao"]] = true
	}
	for _, row := range page2 {
		assert.False(t, seen[row["icao"]], "page overlap on %v", row["icao"])
	}
}

func TestListAirlinesDefaultsLimitToTen(t *testing.T) {
	s := store.NewMemoryStore()
	seedFrance(t, s)
	seedAirline(t, s, "airline_extra", models.Airline{
		Callsign: "EXTRA", Country: "France", Iata: "XX", Icao: "XTR", Name: "Extra Air",
	})
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/list?country=France", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseList(t, w), 10)
}

func TestListAirlinesRejectsMalformedLimit(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/list?limit=ten", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAirlinesToAirport(t *testing.T) {
	s := store.NewMemoryStore()
	seedAirline(t, s, "airline_ba", models.Airline{
		Callsign: "SPEEDBIRD", Country: "United Kingdom", Iata: "BA", Icao: "BAW", Name: "British Airways",
	})
	seedAirline(t, s, "airline_af", models.Airline{
		Callsign: "AIRFRANS", Country: "France", Iata: "AF", Icao: "AFR", Name: "Air France",
	})

	schedule := []models.ScheduleDetail{{Day: 0, Utc: "10:13:00", Flight: "XX100"}}
	seedRoute(t, s, "route_1", models.Route{
		Airline: "BA", Airlineid: "airline_ba", Sourceairport: "LHR", Destinationairport: "JFK",
		Stops: 0, Equipment: "744", Schedule: schedule, Distance: 5539,
	})
	seedRoute(t, s, "route_2", models.Route{
		Airline: "AF", Airlineid: "airline_af", Sourceairport: "CDG", Destinationairport: "JFK",
		Stops: 0, Equipment: "772", Schedule: schedule, Distance: 5842,
	})
	// second BA route to the same airport: id must be deduplicated
	seedRoute(t, s, "route_3", models.Route{
		Airline: "BA", Airlineid: "airline_ba", Sourceairport: "MAN", Destinationairport: "JFK",
		Stops: 0, Equipment: "763", Schedule: schedule, Distance: 5383,
	})
	// dangling reference: no such airline document
	seedRoute(t, s, "route_4", models.Route{
		Airline: "ZZ", Airlineid: "airline_ghost", Sourceairport: "AMS", Destinationairport: "JFK",
		Stops: 0, Equipment: "333", Schedule: schedule, Distance: 5878,
	})
	// different destination: must not appear
	seedRoute(t, s, "route_5", models.Route{
		Airline: "BA", Airlineid: "airline_ba", Sourceairport: "LHR", Destinationairport: "LAX",
		Stops: 0, Equipment: "744", Schedule: schedule, Distance: 8780,
	})

	r := newTestRouter(s)
	w := doRequest(r, http.MethodGet, "/api/v1/airlines/to-airport?destinationAirportCode=JFK&limit=10&offset=0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := parseList(t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, "British Airways", rows[0]["name"])
	assert.Equal(t, "Air France", rows[1]["name"])
}

func TestAirlinesToAirportMissingParam(t *testing.T) {
	cs := &countingStore{Store: store.NewMemoryStore()}
	r := newTestRouter(cs)

	w := doRequest(r, http.MethodGet, "/api/v1/airlines/to-airport?limit=10&offset=0", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{
		"error":   "Invalid request",
		"message": "Destination airport is missing",
	}, parseBody(t, w))
	assert.Zero(t, cs.calls, "missing parameter must never touch the store")
}
