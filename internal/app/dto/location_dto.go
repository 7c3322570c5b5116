package dto

import (
	"net/http"
	"strings"
)

// AirportOption is one autocomplete suggestion, deduplicated by IATA code.
type AirportOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// LocationSearchRequest is the inbound airport/city autocomplete query.
// Keywords shorter than two characters are legal and yield an empty list
// without touching the provider, so there is no validation tag on Keyword.
type LocationSearchRequest struct {
	Keyword string `json:"keyword"`
}

func (r *LocationSearchRequest) Bind(req *http.Request) error {
	r.Keyword = strings.TrimSpace(req.URL.Query().Get("keyword"))

	return nil
}

type LocationSearchResponse struct {
	Airports []AirportOption `json:"airports"`
}
