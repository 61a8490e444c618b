package models

// SearchResultItem is one entry of a title search. It only carries what the result list needs.
type SearchResultItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
}

// MovieDetail is the full record of a movie together with every place it was filmed at.
type MovieDetail struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	ReleaseYear       int        `json:"release_year"`
	Director          string     `json:"director"`
	ProductionCompany string     `json:"production_company"`
	Distributor       string     `json:"distributor,omitempty"`
	Writer            string     `json:"writer"`
	FunFacts          string     `json:"fun_facts,omitempty"`
	Actors            []string   `json:"actors"`
	Locations         []Location `json:"locations"`
}
