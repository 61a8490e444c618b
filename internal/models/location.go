package models

// Location is a single filming location: the address as listed in the dataset and its geocoded coordinates.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// NearbyLocation is the filming location closest to a point, with the movie shot there.
type NearbyLocation struct {
	MovieID     int64  `json:"movie_id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
	Location
	DistanceMeters float64 `json:"distance_m"`
}
