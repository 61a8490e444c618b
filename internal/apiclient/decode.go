package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	"movie-locations/internal/models"
)

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedResponseShape, fmt.Sprintf(format, args...))
}

// fields splits a JSON object into its members and checks that every key in
// required is present and not null.
func fields(raw json.RawMessage, what string, required ...string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, shapeError("%s is not an object", what)
	}
	for _, key := range required {
		v, ok := obj[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, shapeError("%s has no %q", what, key)
		}
	}
	return obj, nil
}

func decodeSearch(body []byte) ([]models.SearchResultItem, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil || raws == nil {
		return nil, shapeError("search response is not an array")
	}

	items := make([]models.SearchResultItem, 0, len(raws))
	for i, raw := range raws {
		what := fmt.Sprintf("search item %d", i)
		if _, err := fields(raw, what, "id", "title", "release_year"); err != nil {
			return nil, err
		}

		var item models.SearchResultItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, shapeError("%s: %v", what, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeMovie(body []byte) (*models.MovieDetail, error) {
	obj, err := fields(body, "movie", "title", "release_year", "actors", "locations")
	if err != nil {
		return nil, err
	}

	var locations []json.RawMessage
	if err := json.Unmarshal(obj["locations"], &locations); err != nil {
		return nil, shapeError("movie locations is not an array")
	}
	for i, raw := range locations {
		if _, err := fields(raw, fmt.Sprintf("location %d", i), "address", "lat", "lng"); err != nil {
			return nil, err
		}
	}

	var movie models.MovieDetail
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, shapeError("movie: %v", err)
	}
	return &movie, nil
}
