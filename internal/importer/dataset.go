package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column positions of a row in the SF film locations export.
const (
	colTitle             = 8
	colReleaseYear       = 9
	colLocation          = 10
	colFunFacts          = 11
	colProductionCompany = 12
	colDistributor       = 13
	colDirector          = 14
	colWriter            = 15
	colActor1            = 16
	colActor3            = 18
)

// Row is one line of the dataset: a single movie at a single location.
type Row struct {
	Title             string
	ReleaseYear       int
	Address           string
	FunFacts          string
	ProductionCompany string
	Distributor       string
	Director          string
	Writer            string
	Actors            []string
}

type dataset struct {
	Data [][]any `json:"data"`
}

// ReadDataset decodes the "data" rows of a Socrata JSON export.
func ReadDataset(r io.Reader) ([]Row, error) {
	var ds dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("importer: failed to decode dataset: %w", err)
	}

	rows := make([]Row, 0, len(ds.Data))
	for i, record := range ds.Data {
		if len(record) <= colActor3 {
			return nil, fmt.Errorf("importer: invalid record %d: %d columns, expected at least %d", i, len(record), colActor3+1)
		}

		title := text(record[colTitle])
		if title == "" {
			return nil, fmt.Errorf("importer: invalid record %d: missing title", i)
		}

		year, err := integer(record[colReleaseYear])
		if err != nil {
			return nil, fmt.Errorf("importer: invalid release year in record %d: %w", i, err)
		}

		row := Row{
			Title:             title,
			ReleaseYear:       year,
			Address:           text(record[colLocation]),
			FunFacts:          text(record[colFunFacts]),
			ProductionCompany: text(record[colProductionCompany]),
			Distributor:       text(record[colDistributor]),
			Director:          text(record[colDirector]),
			Writer:            text(record[colWriter]),
		}
		for _, v := range record[colActor1 : colActor3+1] {
			if actor := text(v); actor != "" {
				row.Actors = append(row.Actors, actor)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func integer(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(t), nil
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0, nil
		}
		return strconv.Atoi(t)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
