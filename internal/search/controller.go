package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-locations/internal/apiclient"
	"movie-locations/internal/models"

	"github.com/rs/zerolog"
)

const (
	msgSearchUnavailable = "search unavailable"
	msgDetailUnavailable = "movie details unavailable"
	msgMovieNotFound     = "movie not found"
)

// API is the movie backend.
type API interface {
	Search(ctx context.Context, query string) ([]models.SearchResultItem, error)
	Movie(ctx context.Context, id int64) (*models.MovieDetail, error)
}

// Markers is the part of the map the controller drives.
type Markers interface {
	ClearMarkers()
	PlaceMarkers(locations []models.Location)
}

// View is the UI surface: the results container, the detail panel and a
// place for non fatal errors.
type View interface {
	ShowResults(entries []Entry)
	HideResults()
	ShowDetail(d Detail)
	HideDetail()
	ShowError(msg string)
}

// Entry is a selectable line of the results list.
type Entry struct {
	ID    int64
	Label string
}

// Detail holds the detail panel fields, already formatted for display.
type Detail struct {
	Title             string
	ReleaseYear       string
	Director          string
	ProductionCompany string
	Writer            string
	Actors            string
}

// Task performs one request. It may run on any goroutine; its Result must be
// handed back to Deliver on the UI goroutine.
type Task func() Result

// Result is the outcome of a Task.
type Result interface {
	apply(c *Controller)
}

// Controller turns query changes and selections into requests and applies
// their outcomes to the view and the map. Only the outcome of the latest
// search and of the latest selection is applied; older requests are canceled
// and their outcomes dropped.
//
// All methods except running a Task must be called from the same goroutine.
type Controller struct {
	ctx     context.Context
	api     API
	view    View
	markers Markers
	logger  zerolog.Logger

	state State

	searchGen    uint64
	cancelSearch context.CancelFunc
	detailGen    uint64
	cancelDetail context.CancelFunc
}

func NewController(ctx context.Context, api API, view View, markers Markers, logger zerolog.Logger) *Controller {
	return &Controller{
		ctx:     ctx,
		api:     api,
		view:    view,
		markers: markers,
		logger:  logger,
		state:   Idle,
	}
}

// State returns the current step of the session.
func (c *Controller) State() State {
	return c.state
}

// QueryChanged starts a search for raw. The detail panel is hidden and every
// marker removed before the returned task is run.
func (c *Controller) QueryChanged(raw string) Task {
	c.view.HideDetail()
	c.markers.ClearMarkers()

	c.cancelDetailRequest()
	c.cancelSearchRequest()

	c.searchGen++
	gen := c.searchGen
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelSearch = cancel
	c.state = Searching

	c.logger.Debug().Str("query", raw).Uint64("gen", gen).Msg("search issued")

	return func() Result {
		items, err := c.api.Search(ctx, raw)
		return &searchResult{gen: gen, query: raw, items: items, err: err}
	}
}

// ResultSelected hides the results and starts loading the movie id.
func (c *Controller) ResultSelected(id int64) Task {
	c.view.HideResults()

	c.cancelDetailRequest()

	c.detailGen++
	gen := c.detailGen
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelDetail = cancel
	c.state = DetailRequested

	c.logger.Debug().Int64("id", id).Uint64("gen", gen).Msg("detail requested")

	return func() Result {
		movie, err := c.api.Movie(ctx, id)
		return &detailResult{gen: gen, id: id, movie: movie, err: err}
	}
}

// Deliver applies the outcome of a task.
func (c *Controller) Deliver(r Result) {
	if r != nil {
		r.apply(c)
	}
}

// Close cancels the requests still running.
func (c *Controller) Close() {
	c.cancelSearchRequest()
	c.cancelDetailRequest()
}

func (c *Controller) cancelSearchRequest() {
	if c.cancelSearch != nil {
		c.cancelSearch()
		c.cancelSearch = nil
	}
}

func (c *Controller) cancelDetailRequest() {
	if c.cancelDetail != nil {
		c.cancelDetail()
		c.cancelDetail = nil
	}
	// a detail still in flight must not land after the markers were cleared
	c.detailGen++
}

func (c *Controller) fail(err error, msg string) {
	if errors.Is(err, apiclient.ErrUnexpectedResponseShape) {
		msg += ": unexpected response"
	}
	c.state = Failed
	c.view.ShowError(msg)
}

type searchResult struct {
	gen   uint64
	query string
	items []models.SearchResultItem
	err   error
}

func (r *searchResult) apply(c *Controller) {
	if r.gen != c.searchGen {
		c.logger.Debug().Str("query", r.query).Uint64("gen", r.gen).Msg("stale search dropped")
		return
	}
	c.cancelSearchRequest()

	if r.err != nil {
		if errors.Is(r.err, context.Canceled) {
			return
		}
		c.logger.Error().Err(r.err).Str("query", r.query).Msg("search failed")
		c.fail(r.err, msgSearchUnavailable)
		return
	}

	entries := make([]Entry, 0, len(r.items))
	for _, item := range r.items {
		entries = append(entries, Entry{ID: item.ID, Label: Label(item)})
	}

	c.view.ShowResults(entries)
	c.state = ResultsShown
}

type detailResult struct {
	gen   uint64
	id    int64
	movie *models.MovieDetail
	err   error
}

func (r *detailResult) apply(c *Controller) {
	if r.gen != c.detailGen {
		c.logger.Debug().Int64("id", r.id).Uint64("gen", r.gen).Msg("stale detail dropped")
		return
	}
	if c.cancelDetail != nil {
		c.cancelDetail()
		c.cancelDetail = nil
	}

	if r.err != nil {
		if errors.Is(r.err, context.Canceled) {
			return
		}
		c.logger.Error().Err(r.err).Int64("id", r.id).Msg("detail failed")
		if errors.Is(r.err, apiclient.ErrNotFound) {
			c.fail(r.err, msgMovieNotFound)
			return
		}
		c.fail(r.err, msgDetailUnavailable)
		return
	}

	c.view.ShowDetail(FormatDetail(r.movie))
	c.markers.PlaceMarkers(r.movie.Locations)
	c.state = DetailShown
}

// Label is the text of a result list entry: "<title> (<release year>)".
func Label(item models.SearchResultItem) string {
	return fmt.Sprintf("%s (%d)", item.Title, item.ReleaseYear)
}

// FormatDetail formats a movie for the detail panel.
func FormatDetail(m *models.MovieDetail) Detail {
	return Detail{
		Title:             m.Title,
		ReleaseYear:       fmt.Sprintf("(%d)", m.ReleaseYear),
		Director:          m.Director,
		ProductionCompany: m.ProductionCompany,
		Writer:            m.Writer,
		Actors:            strings.Join(m.Actors, ", "),
	}
}
