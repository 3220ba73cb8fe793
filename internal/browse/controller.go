// Package browse drives the workout list from the address bar.
//
// The Controller derives its query from a Location on every Sync, writes every
// interaction back to the Location in one Push, and issues at most one fetch
// per distinct query. Fetch results are applied in query order rather than
// completion order: a completion whose query no longer matches the one
// derived from the Location is dropped.
package browse

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"workout-catalog/internal/client"
	"workout-catalog/internal/query"
)

// Fetcher is the List Endpoint as seen by the controller.
type Fetcher interface {
	ListWorkouts(ctx context.Context, params url.Values) (*client.WorkoutList, error)
}

// Options configures a Controller.
type Options struct {
	Context  context.Context
	Location Location
	Fetcher  Fetcher
	Logger   *logrus.Logger
	Now      func() time.Time
}

// Request is one fetch issued for one query.
type Request struct {
	Seq    uint64
	Query  query.Query
	Params url.Values
	ctx    context.Context
}

// Completion is the outcome of executing a Request.
type Completion struct {
	Request *Request
	Result  *client.WorkoutList
	Err     error
}

// State is a read-only snapshot for rendering.
type State struct {
	URL        string
	Query      query.Query
	Loading    bool
	HasResult  bool
	Workouts   []client.Workout
	Total      int
	PageSize   int
	TotalPages int
	CanPrev    bool
	CanNext    bool
	Err        error
}

// Controller owns the workout list for the lifetime of one mount of the list route.
type Controller struct {
	mu sync.Mutex

	ctx     context.Context
	loc     Location
	fetcher Fetcher
	log     *logrus.Logger
	now     func() time.Time

	bootstrapped bool
	released     bool

	current    query.Query
	hasCurrent bool
	seq        uint64
	inflight   map[uint64]context.CancelFunc

	result      client.WorkoutList
	resultQuery query.Query
	hasResult   bool
	lastErr     error
}

// New builds a Controller. Location and Fetcher are required.
func New(opts Options) *Controller {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		ctx:      ctx,
		loc:      opts.Location,
		fetcher:  opts.Fetcher,
		log:      log,
		now:      now,
		inflight: make(map[uint64]context.CancelFunc),
	}
}

// Activate mounts the controller. The first call fills a missing month filter
// with the current month (a single Replace of the URL); later calls only Sync.
func (c *Controller) Activate() *Request {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.bootstrapped {
		c.bootstrapped = true
		q := query.Parse(c.loc.Query())
		if next, changed := query.Bootstrap(q, c.now()); changed {
			c.loc.Replace(c.loc.Path(), next.Values())
			c.log.WithField("startDate", next.StartMonth).Debug("Applied default start month")
		}
	}
	return c.syncLocked()
}

// ToggleCategory adds or removes a category code.
func (c *Controller) ToggleCategory(code string) *Request {
	return c.dispatch(query.ToggleCategory{Code: code})
}

// SetStartMonth replaces the month filter; "" clears it.
func (c *Controller) SetStartMonth(value string) *Request {
	return c.dispatch(query.SetStartMonth{Value: value})
}

// SetPage moves to page. Callers gate it with State.CanPrev and State.CanNext.
func (c *Controller) SetPage(page int) *Request {
	return c.dispatch(query.SetPage{Page: page})
}

// ResetFilters clears categories and month.
func (c *Controller) ResetFilters() *Request {
	return c.dispatch(query.ResetFilters{})
}

func (c *Controller) dispatch(action query.Action) *Request {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return nil
	}
	next := query.Reduce(query.Parse(c.loc.Query()), action)
	c.loc.Push(RouteList, next.Values())
	return c.syncLocked()
}

// Sync re-derives the query from the Location. It returns a Request when the
// query changed by value since the last Sync, nil otherwise.
func (c *Controller) Sync() *Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncLocked()
}

func (c *Controller) syncLocked() *Request {
	if c.released {
		return nil
	}
	q := query.Parse(c.loc.Query())
	if c.hasCurrent && q.Equal(c.current) {
		return nil
	}

	// superseded fetches are aborted; their completions are still accounted for
	for _, cancel := range c.inflight {
		cancel()
	}

	c.current = q
	c.hasCurrent = true
	c.seq++

	ctx, cancel := context.WithCancel(c.ctx)
	c.inflight[c.seq] = cancel

	return &Request{
		Seq:    c.seq,
		Query:  q,
		Params: q.Params(),
		ctx:    ctx,
	}
}

// Execute performs the fetch for req. It blocks and may run on any goroutine.
func (c *Controller) Execute(req *Request) Completion {
	if req == nil {
		return Completion{}
	}
	ctx := req.ctx
	if ctx == nil {
		ctx = c.ctx
	}
	list, err := c.fetcher.ListWorkouts(ctx, req.Params)
	return Completion{Request: req, Result: list, Err: err}
}

// Complete records a finished fetch and reports whether its result was applied.
// Each Request is accounted for once; repeated completions are ignored.
func (c *Controller) Complete(done Completion) bool {
	req := done.Request
	if req == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cancel, ok := c.inflight[req.Seq]
	if !ok {
		return false
	}
	delete(c.inflight, req.Seq)
	cancel()

	fields := logrus.Fields{"seq": req.Seq, "query": req.Query.Key()}

	if done.Err != nil {
		if req.Seq != c.seq {
			c.log.WithFields(fields).Debug("Dropped failure of superseded workout fetch")
			return false
		}
		c.lastErr = done.Err
		c.log.WithFields(fields).WithError(done.Err).Warn("Failed to fetch workouts")
		return false
	}

	if !req.Query.Equal(c.current) {
		c.log.WithFields(fields).Debug("Dropped stale workout page")
		return false
	}

	result := client.WorkoutList{}
	if done.Result != nil {
		result = *done.Result
	}
	if result.Workouts == nil {
		result.Workouts = []client.Workout{}
	}
	c.result = result
	c.resultQuery = req.Query
	c.hasResult = true
	c.lastErr = nil
	return true
}

// Await executes req and completes it, returning the fetch error if any.
func (c *Controller) Await(req *Request) error {
	if req == nil {
		return nil
	}
	done := c.Execute(req)
	c.Complete(done)
	return done.Err
}

// Refresh activates the controller and waits for the resulting fetch, if any.
// Cancelling ctx aborts the fetch.
func (c *Controller) Refresh(ctx context.Context) error {
	req := c.Activate()
	if req == nil {
		return nil
	}
	stop := context.AfterFunc(ctx, func() { c.abort(req.Seq) })
	defer stop()
	return c.Await(req)
}

func (c *Controller) abort(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cancel, ok := c.inflight[seq]; ok {
		cancel()
	}
}

// Release discards the page and aborts in-flight fetches; the controller is
// inert afterwards. Navigating away from the list route calls it.
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.released = true
	for seq, cancel := range c.inflight {
		cancel()
		delete(c.inflight, seq)
	}
	c.result = client.WorkoutList{}
	c.hasResult = false
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.current
	if !c.hasCurrent {
		q = query.Parse(c.loc.Query())
	}

	_, loading := c.inflight[c.seq]
	st := State{
		URL:       c.loc.String(),
		Query:     q,
		Loading:   loading && c.hasCurrent,
		HasResult: c.hasResult,
		Total:     c.result.Total,
		PageSize:  c.result.PageSize,
		Err:       c.lastErr,
	}
	if c.hasResult {
		st.Workouts = append([]client.Workout(nil), c.result.Workouts...)
	}
	// page count is only known for the filters the result was fetched with
	if c.hasResult && c.resultQuery.SameFilters(q) {
		st.TotalPages = query.TotalPages(st.Total, st.PageSize)
		st.CanNext = q.Page < st.TotalPages
	} else {
		st.TotalPages = max(q.Page, 1)
	}
	st.CanPrev = q.Page > 1
	return st
}
