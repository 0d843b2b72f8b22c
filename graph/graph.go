package graph

import (
	"context"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Connection bootstrap constants. The knowledge store is frequently started
// alongside the process (e.g. a sibling container), so the first connectivity
// checks are expected to fail while it warms up.
const (
	// connectAttempts is the total number of connectivity checks made
	// before Connect gives up.
	connectAttempts = 5

	// connectInterval is the fixed delay between consecutive checks.
	connectInterval = 2 * time.Second
)

// Record is a single query result row, keyed by the column names of the
// RETURN clause.
type Record map[string]any

// Runner executes a Cypher statement and returns its buffered rows. It is the
// seam between the query/seed layers and the concrete driver; tests supply
// in-memory implementations.
type Runner interface {
	// Run executes a parameterized Cypher statement and returns all
	// resulting records. Every call is a fresh round trip.
	Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Config carries the connection settings for the knowledge store.
type Config struct {
	// URI is the bolt/neo4j connection URI (e.g. "bolt://localhost:7687").
	URI string

	// Username and Password authenticate against the store.
	Username string
	Password string

	// Database is the target database name. Empty selects the server
	// default.
	Database string
}

// Store is a live, process-wide connection to the knowledge store. It is
// created once with Connect and shared by all concurrent analysis runs; each
// query acquires its own session.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger

	// sleep is replaced in tests to observe the retry schedule.
	sleep func(time.Duration)
}

// Option configures a Store during Connect.
type Option func(*Store)

// WithLogger sets the structured logger used for connectivity warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Connect creates the driver and verifies liveness before returning. On
// verification failure it retries up to connectAttempts total attempts with a
// fixed connectInterval delay, then surfaces the last error as a
// ConnectionError. The caller must treat that as fatal.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, &ConnectionError{URI: cfg.URI, Attempts: 0, Err: err}
	}

	s := &Store{
		driver:   driver,
		database: cfg.Database,
		logger:   slog.Default(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := awaitReady(ctx, driver, s.sleep, s.logger); err != nil {
		_ = driver.Close(ctx)
		if ce, ok := err.(*ConnectionError); ok {
			ce.URI = cfg.URI
		}
		return nil, err
	}

	return s, nil
}

// connectivityVerifier is the slice of the driver that the bootstrap loop
// needs; tests substitute a fake.
type connectivityVerifier interface {
	VerifyConnectivity(ctx context.Context) error
}

// awaitReady runs the bounded verification loop: connectAttempts checks with
// connectInterval between consecutive failures.
func awaitReady(ctx context.Context, v connectivityVerifier, sleep func(time.Duration), logger *slog.Logger) error {
	var last error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		last = v.VerifyConnectivity(ctx)
		if last == nil {
			if attempt > 1 {
				logger.Info("graph store became reachable", "attempt", attempt)
			}
			return nil
		}
		logger.Warn("graph store connectivity check failed",
			"attempt", attempt,
			"max_attempts", connectAttempts,
			"error", last)
		if attempt < connectAttempts {
			sleep(connectInterval)
		}
	}
	return &ConnectionError{Attempts: connectAttempts, Err: last}
}

// Run executes a parameterized Cypher statement through the driver's managed
// session handling and returns the fully buffered rows. It implements Runner.
func (s *Store) Run(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database))
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(result.Records))
	for _, rec := range result.Records {
		records = append(records, Record(rec.AsMap()))
	}
	return records, nil
}

// InSession executes fn against a dedicated session. The session is released
// on every exit path, including panics inside fn.
func (s *Store) InSession(ctx context.Context, fn func(neo4j.SessionWithContext) error) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)
	return fn(session)
}

// VerifyConnectivity re-checks that the store is reachable. Used by health
// checks after startup.
func (s *Store) VerifyConnectivity(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the underlying driver and all pooled connections.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}
