package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/infrastructure/adzuna"
	"gradmatch/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultSearch   = "graduate"
	defaultLocation = "London"

	// refreshTarget stops the fallback sequence once enough rows landed.
	refreshTarget = 20
	// responseJobCap bounds the payload; everything fetched is persisted.
	responseJobCap = 50

	// refreshLockKey guards against overlapping refresh runs hammering
	// the upstream API. The TTL is a safety net for crashed holders.
	refreshLockKey = "jobs:refresh:lock"
	refreshLockTTL = 30 * time.Second
)

var ErrRefreshInProgress = errors.New("refresh already in progress")

// fallbackQueries are tried in order when the primary search yields
// nothing usable.
var fallbackQueries = []struct {
	Search   string
	Location string
}{
	{"graduate", "London"},
	{"job", "United Kingdom"},
	{"software", "London"},
}

type IngestParams struct {
	Search         string
	Location       string
	ResultsPerPage int
	Page           int
}

type IngestResult struct {
	SourceCount int
	Saved       int
	Created     int
	Updated     int
	Jobs        []domjob.Job
	Hint        string
}

type IngestUsecase interface {
	// Fetch runs a single ingestion query and persists the batch.
	Fetch(ctx context.Context, params IngestParams) (IngestResult, *adzuna.FetchError, error)
	// Refresh runs the fallback-query strategy.
	Refresh(ctx context.Context, params IngestParams) (IngestResult, *adzuna.FetchError, error)
	// UpsertJobs normalizes and persists one raw batch.
	UpsertJobs(ctx context.Context, results []adzuna.RawJob, source string) ([]domjob.Job, int, int, error)
}

type Ingest struct {
	client adzuna.Client
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewIngestUsecase(client adzuna.Client, jobs repository.JobRepository, cache Cache, logger *log.Logger) *Ingest {
	return &Ingest{client: client, jobs: jobs, cache: cache, logger: logger}
}

func (u *Ingest) Fetch(ctx context.Context, params IngestParams) (IngestResult, *adzuna.FetchError, error) {
	params = normalizeParams(params)

	page, ferr := u.client.FetchPage(ctx, params.Search, params.Location, params.ResultsPerPage, params.Page)
	if ferr != nil {
		return IngestResult{}, ferr, nil
	}

	saved, created, updated, err := u.UpsertJobs(ctx, page.Results, "adzuna")
	if err != nil {
		return IngestResult{}, nil, ErrInternal
	}

	res := IngestResult{
		SourceCount: page.Count,
		Saved:       len(saved),
		Created:     created,
		Updated:     updated,
		Jobs:        capJobs(saved),
	}
	if len(saved) == 0 {
		res.Hint = "no persistable results for this query"
	}
	return res, nil, nil
}

func (u *Ingest) Refresh(ctx context.Context, params IngestParams) (IngestResult, *adzuna.FetchError, error) {
	params = normalizeParams(params)

	if u.cache != nil {
		acquired, err := u.cache.SetIfNotExists(ctx, refreshLockKey, "1", refreshLockTTL)
		if err == nil && !acquired {
			return IngestResult{}, nil, ErrRefreshInProgress
		}
		if err == nil {
			defer func() { _ = u.cache.Delete(ctx, refreshLockKey) }()
		}
	}

	queries := make([]struct{ Search, Location string }, 0, 1+len(fallbackQueries))
	queries = append(queries, struct{ Search, Location string }{params.Search, params.Location})
	for _, fb := range fallbackQueries {
		queries = append(queries, struct{ Search, Location string }{fb.Search, fb.Location})
	}

	var accumulated []domjob.Job
	var firstErr *adzuna.FetchError
	sourceCount := 0
	totalCreated := 0
	totalUpdated := 0
	successes := 0

	for i, q := range queries {
		if len(accumulated) >= refreshTarget {
			break
		}

		page, ferr := u.client.FetchPage(ctx, q.Search, q.Location, params.ResultsPerPage, params.Page)
		if ferr != nil {
			if i == 0 {
				firstErr = ferr
			}
			if u.logger != nil {
				u.logger.Printf("[Jobs] refresh query failed search=%q location=%q err=%v", q.Search, q.Location, ferr)
			}
			continue
		}

		saved, created, updated, err := u.UpsertJobs(ctx, page.Results, "adzuna")
		if err != nil {
			return IngestResult{}, nil, ErrInternal
		}
		if page.Count > sourceCount {
			sourceCount = page.Count
		}

		if len(saved) > 0 {
			accumulated = append(accumulated, saved...)
			totalCreated += created
			totalUpdated += updated
			successes++
			if i == 0 {
				// primary query was usable, no fallback needed
				break
			}
			if successes >= 2 {
				// a fallback succeeded after an earlier success
				break
			}
		}
	}

	if len(accumulated) == 0 && firstErr != nil {
		return IngestResult{}, firstErr, nil
	}

	deduped := dedupeJobs(accumulated)
	res := IngestResult{
		SourceCount: sourceCount,
		Saved:       len(deduped),
		Created:     totalCreated,
		Updated:     totalUpdated,
		Jobs:        capJobs(deduped),
	}
	if len(deduped) == 0 {
		res.Hint = "no persistable results for any query"
	}
	return res, nil, nil
}

func (u *Ingest) UpsertJobs(ctx context.Context, results []adzuna.RawJob, source string) ([]domjob.Job, int, int, error) {
	batch := make([]repository.JobUpsert, 0, len(results))
	for _, raw := range results {
		row, ok := normalizeRawJob(raw, source)
		if !ok {
			continue
		}
		batch = append(batch, row)
	}

	if len(batch) == 0 {
		return nil, 0, 0, nil
	}

	saved, created, updated, err := u.jobs.UpsertJobs(ctx, batch)
	if err != nil {
		return nil, 0, 0, err
	}

	if u.cache != nil {
		_ = u.cache.InvalidateJobCaches(ctx)
	}
	if u.logger != nil {
		u.logger.Printf("[Jobs] upserted source=%s created=%d updated=%d", source, created, updated)
	}
	return saved, created, updated, nil
}

// normalizeRawJob maps one provider result to a storable row. A blank
// external id makes the item unusable; it is skipped, not an error.
func normalizeRawJob(raw adzuna.RawJob, source string) (repository.JobUpsert, bool) {
	externalID := strings.TrimSpace(raw.ID.String())
	if externalID == "" {
		return repository.JobUpsert{}, false
	}

	jobType := raw.ContractTime
	if jobType == "" {
		jobType = raw.ContractType
	}

	return repository.JobUpsert{
		Source:      source,
		ExternalID:  externalID,
		Title:       truncate(raw.Title, 200),
		Company:     truncate(raw.Company.DisplayName, 200),
		Location:    truncate(raw.Location.DisplayName, 200),
		Description: raw.Description,
		JobType:     truncate(jobType, 50),
		URL:         raw.RedirectURL,
		PostedDate:  parsePostedDate(raw.Created),
	}, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// cut on a rune boundary so multibyte titles stay valid UTF-8
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// parsePostedDate handles Adzuna's ISO-ish created timestamps, which
// sometimes arrive without a zone suffix. Only the date part is kept.
func parsePostedDate(created string) *time.Time {
	created = strings.TrimSpace(created)
	if created == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, created); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

func normalizeParams(p IngestParams) IngestParams {
	if strings.TrimSpace(p.Search) == "" {
		p.Search = defaultSearch
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = defaultLocation
	}
	if p.ResultsPerPage <= 0 {
		p.ResultsPerPage = 20
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p
}

func dedupeJobs(jobs []domjob.Job) []domjob.Job {
	seen := make(map[uuid.UUID]bool, len(jobs))
	out := make([]domjob.Job, 0, len(jobs))
	for _, j := range jobs {
		if seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
	}
	return out
}

func capJobs(jobs []domjob.Job) []domjob.Job {
	if len(jobs) > responseJobCap {
		return jobs[:responseJobCap]
	}
	return jobs
}
