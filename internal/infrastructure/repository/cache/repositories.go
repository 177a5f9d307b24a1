package cache

import (
	"context"
	"time"

	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
	basecache "github.com/jamjudge/jamjudge-api/internal/platform/cache"
)

type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	key := "event:id:" + eventID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return cachedEventByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return event.Event{}, false, err
	}

	cached, _ := v.(cachedEventByID)
	return cached.value, cached.exists, nil
}

type cachedEventByID struct {
	value  event.Event
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID string) ([]team.Team, error) {
	key := "team:list:" + eventID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type CriterionRepository struct {
	next  criterion.Repository
	cache *basecache.Store
}

func NewCriterionRepository(next criterion.Repository, cache *basecache.Store) *CriterionRepository {
	return &CriterionRepository{next: next, cache: cache}
}

func (r *CriterionRepository) ListByEvent(ctx context.Context, eventID string) ([]criterion.Criterion, error) {
	key := "criterion:list:" + eventID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return append([]criterion.Criterion(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]criterion.Criterion)
	return append([]criterion.Criterion(nil), items...), nil
}

// ResultRepository caches leaderboard reads and drops the cached rows,
// plus the cached event record, whenever the snapshot is replaced.
type ResultRepository struct {
	next  result.Repository
	cache *basecache.Store
}

func NewResultRepository(next result.Repository, cache *basecache.Store) *ResultRepository {
	return &ResultRepository{next: next, cache: cache}
}

func (r *ResultRepository) ListByEvent(ctx context.Context, eventID string) ([]result.PublicResult, error) {
	key := "result:list:" + eventID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return append([]result.PublicResult(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]result.PublicResult)
	return append([]result.PublicResult(nil), items...), nil
}

func (r *ResultRepository) ReplaceByEvent(ctx context.Context, eventID string, rows []result.PublicResult, publishedAt time.Time) error {
	if err := r.next.ReplaceByEvent(ctx, eventID, rows, publishedAt); err != nil {
		return err
	}

	r.cache.Delete(ctx, "result:list:"+eventID)
	r.cache.Delete(ctx, "event:id:"+eventID)

	return nil
}
