package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"project-dashboard/internal/entities"
	"project-dashboard/internal/repositories"
	apperrors "project-dashboard/pkg/errors"
	"project-dashboard/pkg/eventbus"
)

type fakeProjectRepo struct {
	items   []entities.Project
	listErr error
	calls   int
}

func (r *fakeProjectRepo) List(context.Context) ([]entities.Project, error) {
	r.calls++
	return r.items, r.listErr
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id int64) (*entities.Project, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeProjectRepo) Create(_ context.Context, p entities.Project) (int64, error) {
	p.ID = int64(len(r.items) + 1)
	p.CreatedAt = time.Now()
	r.items = append(r.items, p)
	return p.ID, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p entities.Project) error {
	for i := range r.items {
		if r.items[i].ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeProjectRepo) SetPinned(_ context.Context, id int64, pinned bool) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsPinned = pinned
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeTechRepo struct {
	items []entities.TechnicalRequest
}

func (r *fakeTechRepo) List(context.Context, repositories.RequestFilter) ([]entities.TechnicalRequest, error) {
	return r.items, nil
}

func (r *fakeTechRepo) FindByID(_ context.Context, id int64) (*entities.TechnicalRequest, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			t := r.items[i]
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTechRepo) Create(_ context.Context, t entities.TechnicalRequest) (int64, error) {
	t.ID = int64(len(r.items) + 1)
	r.items = append(r.items, t)
	return t.ID, nil
}

func (r *fakeTechRepo) Update(_ context.Context, t entities.TechnicalRequest) error {
	for i := range r.items {
		if r.items[i].ID == t.ID {
			r.items[i] = t
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeTechRepo) Delete(context.Context, int64) error { return nil }

type fakeClearanceRepo struct {
	items     []entities.ClearanceRequest
	listCalls int
	batchErr  error
	batches   map[uuid.UUID]int
}

func (r *fakeClearanceRepo) List(context.Context, repositories.RequestFilter) ([]entities.ClearanceRequest, error) {
	r.listCalls++
	return r.items, nil
}

func (r *fakeClearanceRepo) FindByID(_ context.Context, id int64) (*entities.ClearanceRequest, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeClearanceRepo) Create(_ context.Context, c entities.ClearanceRequest) (int64, error) {
	c.ID = int64(len(r.items) + 1)
	r.items = append(r.items, c)
	return c.ID, nil
}

func (r *fakeClearanceRepo) Update(context.Context, entities.ClearanceRequest) error { return nil }

func (r *fakeClearanceRepo) Delete(context.Context, int64) error { return nil }

func (r *fakeClearanceRepo) CreateBatch(_ context.Context, _ pgx.Tx, batchID uuid.UUID, items []entities.ClearanceRequest) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	if r.batches == nil {
		r.batches = make(map[uuid.UUID]int)
	}
	for _, c := range items {
		c.ImportBatchID = &batchID
		c.ID = int64(len(r.items) + 1)
		r.items = append(r.items, c)
	}
	r.batches[batchID] = len(items)
	return len(items), nil
}

type fakeUserRepo struct {
	items []entities.User
}

func (r *fakeUserRepo) List(context.Context) ([]entities.User, error) { return r.items, nil }

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for i := range r.items {
		if strings.EqualFold(r.items[i].Email, email) {
			u := r.items[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u entities.User) (uint64, error) {
	u.ID = uint64(len(r.items) + 1)
	r.items = append(r.items, u)
	return u.ID, nil
}

// fakeCache - кеш в памяти; TTL игнорируется.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	sets   int
}

func newFakeCache() *fakeCache { return &fakeCache{data: make(map[string]string)} }

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) DelByPattern(_ context.Context, pattern string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	n := 0
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *fakeCache) Expire(context.Context, string, time.Duration) (bool, error) { return true, nil }

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.EntityChanged
}

func (b *recordingBus) Publish(e eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e.(eventbus.EntityChanged))
}
