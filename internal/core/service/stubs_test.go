package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var (
	discardLogger = zerolog.Nop()
	errBoom       = errors.New("connection reset")
)

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	seq       int64
	createErr error // if set, CreateAccount returns this error
	findErr   error // if set, FindByEmail returns this error
	listErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) CreateAccount(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrConflict
	}
	r.seq++
	clone := *u
	clone.ID = r.seq
	clone.Role = domain.RoleUser
	if len(r.byEmail) == 0 {
		clone.Role = domain.RoleAdmin
	}
	clone.CreatedAt = time.Now().UTC()
	r.byEmail[u.Email] = &clone

	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id int64, role domain.Role) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.Role = role
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubFormationRepo struct {
	rows      map[int64]*domain.Formation
	seq       int64
	lastQuery domain.CatalogFilter
	err       error // if set, every call returns this error
}

func newStubFormationRepo(seed ...*domain.Formation) *stubFormationRepo {
	r := &stubFormationRepo{rows: make(map[int64]*domain.Formation)}
	for _, f := range seed {
		_, _ = r.Create(context.Background(), f)
	}
	return r
}

func (r *stubFormationRepo) Create(_ context.Context, f *domain.Formation) (*domain.Formation, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	clone := *f
	clone.ID = r.seq
	if clone.Status == "" {
		clone.Status = domain.StatusPublished
	}
	r.rows[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubFormationRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.rows)), nil
}

func (r *stubFormationRepo) List(_ context.Context, filter domain.CatalogFilter) ([]*domain.Formation, error) {
	r.lastQuery = filter
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Formation, 0, len(r.rows))
	for _, f := range r.rows {
		if filter.Matches(f) {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubFormationRepo) FindByID(_ context.Context, id int64) (*domain.Formation, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFormationRepo) Update(_ context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(f)
	clone := *f
	return &clone, nil
}

func (r *stubFormationRepo) Delete(_ context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type stubContactRepo struct {
	rows      map[int64]*domain.ContactMessage
	seq       int64
	createErr error
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{rows: make(map[int64]*domain.ContactMessage)}
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *m
	clone.ID = r.seq
	r.rows[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id int64) (*domain.ContactMessage, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

// stubHasher "hashes" by prefixing, which keeps tests fast.
type stubHasher struct {
	hashErr error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h stubHasher) Verify(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubIdempotency struct {
	keys      map[string]int64
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) Lookup(_ context.Context, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, key string, id int64) error {
	s.keys[key] = id
	return nil
}
