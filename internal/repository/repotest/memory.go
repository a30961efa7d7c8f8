// Package repotest provides in-memory repositories that mirror the SQL
// store's observable behavior: store-assigned increasing ids, unconditional
// update/delete reporting affected rows, and insertion-ordered listing.
package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/repository"
)

var (
	_ repository.StaffRepository = (*StaffStore)(nil)
	_ repository.StockRepository = (*StockStore)(nil)
)

// StaffStore is an in-memory repository.StaffRepository. Setting Err makes
// every call fail with it.
type StaffStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.StaffRecord
	Err    error
	Calls  int
}

// NewStaffStore returns an empty store.
func NewStaffStore() *StaffStore {
	return &StaffStore{rows: make(map[int64]domain.StaffRecord)}
}

func (s *StaffStore) List(ctx context.Context) ([]domain.StaffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.sorted(), nil
}

func (s *StaffStore) Create(ctx context.Context, staff *domain.StaffRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	s.nextID++
	row := *staff
	row.ID = s.nextID
	s.rows[row.ID] = row
	return nil
}

func (s *StaffStore) Update(ctx context.Context, staff *domain.StaffRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.rows[staff.ID]; !ok {
		return 0, nil
	}
	s.rows[staff.ID] = *staff
	return 1, nil
}

func (s *StaffStore) Delete(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

// Snapshot returns the stored rows ordered by id.
func (s *StaffStore) Snapshot() []domain.StaffRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

func (s *StaffStore) sorted() []domain.StaffRecord {
	out := make([]domain.StaffRecord, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StockStore is an in-memory repository.StockRepository.
type StockStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.StockItem
	Err    error
	Calls  int
}

// NewStockStore returns an empty store.
func NewStockStore() *StockStore {
	return &StockStore{rows: make(map[int64]domain.StockItem)}
}

func (s *StockStore) List(ctx context.Context) ([]domain.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.sorted(), nil
}

func (s *StockStore) GetByID(ctx context.Context, id int64) (*domain.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (s *StockStore) Create(ctx context.Context, item *domain.StockItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	s.nextID++
	row := *item
	row.ID = s.nextID
	s.rows[row.ID] = row
	return nil
}

func (s *StockStore) Update(ctx context.Context, item *domain.StockItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.rows[item.ID]; !ok {
		return 0, nil
	}
	s.rows[item.ID] = *item
	return 1, nil
}

func (s *StockStore) Delete(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return 0, nil
	}
	delete(s.rows, id)
	return 1, nil
}

// Snapshot returns the stored rows ordered by id.
func (s *StockStore) Snapshot() []domain.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted()
}

func (s *StockStore) sorted() []domain.StockItem {
	out := make([]domain.StockItem, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
