package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ssm-admin/ssm-api/internal/domain"
	"github.com/ssm-admin/ssm-api/internal/persistence"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Query(ctx context.Context, sql string, args ...any) (persistence.Rows, error) {
	ret := m.Called(sql, args)
	rows, _ := ret.Get(0).(persistence.Rows)
	return rows, ret.Error(1)
}

func (m *mockExecutor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	ret := m.Called(sql, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *mockExecutor) Ping(ctx context.Context) error {
	return m.Called().Error(0)
}

// sliceRows replays fixed rows through the persistence.Rows cursor.
type sliceRows struct {
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *sliceRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *sliceRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: got %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *sliceRows) Err() error { return r.err }
func (r *sliceRows) Close()     { r.closed = true }

func TestStaffRepository_List(t *testing.T) {
	exec := new(mockExecutor)
	rows := &sliceRows{data: [][]any{
		{int64(1), "Ada", "Engineer", "IT", "ada@example.com", "555-0100"},
		{int64(4), "Grace", "Manager", "Ops", "grace@example.com", "555-0101"},
	}}
	exec.On("Query", mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "FROM staff")
	}), []any(nil)).Return(rows, nil)

	list, err := NewStaffRepository(exec).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StaffRecord{ID: 4, Name: "Grace", Role: "Manager", Departement: "Ops", Email: "grace@example.com", Phone: "555-0101"}, list[1])
	assert.True(t, rows.closed)
	exec.AssertExpectations(t)
}

func TestStaffRepository_ListEmptyIsNotNil(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Query", mock.Anything, mock.Anything).Return(&sliceRows{}, nil)

	list, err := NewStaffRepository(exec).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStaffRepository_ListRowsError(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Query", mock.Anything, mock.Anything).Return(&sliceRows{err: errors.New("conn reset")}, nil)

	_, err := NewStaffRepository(exec).List(context.Background())
	assert.EqualError(t, err, "conn reset")
}

func TestStaffRepository_CreateBindsFieldsInColumnOrder(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Exec", mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "INSERT INTO staff (Name, Role, Departement, Email, Phone)")
	}), []any{"A", "B", "C", "a@b.com", "1"}).Return(int64(1), nil)

	err := NewStaffRepository(exec).Create(context.Background(), &domain.StaffRecord{
		Name: "A", Role: "B", Departement: "C", Email: "a@b.com", Phone: "1",
	})
	require.NoError(t, err)
	exec.AssertExpectations(t)
}

func TestStaffRepository_UpdateReturnsAffectedRows(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Exec", mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "WHERE staffID=?")
	}), []any{"A", "B", "C", "a@b.com", "1", int64(99)}).Return(int64(0), nil)

	affected, err := NewStaffRepository(exec).Update(context.Background(), &domain.StaffRecord{
		ID: 99, Name: "A", Role: "B", Departement: "C", Email: "a@b.com", Phone: "1",
	})
	require.NoError(t, err)
	assert.Zero(t, affected)
	exec.AssertExpectations(t)
}

func TestStaffRepository_Delete(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Exec", "DELETE FROM staff WHERE staffID=?", []any{int64(7)}).Return(int64(1), nil)

	affected, err := NewStaffRepository(exec).Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}

func TestStockRepository_GetByID(t *testing.T) {
	exec := new(mockExecutor)
	rows := &sliceRows{data: [][]any{{int64(5), "Desk", "Furniture", "Ops", 3}}}
	exec.On("Query", mock.Anything, []any{int64(5)}).Return(rows, nil)

	item, err := NewStockRepository(exec).GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, domain.StockItem{ID: 5, Name: "Desk", Category: "Furniture", Department: "Ops", Quantity: 3}, *item)
	assert.True(t, rows.closed)
}

func TestStockRepository_GetByIDMissing(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Query", mock.Anything, []any{int64(42)}).Return(&sliceRows{}, nil)

	item, err := NewStockRepository(exec).GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestStockRepository_QueryFailure(t *testing.T) {
	exec := new(mockExecutor)
	exec.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("relation does not exist"))

	repo := NewStockRepository(exec)
	_, err := repo.List(context.Background())
	assert.Error(t, err)
	_, err = repo.GetByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestStockRepository_Mutations(t *testing.T) {
	exec := new(mockExecutor)
	item := &domain.StockItem{ID: 5, Name: "X", Category: "Y", Department: "Z", Quantity: 3}
	exec.On("Exec", mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "INSERT INTO stock_items")
	}), []any{"X", "Y", "Z", 3}).Return(int64(1), nil)
	exec.On("Exec", mock.MatchedBy(func(sql string) bool {
		return strings.Contains(sql, "UPDATE stock_items")
	}), []any{"X", "Y", "Z", 3, int64(5)}).Return(int64(0), nil)
	exec.On("Exec", "DELETE FROM stock_items WHERE id=?", []any{int64(5)}).Return(int64(0), nil)

	repo := NewStockRepository(exec)
	require.NoError(t, repo.Create(context.Background(), item))
	affected, err := repo.Update(context.Background(), item)
	require.NoError(t, err)
	assert.Zero(t, affected)
	affected, err = repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, affected)
	exec.AssertExpectations(t)
}
