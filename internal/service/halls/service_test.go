package halls

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
	hallRepo "github.com/m04kA/SMC-TableReservation/internal/infra/storage/hall"
)

type mockHallRepo struct {
	halls   []*domain.Hall
	tables  []*domain.Table
	listErr error
}

func (m *mockHallRepo) GetHall(_ context.Context, id int64) (*domain.Hall, error) {
	for _, h := range m.halls {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, hallRepo.ErrHallNotFound
}

func (m *mockHallRepo) ListHalls(context.Context) ([]*domain.Hall, error) {
	return m.halls, m.listErr
}

func (m *mockHallRepo) TablesOf(_ context.Context, hallID int64) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0)
	for _, t := range m.tables {
		if t.HallID == hallID {
			result = append(result, t)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo() *mockHallRepo {
	return &mockHallRepo{
		halls: []*domain.Hall{
			{ID: 1, Name: "Main", Width: 4, Height: 3},
			{ID: 2, Name: "Terrace", Width: 2, Height: 2},
		},
		tables: []*domain.Table{
			{ID: 1, HallID: 1, Number: "10", Capacity: 4, XPosition: 0, YPosition: 0, IsActive: true},
			{ID: 2, HallID: 1, Number: "2", Capacity: 6, XPosition: 1, YPosition: 0, IsActive: false},
			{ID: 3, HallID: 1, Number: "3", Capacity: 2, XPosition: 9, YPosition: 9, IsActive: true},
			{ID: 4, HallID: 2, Number: "1", Capacity: 2, XPosition: 1, YPosition: 1, IsActive: true},
		},
	}
}

func TestListHalls_DerivedValues(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	resp, err := svc.ListHalls(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Halls, 2)

	assert.Equal(t, 12, resp.Halls[0].TotalCapacity)
	assert.Equal(t, 2, resp.Halls[0].ActiveTablesCount)
	assert.Empty(t, resp.Halls[0].Tables)
	assert.Equal(t, 2, resp.Halls[1].TotalCapacity)
}

func TestGetHall_SortsTablesAndSkipsOutsideGrid(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	resp, err := svc.GetHall(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Tables, 2)
	assert.Equal(t, "2", resp.Tables[0].Number)
	assert.Equal(t, "10", resp.Tables[1].Number)
	assert.Equal(t, 10, resp.TotalCapacity)
}

func TestGetHall_NotFound(t *testing.T) {
	svc := NewService(newRepo(), nopLogger{})

	_, err := svc.GetHall(context.Background(), 42)
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestListHalls_RepositoryError(t *testing.T) {
	repo := newRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListHalls(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
