package tests

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"food-ordering/analytics-svc/internal/domain"
	"food-ordering/analytics-svc/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 15, 0, 0, 0, time.Local)

var (
	resolveQuery    = regexp.QuoteMeta(`SELECT id_alimento, nome, id_estabelecimento FROM Alimento WHERE id_alimento = ANY($1)`)
	todayQuery      = regexp.QuoteMeta(`WHERE p.data_hora::date = CURRENT_DATE`)
	allTimeQuery    = regexp.QuoteMeta(`JOIN Pedido_Alimento pa ON pa.id_alimento = a.id_alimento`)
	ratingsQuery    = regexp.QuoteMeta(`SELECT avaliacao, COUNT(*)`)
	countOrderQuery = regexp.QuoteMeta(`SELECT COUNT(*) FROM Pedido`)
)

type analyticsDeps struct {
	mr   *miniredis.Miniredis
	mock sqlmock.Sqlmock
	svc  *service.AnalyticsService
}

func newAnalyticsService(t *testing.T) analyticsDeps {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return analyticsDeps{
		mr:   mr,
		mock: mock,
		svc: service.NewAnalyticsService(db, rdb).WithClock(func() time.Time {
			return fixedNow
		}),
	}
}

func foodRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_alimento", "nome", "id_estabelecimento"})
}

func rankingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_alimento", "nome", "id_estabelecimento", "score"})
}

func TestAnalyticsService_TopToday(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(analyticsDeps)
		expected  []domain.FoodAnalytics
		expectErr bool
	}{
		{
			name: "ranking from redis skips removed foods",
			setup: func(d analyticsDeps) {
				key := service.DailyKey(fixedNow)
				d.mr.ZAdd(key, 5, "1")
				d.mr.ZAdd(key, 2, "2")
				d.mr.ZAdd(key, 9, "3")
				d.mock.ExpectQuery(resolveQuery).
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(foodRows().AddRow(1, "Pizza", 1).AddRow(2, "Suco", 1))
			},
			expected: []domain.FoodAnalytics{
				{FoodID: 1, FoodName: "Pizza", EstablishmentID: 1, Score: 5},
				{FoodID: 2, FoodName: "Suco", EstablishmentID: 1, Score: 2},
			},
		},
		{
			name: "empty redis falls back to order history",
			setup: func(d analyticsDeps) {
				d.mock.ExpectQuery(todayQuery).
					WithArgs(10).
					WillReturnRows(rankingRows().AddRow(4, "Lasanha", 2, 7))
			},
			expected: []domain.FoodAnalytics{
				{FoodID: 4, FoodName: "Lasanha", EstablishmentID: 2, Score: 7},
			},
		},
		{
			name: "only removed foods in redis falls back",
			setup: func(d analyticsDeps) {
				d.mr.ZAdd(service.DailyKey(fixedNow), 3, "99")
				d.mock.ExpectQuery(resolveQuery).
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(foodRows())
				d.mock.ExpectQuery(todayQuery).
					WithArgs(10).
					WillReturnRows(rankingRows())
			},
			expected: []domain.FoodAnalytics{},
		},
		{
			name: "yesterday's key is ignored",
			setup: func(d analyticsDeps) {
				d.mr.ZAdd(service.DailyKey(fixedNow.AddDate(0, 0, -1)), 3, "1")
				d.mock.ExpectQuery(todayQuery).
					WithArgs(10).
					WillReturnRows(rankingRows())
			},
			expected: []domain.FoodAnalytics{},
		},
		{
			name: "fallback query fails",
			setup: func(d analyticsDeps) {
				d.mock.ExpectQuery(todayQuery).
					WithArgs(10).
					WillReturnError(errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newAnalyticsService(t)
			testCase.setup(deps)

			result, err := deps.svc.TopToday(context.Background())

			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestAnalyticsService_TopAllTime(t *testing.T) {
	deps := newAnalyticsService(t)
	deps.mr.ZAdd(service.AllTimeKey, 12, "2")
	deps.mr.ZAdd(service.AllTimeKey, 40, "1")
	deps.mock.ExpectQuery(resolveQuery).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(foodRows().AddRow(2, "Suco", 1).AddRow(1, "Pizza", 1))

	result, err := deps.svc.TopAllTime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.FoodAnalytics{
		{FoodID: 1, FoodName: "Pizza", EstablishmentID: 1, Score: 40},
		{FoodID: 2, FoodName: "Suco", EstablishmentID: 1, Score: 12},
	}, result)
}

func TestAnalyticsService_TopAllTimeRedisDown(t *testing.T) {
	deps := newAnalyticsService(t)
	deps.mr.Close()
	deps.mock.ExpectQuery(allTimeQuery).
		WithArgs(10).
		WillReturnRows(rankingRows().AddRow(1, "Pizza", 1, 40))

	result, err := deps.svc.TopAllTime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.FoodAnalytics{
		{FoodID: 1, FoodName: "Pizza", EstablishmentID: 1, Score: 40},
	}, result)
}

func TestAnalyticsService_RatingDistribution(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(analyticsDeps)
		expected  map[string]int64
		expectErr bool
	}{
		{
			name: "from redis",
			setup: func(d analyticsDeps) {
				d.mr.HSet(service.RatingsKey, "5", "2", "0", "1", "9", "3")
			},
			expected: map[string]int64{"0": 1, "1": 0, "2": 0, "3": 0, "4": 0, "5": 2},
		},
		{
			name: "fallback to orders",
			setup: func(d analyticsDeps) {
				d.mock.ExpectQuery(ratingsQuery).
					WillReturnRows(sqlmock.NewRows([]string{"avaliacao", "count"}).AddRow(4, 3).AddRow(5, 1))
			},
			expected: map[string]int64{"0": 0, "1": 0, "2": 0, "3": 0, "4": 3, "5": 1},
		},
		{
			name: "fallback fails",
			setup: func(d analyticsDeps) {
				d.mock.ExpectQuery(ratingsQuery).WillReturnError(sql.ErrConnDone)
			},
			expectErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newAnalyticsService(t)
			testCase.setup(deps)

			result, err := deps.svc.RatingDistribution(context.Background())

			if testCase.expectErr {
				assert.ErrorIs(t, err, sql.ErrConnDone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}

func TestAnalyticsService_OrderCounters(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(analyticsDeps)
		expected domain.OrderCounters
	}{
		{
			name: "from redis",
			setup: func(d analyticsDeps) {
				d.mr.HSet(service.OrdersKey, "created", "5", "deleted", "2")
			},
			expected: domain.OrderCounters{Created: 5, Deleted: 2, Active: 3},
		},
		{
			name: "only created recorded",
			setup: func(d analyticsDeps) {
				d.mr.HSet(service.OrdersKey, "created", "4")
			},
			expected: domain.OrderCounters{Created: 4, Active: 4},
		},
		{
			name: "fallback counts stored orders",
			setup: func(d analyticsDeps) {
				d.mock.ExpectQuery(countOrderQuery).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
			},
			expected: domain.OrderCounters{Created: 7, Active: 7},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			deps := newAnalyticsService(t)
			testCase.setup(deps)

			result, err := deps.svc.OrderCounters(context.Background())

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result)
		})
	}
}
