package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"food-ordering/analytics-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

const (
	AllTimeKey = "analytics:alltime"
	RatingsKey = "analytics:ratings"
	OrdersKey  = "analytics:orders"

	topLimit = 10
)

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format("2006-01-02")
}

const topTodayQuery = `
	SELECT a.id_alimento, a.nome, a.id_estabelecimento, SUM(pa.quantidade) AS score
	FROM Alimento a
	JOIN Pedido_Alimento pa ON pa.id_alimento = a.id_alimento
	JOIN Pedido p ON p.id_pedido = pa.id_pedido
	WHERE p.data_hora::date = CURRENT_DATE
	GROUP BY a.id_alimento, a.nome, a.id_estabelecimento
	ORDER BY score DESC, a.id_alimento
	LIMIT $1`

const topAllTimeQuery = `
	SELECT a.id_alimento, a.nome, a.id_estabelecimento, SUM(pa.quantidade) AS score
	FROM Alimento a
	JOIN Pedido_Alimento pa ON pa.id_alimento = a.id_alimento
	GROUP BY a.id_alimento, a.nome, a.id_estabelecimento
	ORDER BY score DESC, a.id_alimento
	LIMIT $1`

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{db: db, rdb: rdb, now: time.Now}
}

// WithClock replaces the clock used to pick the daily key.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.FoodAnalytics, error) {
	return s.topFoods(ctx, DailyKey(s.now()), topTodayQuery)
}

func (s *AnalyticsService) TopAllTime(ctx context.Context) ([]domain.FoodAnalytics, error) {
	return s.topFoods(ctx, AllTimeKey, topAllTimeQuery)
}

// topFoods reads the ranking from Redis and falls back to aggregating the
// order history when the sorted set is missing or holds only removed foods.
func (s *AnalyticsService) topFoods(ctx context.Context, key, fallback string) ([]domain.FoodAnalytics, error) {
	ranking, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, topLimit-1).Result()
	if err != nil {
		log.Printf("Redis ranking %s unavailable: %v", key, err)
	}

	if len(ranking) > 0 {
		foods, err := s.resolveRanking(ctx, ranking)
		if err != nil {
			return nil, err
		}
		if len(foods) > 0 {
			return foods, nil
		}
	}

	return s.queryTop(ctx, fallback)
}

func (s *AnalyticsService) resolveRanking(ctx context.Context, ranking []redis.Z) ([]domain.FoodAnalytics, error) {
	ids := lo.FilterMap(ranking, func(z redis.Z, _ int) (int64, bool) {
		member, ok := z.Member.(string)
		if !ok {
			return 0, false
		}
		id, err := strconv.ParseInt(member, 10, 64)
		return id, err == nil
	})

	rows, err := s.db.QueryContext(ctx,
		`SELECT id_alimento, nome, id_estabelecimento FROM Alimento WHERE id_alimento = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("resolve food names: %w", err)
	}
	defer rows.Close()

	known := make(map[int]domain.FoodAnalytics, len(ids))
	for rows.Next() {
		var f domain.FoodAnalytics
		if err := rows.Scan(&f.FoodID, &f.FoodName, &f.EstablishmentID); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		known[f.FoodID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve food names: %w", err)
	}

	// keep the Redis order and drop foods that no longer exist
	foods := make([]domain.FoodAnalytics, 0, len(ranking))
	for _, z := range ranking {
		id, _ := strconv.Atoi(fmt.Sprint(z.Member))
		f, ok := known[id]
		if !ok {
			continue
		}
		f.Score = z.Score
		foods = append(foods, f)
	}
	return foods, nil
}

func (s *AnalyticsService) queryTop(ctx context.Context, query string) ([]domain.FoodAnalytics, error) {
	rows, err := s.db.QueryContext(ctx, query, topLimit)
	if err != nil {
		return nil, fmt.Errorf("query top foods: %w", err)
	}
	defer rows.Close()

	foods := []domain.FoodAnalytics{}
	for rows.Next() {
		var f domain.FoodAnalytics
		if err := rows.Scan(&f.FoodID, &f.FoodName, &f.EstablishmentID, &f.Score); err != nil {
			return nil, fmt.Errorf("scan top food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// RatingDistribution always reports every rating from 0 to 5.
func (s *AnalyticsService) RatingDistribution(ctx context.Context) (map[string]int64, error) {
	distribution := lo.SliceToMap(domain.RatingScale, func(r int) (string, int64) {
		return strconv.Itoa(r), 0
	})

	cached, err := s.rdb.HGetAll(ctx, RatingsKey).Result()
	if err != nil {
		log.Printf("Redis ratings unavailable: %v", err)
	}
	if len(cached) > 0 {
		for rating, raw := range cached {
			if _, ok := distribution[rating]; !ok {
				continue
			}
			count, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Printf("Skipping rating %s with count %q", rating, raw)
				continue
			}
			distribution[rating] = count
		}
		return distribution, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT avaliacao, COUNT(*)
		FROM Pedido
		WHERE avaliacao IS NOT NULL
		GROUP BY avaliacao
		ORDER BY avaliacao`)
	if err != nil {
		return nil, fmt.Errorf("query rating distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}

// OrderCounters falls back to counting stored orders; deletions cannot be
// recovered from the database, so Deleted stays zero on that path.
func (s *AnalyticsService) OrderCounters(ctx context.Context) (domain.OrderCounters, error) {
	var counters domain.OrderCounters

	cached, err := s.rdb.HGetAll(ctx, OrdersKey).Result()
	if err != nil {
		log.Printf("Redis order counters unavailable: %v", err)
	}
	if len(cached) > 0 {
		counters.Created, _ = strconv.ParseInt(cached["created"], 10, 64)
		counters.Deleted, _ = strconv.ParseInt(cached["deleted"], 10, 64)
		counters.Active = max(counters.Created-counters.Deleted, 0)
		return counters, nil
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Pedido`).Scan(&counters.Active); err != nil {
		return counters, fmt.Errorf("count orders: %w", err)
	}
	counters.Created = counters.Active
	return counters, nil
}
