// Package publisher emits report lifecycle events to Redis streams so
// downstream consumers learn about fresh reports without polling the
// archive.
package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/apollo/internal/report"
)

// StreamName for report generation events.
const StreamName = "reports.allowed_by_position"

// ReportPublisher publishes report events to a Redis stream.
type ReportPublisher struct {
	client *redis.Client
}

// NewReportPublisher connects and pings Redis.
func NewReportPublisher(redisURL string) (*ReportPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ReportPublisher{client: client}, nil
}

// Close closes the Redis connection.
func (rp *ReportPublisher) Close() error {
	return rp.client.Close()
}

// PublishReportGenerated announces a completed run and where its workbook
// landed.
func (rp *ReportPublisher) PublishReportGenerated(ctx context.Context, meta report.Meta, workbookPath string) error {
	event := map[string]interface{}{
		"season":        meta.Season,
		"season_type":   meta.SeasonType,
		"last_n":        meta.LastN,
		"generated_at":  meta.GeneratedAt.Format(time.RFC3339),
		"workbook_path": workbookPath,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
