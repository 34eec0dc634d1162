package notification

import (
	"context"
	"encoding/json"

	"github.com/minseo-dev/event-marketing-backend/config"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

const consumerGroup = "notification-fanout"

// StartKafkaConsumer runs a blocking loop that turns activity messages into
// in-app notifications. Call it in a goroutine; it exits when ctx is done.
func StartKafkaConsumer(ctx context.Context, cfg *config.Config, svc *Service) {
	reader := utils.NewActivityReader(cfg, consumerGroup)
	defer reader.Close()

	utils.Logger.Info().Str("group", consumerGroup).Msg("notification consumer started")

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				utils.Logger.Info().Msg("notification consumer stopped")
				return
			}
			utils.LogError(err, nil, "failed to read activity message")
			continue
		}

		var act event.Activity
		if err := json.Unmarshal(msg.Value, &act); err != nil {
			utils.LogError(err, map[string]interface{}{"offset": msg.Offset}, "malformed activity message, skipping")
			continue
		}

		if err := svc.HandleActivity(act); err != nil {
			utils.LogError(err, map[string]interface{}{"event_id": act.EventID}, "failed to fan out activity")
		}
	}
}
