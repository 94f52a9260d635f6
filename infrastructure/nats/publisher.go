package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"planora/domain/ports"
	"planora/pkg/logger"
)

// SubjectPrefix - activity events publish ไปที่ planora.activity.<resource>
const SubjectPrefix = "planora.activity."

// ActivityPublisher ส่ง activity events ขึ้น NATS แบบ best-effort
// (fire-and-forget - event หายได้ request หลักต้องไม่พัง)
type ActivityPublisher struct {
	conn *nats.Conn
}

func NewActivityPublisher(url string) (*ActivityPublisher, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS activity publisher initialized", "url", url)
	return &ActivityPublisher{conn: nc}, nil
}

func (p *ActivityPublisher) Publish(ctx context.Context, event ports.ActivityEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.WarnContext(ctx, "Failed to marshal activity event", "error", err)
		return
	}

	subject := SubjectPrefix + event.Resource
	if err := p.conn.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish activity event",
			"subject", subject,
			"action", event.Action,
			"error", err,
		)
	}
}

// Close ปิด NATS connection (เรียกตอน shutdown)
func (p *ActivityPublisher) Close() {
	p.conn.Close()
}

// NoopPublisher ใช้ตอนไม่ได้ config NATS
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event ports.ActivityEvent) {}
