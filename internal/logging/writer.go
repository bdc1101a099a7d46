package logging

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/mthorpe/grip/internal/pubsub"
	"github.com/mthorpe/grip/internal/resource"
)

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as grip events.
type writer struct {
	Messages []Message

	broker *pubsub.Broker[Message]
	serial uint
}

func (b *writer) Write(p []byte) (int, error) {
	msgs := make([]Message, 0, 1)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		msg := Message{Serial: b.serial}
		for d.ScanKeyval() {
			switch string(d.Key()) {
			case "time":
				parsed, err := time.Parse(time.RFC3339, string(d.Value()))
				if err != nil {
					return 0, fmt.Errorf("parsing time: %w", err)
				}
				msg.Time = parsed
			case "level":
				msg.Level = string(d.Value())
			case "msg":
				msg.Message = string(d.Value())
			default:
				msg.Attributes = append(msg.Attributes, Attr{
					Key:   string(d.Key()),
					Value: string(d.Value()),
				})
			}
		}
		msgs = append(msgs, msg)
		b.broker.Publish(resource.CreatedEvent, msg)
		b.serial++
	}
	if d.Err() != nil {
		return 0, d.Err()
	}
	b.Messages = append(b.Messages, msgs...)
	return len(p), nil
}
