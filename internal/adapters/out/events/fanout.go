// Package events combines several event publishers into one.
package events

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/ports"
)

// FanOut publishes every event to all of its publishers, in order. A failing
// publisher does not stop the others; their errors are joined.
type FanOut struct {
	publishers []ports.EventPublisher
}

func NewFanOut(publishers ...ports.EventPublisher) *FanOut {
	return &FanOut{publishers: publishers}
}

func (f *FanOut) Publish(ctx context.Context, channel string, e event.Event) error {
	var errList []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, channel, e); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
