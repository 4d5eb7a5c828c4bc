package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/rs/zerolog/log"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

// SubscribeContainerStarts streams the names of containers as they start.
// The stream is lazy, infinite and non-restartable: the name channel closes
// only when the underlying event transport ends, and the error channel then
// carries the terminal cause exactly once.
func (r *Runtime) SubscribeContainerStarts(ctx context.Context) (<-chan string, <-chan error) {
	names := make(chan string)
	errs := make(chan error, 1)

	eventFilters := filters.NewArgs()
	eventFilters.Add("type", string(events.ContainerEventType))
	eventFilters.Add("event", "start")

	messages, streamErrs := r.client.Events(ctx, events.ListOptions{Filters: eventFilters})

	go func() {
		defer close(names)
		for {
			select {
			case msg, ok := <-messages:
				if !ok {
					errs <- fmt.Errorf("%w: event stream closed", runtime.ErrUnavailable)
					return
				}
				name := msg.Actor.Attributes["name"]
				if name == "" {
					log.Debug().Str("id", msg.Actor.ID).Msg("Start event without container name attribute")
					continue
				}
				select {
				case names <- name:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			case err := <-streamErrs:
				if err == nil {
					continue
				}
				errs <- classify(err, "event stream failed")
				return
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return names, errs
}
