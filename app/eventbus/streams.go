package eventbus

import "context"

// Stream names and their subject spaces. One stream per command area plus
// the announcement stream consumed by the gateway.
var streams = map[string][]string{
	"GUILD":     {"guild.>"},
	"TEAM":      {"team.>"},
	"FREEAGENT": {"freeagent.>"},
	"ROSTER":    {"roster.>"},
	"TRANSFER":  {"transfer.>"},
	"ANNOUNCE":  {"announce.>"},
}

// EnsureAllStreams creates every backend stream on the bus.
func EnsureAllStreams(ctx context.Context, bus EventBus) error {
	for name, subjects := range streams {
		if err := bus.EnsureStream(ctx, name, subjects); err != nil {
			return err
		}
	}
	return nil
}
