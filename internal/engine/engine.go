package engine

import (
	"github.com/AkshatKumar38/Study-Hub/internal/database"
	"github.com/AkshatKumar38/Study-Hub/internal/engine/actors"
	"github.com/AkshatKumar38/Study-Hub/internal/utils"

	"github.com/asynkron/protoactor-go/actor"
)

// Engine spawns and coordinates the two store actors. The stores never talk
// to each other; the only coupling is that callers resolve the comment
// author from the session before messaging the feed.
type Engine struct {
	sessionActor *actor.PID
	feedActor    *actor.PID
}

func NewEngine(
	system *actor.ActorSystem,
	metrics *utils.MetricsCollector,
	store database.LocalStore,
	sessionKey string,
	publisher actors.EventPublisher,
) *Engine {
	context := system.Root

	sessionProps := actor.PropsFromProducer(func() actor.Actor {
		return actors.NewSessionActor(store, sessionKey, metrics)
	})
	sessionPID := context.Spawn(sessionProps)

	feedProps := actor.PropsFromProducer(func() actor.Actor {
		return actors.NewFeedActor(metrics, publisher)
	})
	feedPID := context.Spawn(feedProps)

	return &Engine{
		sessionActor: sessionPID,
		feedActor:    feedPID,
	}
}

// GetSessionActor returns the PID of the session actor
func (e *Engine) GetSessionActor() *actor.PID {
	return e.sessionActor
}

// GetFeedActor returns the PID of the feed actor
func (e *Engine) GetFeedActor() *actor.PID {
	return e.feedActor
}
