package command

import (
	"fmt"

	"github.com/dekarrin/textquest/internal/game"
	"github.com/dekarrin/textquest/internal/tqerrors"
	"go.uber.org/zap"
)

// Registry maps command words to the Handlers that answer to them.
//
// If more than one Handler answers to the same word, the one that was
// registered first wins. Later registrations of that word are ignored.
type Registry struct {
	handlers []Handler
	byWord   map[string]Handler
	log      *zap.Logger
}

// NewRegistry creates a Registry and registers the given handlers in order.
// If log is nil, nothing is logged.
func NewRegistry(log *zap.Logger, handlers ...Handler) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Registry{
		byWord: make(map[string]Handler),
		log:    log,
	}

	for _, h := range handlers {
		r.Register(h)
	}

	return r
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry(log *zap.Logger) *Registry {
	r := NewRegistry(log, Builtins()...)
	r.Register(&Help{Registry: r})
	return r
}

// Register adds h to the Registry. Any of its words that are already taken
// stay with the Handler that took them first.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)

	for _, word := range h.Words() {
		key := foldWord(word)
		if existing, taken := r.byWord[key]; taken {
			r.log.Debug("command word already registered; keeping first",
				zap.String("word", word),
				zap.String("kept", fmt.Sprintf("%T", existing)),
				zap.String("ignored", fmt.Sprintf("%T", h)),
			)
			continue
		}
		r.byWord[key] = h
	}
}

// Resolve returns the Handler for the given command word.
func (r *Registry) Resolve(word string) (Handler, bool) {
	h, ok := r.byWord[foldWord(word)]
	return h, ok
}

// Handlers returns every registered Handler in the order it was registered.
func (r *Registry) Handlers() []Handler {
	hs := make([]Handler, len(r.handlers))
	copy(hs, r.handlers)
	return hs
}

// Execute tokenizes line, resolves its command word and runs the Handler. A
// rejection is returned as-is without being shown to the player; see Dispatch
// for that.
func (r *Registry) Execute(line string, w *game.World) error {
	word, params := Tokenize(line)
	if word == "" {
		return tqerrors.Reject(tqerrors.EmptyInput, "Please type in a command", "got blank input")
	}

	h, ok := r.Resolve(word)
	if !ok {
		return tqerrors.Rejectf(tqerrors.UnknownCommandWord, "I don't know the command '%s'", word)
	}

	r.log.Debug("executing command",
		zap.String("word", word),
		zap.Strings("params", params),
		zap.String("handler", fmt.Sprintf("%T", h)),
	)

	return h.Execute(word, params, w)
}

// Dispatch runs line like Execute, but shows any rejection to the player
// instead of returning it. The returned error is non-nil only if something
// went wrong with the engine itself.
func (r *Registry) Dispatch(line string, w *game.World) error {
	err := r.Execute(line, w)
	if err == nil {
		return nil
	}

	if !tqerrors.IsRejection(err) {
		return err
	}

	r.log.Debug("command rejected",
		zap.Stringer("kind", tqerrors.KindOf(err)),
		zap.Error(err),
	)

	return w.Say(tqerrors.GameMessage(err))
}
