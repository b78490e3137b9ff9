package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"raahi/internal/models/agent_models"
	"raahi/pkg/sessionstore"
)

// SessionTimeout is how long a conversation may sit idle before its context
// is discarded and a fresh one started.
const SessionTimeout = 30 * time.Minute

// A follow-up message containing any of these is treated as refining the
// previous query rather than starting a new one.
var refinementKeywords = []string{
	"cheaper", "expensive", "longer", "shorter", "under", "over",
	"more", "less", "different", "another", "alternative",
	"sasta", "mahanga", "lambi", "choti", "aur",
}

type SessionServiceInterface interface {
	GetOrCreate(ctx context.Context, conversationID string) *agent_models.ConversationContext
	Update(ctx context.Context, conversationID, rawQuery string, parsed agent_models.ParsedQuery) *agent_models.ConversationContext
	IsRefinement(rawQuery string, conversation *agent_models.ConversationContext) bool
	Merge(conversation *agent_models.ConversationContext, parsed agent_models.ParsedQuery) agent_models.ParsedQuery
}

// SessionService wraps a conversation store with the expiry, history, and
// merge rules. Concurrent messages on one conversation id race
// last-writer-wins; chat traffic is serial per user in practice.
type SessionService struct {
	store sessionstore.Store
}

func NewSessionService(store sessionstore.Store) SessionServiceInterface {
	return &SessionService{store: store}
}

// GetOrCreate returns the live context for a conversation. A missing entry,
// a store failure, or an entry idle past SessionTimeout all yield a fresh
// empty context — expiry is a hard reset, never an extension.
func (s *SessionService) GetOrCreate(ctx context.Context, conversationID string) *agent_models.ConversationContext {
	conversation, ok, err := s.store.Get(ctx, conversationID)
	if err != nil {
		log.Warn().Err(err).Str("conversation_id", conversationID).Msg("session store read failed, starting fresh")
	}
	if err == nil && ok && !conversation.ExpiredAt(time.Now(), SessionTimeout) {
		return conversation
	}
	if ok {
		log.Info().Str("conversation_id", conversationID).Msg("session expired")
	}

	fresh := agent_models.NewConversationContext(conversationID)
	if err := s.store.Put(ctx, conversationID, fresh); err != nil {
		log.Warn().Err(err).Str("conversation_id", conversationID).Msg("session store write failed")
	}
	return fresh
}

// Update records the raw query, the latest parse, and the accumulated
// preferences, then refreshes the idle timestamp. Called on every message
// whether or not it was a refinement.
func (s *SessionService) Update(ctx context.Context, conversationID, rawQuery string, parsed agent_models.ParsedQuery) *agent_models.ConversationContext {
	conversation := s.GetOrCreate(ctx, conversationID)

	conversation.Queries = append(conversation.Queries, rawQuery)
	if len(conversation.Queries) > agent_models.MaxQueryHistory {
		conversation.Queries = conversation.Queries[len(conversation.Queries)-agent_models.MaxQueryHistory:]
	}

	parsedCopy := parsed
	conversation.LastParsed = &parsedCopy
	conversation.Preferences = accumulatePreferences(conversation.Preferences, parsed)
	conversation.Timestamp = time.Now()

	if err := s.store.Put(ctx, conversationID, conversation); err != nil {
		log.Warn().Err(err).Str("conversation_id", conversationID).Msg("session store write failed")
	}
	return conversation
}

// IsRefinement reports whether the raw query refines the conversation's
// previous one. A conversation with no history can't be refined.
func (s *SessionService) IsRefinement(rawQuery string, conversation *agent_models.ConversationContext) bool {
	if conversation == nil || len(conversation.Queries) == 0 {
		return false
	}
	lower := strings.ToLower(rawQuery)
	for _, keyword := range refinementKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Merge backfills fields the new parse left unset from the prior turn:
// destination and duration from the last parse, budget and travel type from
// accumulated preferences. Fields present in the new parse always win.
func (s *SessionService) Merge(conversation *agent_models.ConversationContext, parsed agent_models.ParsedQuery) agent_models.ParsedQuery {
	if conversation == nil || conversation.LastParsed == nil {
		return parsed
	}

	merged := parsed
	if merged.Destination == "" && conversation.LastParsed.Destination != "" {
		merged.Destination = conversation.LastParsed.Destination
	}
	if merged.Budget == 0 && conversation.Preferences.Budget != 0 {
		merged.Budget = conversation.Preferences.Budget
	}
	if merged.Duration == 0 && conversation.LastParsed.Duration != 0 {
		merged.Duration = conversation.LastParsed.Duration
	}
	if merged.TravelType == "" && conversation.Preferences.TravelType != "" {
		merged.TravelType = conversation.Preferences.TravelType
	}
	return merged
}

// accumulatePreferences folds one parse into the running preference set as a
// pure old × new → new step.
func accumulatePreferences(prefs agent_models.Preferences, parsed agent_models.ParsedQuery) agent_models.Preferences {
	next := prefs
	next.Destinations = append([]string(nil), prefs.Destinations...)

	if parsed.Budget != 0 {
		next.Budget = parsed.Budget
	}
	if parsed.Destination != "" && !containsString(next.Destinations, parsed.Destination) {
		next.Destinations = append(next.Destinations, parsed.Destination)
	}
	if parsed.TravelType != "" {
		next.TravelType = parsed.TravelType
	}
	return next
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
