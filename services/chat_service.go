package services

import (
	"context"
	"errors"
	"sync"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
)

// ErrRequestPending means this session already has an utterance in flight.
// One outstanding request per session keeps the reply order trivial.
var ErrRequestPending = errors.New("request pending")

const maxRecommendations = 3

type ChatService struct {
	Repo        *repository.ChatRepository
	CatalogRepo *repository.CatalogRepository
	Catalog     *CatalogService
	Recommender Recommender
	Hub         EventPusher

	mu      sync.Mutex
	pending map[uint]bool
}

func NewChatService(repo *repository.ChatRepository, catr *repository.CatalogRepository, catalog *CatalogService, rec Recommender, hub EventPusher) *ChatService {
	return &ChatService{
		Repo:        repo,
		CatalogRepo: catr,
		Catalog:     catalog,
		Recommender: rec,
		Hub:         hub,
		pending:     make(map[uint]bool),
	}
}

func (s *ChatService) History(userID uint) ([]entity.Message, error) {
	return s.Repo.FindMessagesByUser(userID)
}

// Ask appends the user turn, asks the gateway, and appends the assistant
// turn. Recommended ids that do not resolve to a catalogue product are
// silently dropped before the turn is stored.
func (s *ChatService) Ask(ctx context.Context, userID uint, text string) (*entity.Message, error) {
	if err := s.acquire(userID); err != nil {
		return nil, err
	}
	defer s.release(userID)

	userTurn := &entity.Message{
		Role:   entity.RoleUser,
		Body:   text,
		UserID: userID,
	}
	if err := s.Repo.CreateMessage(userTurn); err != nil {
		return nil, err
	}

	menu, err := s.Catalog.MenuSummary()
	if err != nil {
		return nil, err
	}

	rec := s.Recommender.Recommend(ctx, text, menu)

	ids, err := s.CatalogRepo.ExistingProductIDs(rec.RecommendedItemIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) > maxRecommendations {
		ids = ids[:maxRecommendations]
	}

	reply := &entity.Message{
		Role:               entity.RoleAssistant,
		Body:               rec.Message,
		RecommendedItemIDs: ids,
		UserID:             userID,
	}
	if err := s.Repo.CreateMessage(reply); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.PushToUser(userID, assistantEvent{Type: "assistant_message", Message: reply})
	}
	return reply, nil
}

type assistantEvent struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message"`
}

func (s *ChatService) acquire(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[userID] {
		return ErrRequestPending
	}
	s.pending[userID] = true
	return nil
}

func (s *ChatService) release(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userID)
}
