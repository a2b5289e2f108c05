package service

import (
	"context"
	"errors"
	"fmt"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
	"wathiq/internal/progress"
)

var (
	ErrModuleNotFound = errors.New("learning module not found")
	ErrModuleLocked   = errors.New("learning module is locked")
)

// learningPath is the fixed module catalog, in path order. Modules without
// a point reward (games and challenges played inline) award nothing on
// completion but still unlock the next node.
var learningPath = []models.LearningModule{
	{ID: "k1", Title: "What is a Password?", Description: "Learn why passwords are like secret codes to protect your treasures!", ModuleType: models.ModuleTypeLesson, AgeGroup: models.AgeGroupKids, PointsReward: 25},
	{ID: "k2", Title: "Password Builder Game", Description: "Challenge: Build the strongest password castle to fend off dragons!", ModuleType: models.ModuleTypeGame, AgeGroup: models.AgeGroupKids},
	{ID: "t1", Title: "Understanding Phishing", Description: "Learn to spot fake messages trying to steal your information.", ModuleType: models.ModuleTypeLesson, AgeGroup: models.AgeGroupTeens, PointsReward: 75},
	{ID: "t3", Title: "Phishing Hunter", Description: "Challenge: Hunt down suspicious emails and protect your friends!", ModuleType: models.ModuleTypeGame, AgeGroup: models.AgeGroupTeens},
	{ID: "a1", Title: "Introduction to Deepfakes", Description: "Learn the basics of deepfake technology and its implications.", ModuleType: models.ModuleTypeLesson, AgeGroup: models.AgeGroupAdults, PointsReward: 150},
	{ID: "a3", Title: "Deepfake Challenge", Description: "Can you identify the manipulated media? Test your skills!", ModuleType: models.ModuleTypeChallenge, AgeGroup: models.AgeGroupAdults},
	{ID: "a2", Title: "Advanced Threat Detection", Description: "A deep-dive into identifying sophisticated cyber attacks.", ModuleType: models.ModuleTypeLesson, AgeGroup: models.AgeGroupAdults, PointsReward: 200},
}

// LearningService owns the learning path: the module catalog, lesson
// generation, and completion rewards.
type LearningService struct {
	gateway  gateway.Gateway
	progress *progress.Manager
}

// NewLearningService creates a learning service
func NewLearningService(gw gateway.Gateway, progressManager *progress.Manager) *LearningService {
	return &LearningService{
		gateway:  gw,
		progress: progressManager,
	}
}

// Modules returns the learning path for a user, enriched with completion
// state, cached lesson content, and lock state. Modules past the first
// incomplete node are locked; the path must be walked in order.
func (s *LearningService) Modules(user *models.User) []models.LearningModule {
	store := s.progress.StoreFor(user)

	modules := make([]models.LearningModule, len(learningPath))
	copy(modules, learningPath)

	firstIncomplete := -1
	for i := range modules {
		if store.IsCompleted(modules[i].ID) {
			modules[i].Completed = true
			continue
		}
		if firstIncomplete == -1 {
			firstIncomplete = i
		}
	}

	for i := range modules {
		if content, ok := store.CachedContent(modules[i].ID); ok {
			modules[i].Content = content.Content
			modules[i].Quiz = content.Quiz
		}
		if firstIncomplete != -1 && i > firstIncomplete {
			modules[i].Locked = true
		}
	}

	return modules
}

// StartModule returns the lesson content for a module, generating it on
// first use. The cache check precedes generation, so a module's content is
// generated at most once per durable store lifetime; a generated result is
// cached before it is returned.
func (s *LearningService) StartModule(ctx context.Context, user *models.User, moduleID string) (*models.ModuleContent, error) {
	module := moduleByID(moduleID)
	if module == nil {
		return nil, ErrModuleNotFound
	}
	if s.isLocked(user, moduleID) {
		return nil, ErrModuleLocked
	}

	store := s.progress.StoreFor(user)
	if content, ok := store.CachedContent(moduleID); ok {
		return &content, nil
	}

	content, err := s.gateway.GenerateLearningContent(ctx, module.Title, module.Description, module.AgeGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to start module %s: %w", moduleID, err)
	}

	store.CacheModuleContent(moduleID, *content)
	return content, nil
}

// CompleteModule marks a module complete and awards its points. Repeated
// completions are no-ops; the returned flag reports whether points were
// awarded by this call.
func (s *LearningService) CompleteModule(user *models.User, moduleID string) (bool, error) {
	module := moduleByID(moduleID)
	if module == nil {
		return false, ErrModuleNotFound
	}
	if s.isLocked(user, moduleID) {
		return false, ErrModuleLocked
	}

	store := s.progress.StoreFor(user)
	return store.AwardPoints(moduleID, module.PointsReward), nil
}

func (s *LearningService) isLocked(user *models.User, moduleID string) bool {
	for _, m := range s.Modules(user) {
		if m.ID == moduleID {
			return m.Locked
		}
	}
	return false
}

func moduleByID(id string) *models.LearningModule {
	for i := range learningPath {
		if learningPath[i].ID == id {
			return &learningPath[i]
		}
	}
	return nil
}
