package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
	"wathiq/internal/progress"
	"wathiq/internal/storage"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(userID int64, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memoryKV) Put(userID int64, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// countingGateway counts generation calls and returns canned content
type countingGateway struct {
	gateway.Unconfigured
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{} // when set, GenerateLearningContent blocks on it
}

func (g *countingGateway) GenerateLearningContent(ctx context.Context, title, description string, ageGroup models.AgeGroup) (*models.ModuleContent, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return nil, g.err
	}
	return &models.ModuleContent{
		Content: "lesson for " + title,
		Quiz: []models.QuizQuestion{
			{Question: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", Explanation: "because"},
		},
	}, nil
}

func (g *countingGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func newLearningFixture(gw gateway.Gateway) (*LearningService, *models.User) {
	manager := progress.NewManager(storage.NewAdapter(newMemoryKV()))
	return NewLearningService(gw, manager), &models.User{ID: 1, Email: "sara@example.com", Name: "Sara"}
}

func TestStartModuleGeneratesOnce(t *testing.T) {
	gw := &countingGateway{}
	svc, user := newLearningFixture(gw)

	first, err := svc.StartModule(context.Background(), user, "k1")
	if err != nil {
		t.Fatalf("first start: %v", err)
	}

	second, err := svc.StartModule(context.Background(), user, "k1")
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	if gw.callCount() != 1 {
		t.Errorf("generation calls = %d, want 1 (cache hit must skip generation)", gw.callCount())
	}
	if first.Content != second.Content {
		t.Error("cached content differs from generated content")
	}
}

func TestStartModuleFailedGenerationIsNotCached(t *testing.T) {
	gw := &countingGateway{err: errors.New("model unavailable")}
	svc, user := newLearningFixture(gw)

	if _, err := svc.StartModule(context.Background(), user, "k1"); err == nil {
		t.Fatal("expected generation error")
	}

	// A later attempt may generate again; the failure must not be cached
	gw.err = nil
	content, err := svc.StartModule(context.Background(), user, "k1")
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if content.Content == "" {
		t.Error("retry returned empty content")
	}
	if gw.callCount() != 2 {
		t.Errorf("generation calls = %d, want 2", gw.callCount())
	}
}

func TestStartModuleUnknownAndLocked(t *testing.T) {
	svc, user := newLearningFixture(&countingGateway{})

	if _, err := svc.StartModule(context.Background(), user, "zz"); !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("unknown module error = %v, want ErrModuleNotFound", err)
	}

	// t1 is third on the path; nothing is complete, so it is locked
	if _, err := svc.StartModule(context.Background(), user, "t1"); !errors.Is(err, ErrModuleLocked) {
		t.Errorf("locked module error = %v, want ErrModuleLocked", err)
	}
}

func TestModulesLockOrder(t *testing.T) {
	svc, user := newLearningFixture(&countingGateway{})

	modules := svc.Modules(user)
	if len(modules) != 7 {
		t.Fatalf("modules = %d, want 7", len(modules))
	}
	if modules[0].Locked {
		t.Error("first module must start unlocked")
	}
	for i := 1; i < len(modules); i++ {
		if !modules[i].Locked {
			t.Errorf("module %s unlocked before predecessors completed", modules[i].ID)
		}
	}

	// Completing the first module unlocks exactly the next one
	if _, err := svc.CompleteModule(user, "k1"); err != nil {
		t.Fatalf("complete k1: %v", err)
	}
	modules = svc.Modules(user)
	if !modules[0].Completed {
		t.Error("k1 not marked completed")
	}
	if modules[1].Locked {
		t.Error("k2 still locked after completing k1")
	}
	if !modules[2].Locked {
		t.Error("t1 unlocked too early")
	}
}

func TestCompleteModuleAwardsOnce(t *testing.T) {
	svc, user := newLearningFixture(&countingGateway{})

	awarded, err := svc.CompleteModule(user, "k1")
	if err != nil || !awarded {
		t.Fatalf("first completion: awarded=%v err=%v", awarded, err)
	}

	awarded, err = svc.CompleteModule(user, "k1")
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}
	if awarded {
		t.Error("repeat completion awarded points again")
	}
}
