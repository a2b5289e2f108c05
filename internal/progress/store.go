// Package progress owns the four persisted per-user aggregates: profile,
// completed-module set, usage statistics, and the generated-lesson cache.
// All mutations go through Store operations; views only ever see snapshots.
package progress

import (
	"sync"

	"wathiq/internal/models"
	"wathiq/internal/storage"
)

// Storage keys for the per-user aggregates
const (
	UserKey             = "wathiq_user"
	CompletedModulesKey = "wathiq_completed_modules"
	StatsKey            = "wathiq_stats"
	ModuleCacheKey      = "wathiq_module_cache"
)

// Seed values for usage statistics on first load. These are display
// placeholders; scan events do not feed the aggregate yet.
var defaultStats = models.UsageStatistics{
	TotalScans:        42,
	AverageTrustScore: 88,
}

// Snapshot is a read-only copy of all four aggregates for display
type Snapshot struct {
	Profile          models.UserProfile              `json:"profile"`
	CompletedModules []string                        `json:"completed_modules"`
	Stats            models.UsageStatistics          `json:"stats"`
	ModuleCache      map[string]models.ModuleContent `json:"-"`
}

// Store holds a single user's progress state. Aggregates are loaded once at
// construction and mirrored in memory; each is persisted independently
// whenever it changes. Persistence failures are absorbed by the adapter, so
// in-memory state always reflects the latest mutation even when durable
// writes fail.
type Store struct {
	mu      sync.Mutex
	adapter *storage.Adapter
	userID  int64

	profile   models.UserProfile
	completed []string // insertion order, the serialized form of the set
	member    map[string]bool
	stats     models.UsageStatistics
	cache     map[string]models.ModuleContent
}

// NewStore loads a user's aggregates from durable storage, falling back to
// defaults derived from the account when nothing is persisted yet.
func NewStore(adapter *storage.Adapter, user *models.User) *Store {
	defaultProfile := models.UserProfile{
		FullName:          user.Name,
		Email:             user.Email,
		Level:             1,
		TotalPoints:       0,
		AgeGroup:          models.AgeGroupAdults,
		PreferredLanguage: "en",
	}

	s := &Store{
		adapter:   adapter,
		userID:    user.ID,
		profile:   storage.Read(adapter, user.ID, UserKey, defaultProfile),
		completed: storage.Read(adapter, user.ID, CompletedModulesKey, []string{}),
		stats:     storage.Read(adapter, user.ID, StatsKey, defaultStats),
		cache:     storage.Read(adapter, user.ID, ModuleCacheKey, map[string]models.ModuleContent{}),
	}

	s.member = make(map[string]bool, len(s.completed))
	for _, id := range s.completed {
		s.member[id] = true
	}

	return s
}

// AwardPoints marks a module complete and adds its point reward to the
// profile. It is idempotent per module id: if the module is already in the
// completed set nothing changes and no write is issued. The profile level
// is recomputed from total points after every award.
func (s *Store) AwardPoints(moduleID string, points int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.member[moduleID] {
		return false
	}
	if points < 0 {
		points = 0
	}

	s.member[moduleID] = true
	s.completed = append(s.completed, moduleID)

	s.profile.TotalPoints += points
	s.profile.Level = models.LevelForPoints(s.profile.TotalPoints)

	s.adapter.Write(s.userID, CompletedModulesKey, s.completed)
	s.adapter.Write(s.userID, UserKey, s.profile)
	return true
}

// IsCompleted reports whether a module is in the completed set
func (s *Store) IsCompleted(moduleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member[moduleID]
}

// CacheModuleContent stores generated lesson content for a module and
// persists the updated cache. Entries are never evicted; callers are
// expected to check CachedContent first so generation happens at most once
// per module id.
func (s *Store) CacheModuleContent(moduleID string, content models.ModuleContent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[moduleID] = content
	s.adapter.Write(s.userID, ModuleCacheKey, s.cache)
}

// CachedContent returns the cached lesson content for a module, if any
func (s *Store) CachedContent(moduleID string) (models.ModuleContent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.cache[moduleID]
	return content, ok
}

// UpdateAvatar replaces the profile's avatar image and persists the profile
func (s *Store) UpdateAvatar(encodedImage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.AvatarBase64 = encodedImage
	s.adapter.Write(s.userID, UserKey, s.profile)
}

// Snapshot returns a copy of the current in-memory aggregates
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := make([]string, len(s.completed))
	copy(completed, s.completed)

	cache := make(map[string]models.ModuleContent, len(s.cache))
	for id, content := range s.cache {
		cache[id] = content
	}

	profile := s.profile
	if len(s.profile.Badges) > 0 {
		profile.Badges = append([]string(nil), s.profile.Badges...)
	}

	return Snapshot{
		Profile:          profile,
		CompletedModules: completed,
		Stats:            s.stats,
		ModuleCache:      cache,
	}
}
