package memory

import (
	"time"

	"lms-presentation-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps idle sessions for ttl. Every Get extends the lifetime.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		session := x.(*store.Session)
		r.cache.Set(sessionID, session, cache.DefaultExpiration)
		return session, true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// FindByUser lists the sessions a user currently holds
func (r *SessionRepository) FindByUser(userID string) []*store.Session {
	sessions := make([]*store.Session, 0)
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*store.Session); ok && s.UserID == userID {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
