// ABOUTME: Charm KV persistence for notable fact sets
// ABOUTME: Writes each profile's capped array wholesale, cloud synced
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
	"github.com/harper/notable-facts/internal/models"
)

// FactSetPrefix namespaces stored fact arrays by profile
const FactSetPrefix = "facts:"

// DefaultCharmHost is the charm cloud endpoint used when CHARM_HOST is
// unset; config and storage share this single default
const DefaultCharmHost = "cloud.charm.sh"

// Config holds charm store configuration
type Config struct {
	Host     string
	DBName   string
	AutoSync bool
}

// DefaultConfig returns default configuration for the charm store
func DefaultConfig() *Config {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = DefaultCharmHost
	}
	return &Config{
		Host:     host,
		DBName:   "notable-facts",
		AutoSync: true,
	}
}

// factKV is the subset of the charm KV surface the store uses
type factKV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
	Sync() error
	Close() error
}

// Store persists fact sets in charm KV. Each profile's set is one JSON
// array under its own key, written wholesale on every save; the store
// never performs partial writes. The mutex gives single-writer discipline
// for read-modify-write cycles within this process.
type Store struct {
	kv     factKV
	config *Config
	mu     sync.Mutex
}

// NewStore opens the charm KV database for fact storage
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Charm reads the host from the environment when opening
	os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	s := &Store{
		kv:     db,
		config: cfg,
	}

	// Pull remote data on startup
	if cfg.AutoSync {
		_ = db.Sync()
	}

	return s, nil
}

// Close closes the KV database
func (s *Store) Close() error {
	if s.kv != nil {
		err := s.kv.Close()
		s.kv = nil
		return err
	}
	return nil
}

// FactSetKey generates the storage key for a profile's fact set
func FactSetKey(profile string) string {
	return FactSetPrefix + profile
}

// LoadFacts reads the stored fact set for a profile. A profile with no
// stored set yet yields an empty set, not an error. Any other read failure
// surfaces to the caller: a failed read must never look like an empty set,
// or the next wholesale save would erase the stored facts.
func (s *Store) LoadFacts(profile string) ([]models.Fact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get([]byte(FactSetKey(profile)))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return []models.Fact{}, nil
		}
		return nil, fmt.Errorf("failed to load facts for %s: %w", profile, err)
	}
	if len(data) == 0 {
		return []models.Fact{}, nil
	}

	var facts []models.Fact
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("failed to decode stored facts for %s: %w", profile, err)
	}
	return facts, nil
}

// SaveFacts replaces the stored fact set for a profile. The array is
// truncated from the front if a caller hands in more than the cap.
func (s *Store) SaveFacts(profile string, facts []models.Fact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(facts) > models.MaxFacts {
		facts = facts[len(facts)-models.MaxFacts:]
	}

	data, err := json.Marshal(facts)
	if err != nil {
		return fmt.Errorf("failed to marshal facts: %w", err)
	}

	if err := s.kv.Set([]byte(FactSetKey(profile)), data); err != nil {
		return fmt.Errorf("failed to save facts for %s: %w", profile, err)
	}
	s.syncIfEnabled()
	return nil
}

// DeleteFacts removes a profile's stored fact set entirely
func (s *Store) DeleteFacts(profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete([]byte(FactSetKey(profile))); err != nil {
		return fmt.Errorf("failed to delete facts for %s: %w", profile, err)
	}
	s.syncIfEnabled()
	return nil
}

// ListProfiles returns every profile with a stored fact set
func (s *Store) ListProfiles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var profiles []string
	for _, key := range keys {
		if k := string(key); strings.HasPrefix(k, FactSetPrefix) {
			profiles = append(profiles, strings.TrimPrefix(k, FactSetPrefix))
		}
	}
	return profiles, nil
}

// Sync manually triggers a sync with the cloud
func (s *Store) Sync() error {
	return s.kv.Sync()
}

// ID returns the charm user id backing this store
func (s *Store) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// syncIfEnabled syncs to cloud after writes
func (s *Store) syncIfEnabled() {
	if s.config.AutoSync {
		_ = s.kv.Sync()
	}
}
