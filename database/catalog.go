package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collectionStores = "stores"
	storeID          = "global"

	catalogCacheKey = "catalog:" + storeID
	catalogCacheTTL = 5 * time.Minute
)

// ErrNoCatalog is returned when the global store document does not exist.
var ErrNoCatalog = errors.New("store catalog not found")

// Catalog serves the global store document. Reads go through a Redis cache
// with a short TTL since the catalog is read-mostly and populated
// out-of-band; cache failures degrade to Mongo with a warning.
type Catalog struct {
	col   *mongo.Collection
	cache *redis.Client
	log   zerolog.Logger
}

func NewCatalog(db *mongo.Database, cache *redis.Client, log zerolog.Logger) *Catalog {
	return &Catalog{col: db.Collection(collectionStores), cache: cache, log: log}
}

// Get returns the global store catalog.
func (c *Catalog) Get(ctx context.Context) (*Store, error) {
	if raw, err := c.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
		var s Store
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("catalog cache read failed, falling back to mongo")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s Store
	err := c.col.FindOne(ctx, bson.M{"_id": storeID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("find store catalog: %w", err)
	}

	if raw, err := json.Marshal(&s); err == nil {
		if err := c.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return &s, nil
}

// seedCategory and seedItem mirror the catalog document with validation tags
// for the out-of-band JSON seed file.
type seedFile struct {
	Categories []seedCategory `json:"categories" validate:"required,min=1,dive"`
}

type seedCategory struct {
	ID          string     `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Emote       string     `json:"emote" validate:"required"`
	Items       []seedItem `json:"items" validate:"required,min=1,dive"`
}

type seedItem struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=ammo shield food"`
	Price int    `json:"price" validate:"required,gt=0"`
	Emote string `json:"emote" validate:"required"`

	Accuracy   float64 `json:"accuracy,omitempty"`
	Damage     float64 `json:"damage,omitempty"`
	Rounds     int     `json:"rounds,omitempty"`
	Health     int     `json:"health,omitempty"`
	Strength   float64 `json:"strength,omitempty"`
	HealthGain int     `json:"healthGain,omitempty"`
	Buff       string  `json:"buff,omitempty"`
}

// ParseSeed decodes and validates a catalog seed document.
func ParseSeed(raw []byte) (*Store, error) {
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode store seed: %w", err)
	}
	if err := validator.New().Struct(&seed); err != nil {
		return nil, fmt.Errorf("validate store seed: %w", err)
	}

	store := &Store{ID: storeID}
	for _, sc := range seed.Categories {
		cat := StoreCategory{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
			Emote:       sc.Emote,
		}
		for _, si := range sc.Items {
			cat.Items = append(cat.Items, StoreItem{
				ID:         si.ID,
				Name:       si.Name,
				Type:       si.Type,
				Price:      si.Price,
				Emote:      si.Emote,
				Accuracy:   si.Accuracy,
				Damage:     si.Damage,
				Rounds:     si.Rounds,
				Health:     si.Health,
				Strength:   si.Strength,
				HealthGain: si.HealthGain,
				Buff:       si.Buff,
			})
		}
		store.Categories = append(store.Categories, cat)
	}
	return store, nil
}

// SeedIfEmpty loads the seed file into the stores collection when no catalog
// document exists yet. A missing seed file is not an error: the store simply
// stays closed until someone populates it.
func (c *Catalog) SeedIfEmpty(ctx context.Context, path string) error {
	if _, err := c.Get(ctx); err == nil {
		return nil
	} else if !errors.Is(err, ErrNoCatalog) {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.log.Info().Str("path", path).Msg("no store seed file, catalog left empty")
			return nil
		}
		return fmt.Errorf("read store seed: %w", err)
	}

	store, err := ParseSeed(raw)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.col.InsertOne(ctx, store); err != nil {
		return fmt.Errorf("insert store catalog: %w", err)
	}
	if err := c.cache.Del(ctx, catalogCacheKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}

	c.log.Info().Int("categories", len(store.Categories)).Msg("store catalog seeded")
	return nil
}
