package repository

import (
	"context"
	"slices"
	"time"

	"github.com/JrMarcco/shipsync/internal/pkg/gla"
	gcache "github.com/patrickmn/go-cache"
)

type AudienceRepo interface {
	// Countries 返回商家的目标受众国家
	Countries(ctx context.Context) ([]string, error)
}

var _ AudienceRepo = (*DefaultAudienceRepo)(nil)

type DefaultAudienceRepo struct {
	client  gla.Client
	c       *gcache.Cache
	key     string
	expires time.Duration
}

func (d *DefaultAudienceRepo) Countries(ctx context.Context) ([]string, error) {
	if val, ok := d.c.Get(d.key); ok {
		if countries, ok := val.([]string); ok {
			return slices.Clone(countries), nil
		}
	}

	audience, err := d.client.TargetAudience(ctx)
	if err != nil {
		return nil, err
	}

	countries := audience.Countries
	if countries == nil {
		countries = []string{}
	}
	d.c.Set(d.key, slices.Clone(countries), d.expires)
	return countries, nil
}

func NewDefaultAudienceRepo(client gla.Client, c *gcache.Cache, key string, expires time.Duration) *DefaultAudienceRepo {
	return &DefaultAudienceRepo{
		client:  client,
		c:       c,
		key:     key,
		expires: expires,
	}
}
