package catalog_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/errors"
	redisclient "github.com/tavernkeep/guild-api/internal/redis"
	"github.com/tavernkeep/guild-api/internal/repositories/catalog"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      catalog.Repository
	ctx       context.Context
}

func (s *RedisCatalogTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	s.client = client

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisCatalogTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisCatalogTestSuite) seedItems() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Items: []*entities.Item{
			{
				Name:      "Leather Cap",
				Category:  entities.CategoryArmor,
				Slot:      entities.SlotHead,
				StatBonus: map[string]int{"defense": 2},
				Rarity:    entities.RarityCommon,
			},
			{
				Name:     "Minor Healing Potion",
				Category: entities.CategoryConsumable,
				Rarity:   entities.RarityCommon,
			},
		},
	})
	s.Require().NoError(err)
}

func (s *RedisCatalogTestSuite) TestPutAndFindByNames() {
	s.seedItems()

	out, err := s.repo.FindByNames(s.ctx, catalog.FindByNamesInput{
		Names: []string{"Leather Cap", "Minor Healing Potion"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 2)
	s.Equal(entities.SlotHead, out.Items[0].Slot)
	s.True(out.Items[0].Equippable())
	s.False(out.Items[1].Equippable())
}

func (s *RedisCatalogTestSuite) TestFindByNamesIsNameInsensitive() {
	s.seedItems()

	// Lookup keys normalize case and punctuation
	out, err := s.repo.FindByNames(s.ctx, catalog.FindByNamesInput{
		Names: []string{"leather cap"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Items, 1)
	s.Equal("Leather Cap", out.Items[0].Name)
}

func (s *RedisCatalogTestSuite) TestFindByNamesSkipsUnknown() {
	s.seedItems()

	out, err := s.repo.FindByNames(s.ctx, catalog.FindByNamesInput{
		Names: []string{"Leather Cap", "Sword of Nowhere"},
	})
	s.Require().NoError(err)
	s.Len(out.Items, 1)
}

func (s *RedisCatalogTestSuite) TestListAll() {
	s.seedItems()

	out, err := s.repo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(out.Items, 2)
}

func (s *RedisCatalogTestSuite) TestPutValidation() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, catalog.PutInput{Items: []*entities.Item{{}}})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}
