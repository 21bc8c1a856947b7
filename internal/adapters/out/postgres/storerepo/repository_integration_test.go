package storerepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/storerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *storerepo.GormStoreRepository
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = storerepo.NewGormStoreRepository(suite.db)
}

func (suite *StoreRepositoryIntegrationTestSuite) newStore(id, owner string, createdAt time.Time) *store.Store {
	s, err := store.RestoreStore(kernel.MustIDFromString(id), owner, store.Profile{
		Name:   "호건치킨 " + id,
		Region: "seoul_gangnam",
		Status: store.StatusOpen,
		Delivery: store.Delivery{
			Available: true,
			BaseFee:   3000,
			Rules:     []any{map[string]any{"min_order": 15000.0}},
		},
		Rating: kernel.Rating{Score: 4.5, Count: 12},
	}, createdAt, createdAt)
	suite.Require().NoError(err)
	return s
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsEveryField() {
	ctx := suite.T().Context()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	original := suite.newStore("s1", "owner-1", at)

	suite.Require().NoError(suite.repository.Add(ctx, original))
	loaded, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.Equal("호건치킨 s1", loaded.Name(), spew.Sdump(loaded))
	suite.Equal("owner-1", loaded.OwnerID())
	suite.Equal("seoul_gangnam", loaded.Region())
	suite.True(loaded.IsOpen())
	suite.Equal(original.Delivery(), loaded.Delivery())
	suite.Equal(kernel.Rating{Score: 4.5, Count: 12}, loaded.Rating())
	suite.True(at.Equal(loaded.CreatedAt()))
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_DuplicateIsConflict() {
	ctx := suite.T().Context()
	s := suite.newStore("s1", "owner-1", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, s))

	err := suite.repository.Add(ctx, s)

	suite.True(errs.HasCode(err, errs.CodeStorageClash), "got %v", err)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGet_MissingIsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.MustIDFromString("nope"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := suite.T().Context()
	s := suite.newStore("s1", "owner-1", time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.UpdateProfile(store.Profile{Name: "새 이름", Region: "busan", Status: "closed"}, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	loaded, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal("새 이름", loaded.Name())
	suite.Equal("closed", loaded.Status())
	suite.Empty(loaded.Delivery().Rules)

	missing := suite.newStore("ghost", "owner-1", time.Now())
	suite.Require().ErrorIs(suite.repository.Update(ctx, missing), errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGetMany_SkipsMissing() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("s1", "o", time.Now())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("s2", "o", time.Now())))

	stores, err := suite.repository.GetMany(ctx, []kernel.ID{
		kernel.MustIDFromString("s1"), kernel.MustIDFromString("s2"), kernel.MustIDFromString("s3"),
	})

	suite.Require().NoError(err)
	suite.Len(stores, 2)
	suite.Contains(stores, kernel.MustIDFromString("s2"))

	empty, err := suite.repository.GetMany(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestFindByOwner_ReturnsOldest() {
	ctx := suite.T().Context()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("newer", "owner-1", base.Add(time.Hour))))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newStore("older", "owner-1", base)))

	found, err := suite.repository.FindByOwner(ctx, "owner-1")
	suite.Require().NoError(err)
	suite.Equal("older", found.ID().String())

	_, err = suite.repository.FindByOwner(ctx, "owner-2")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
