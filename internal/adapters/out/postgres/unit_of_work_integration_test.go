package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "suqia/internal/adapters/out/postgres"
	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/core/domain/model/region"
	"suqia/internal/core/domain/model/tank"
	"suqia/internal/core/ports"
	"suqia/internal/pkg/auth"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and its
// repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))

	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, customers, drivers, users, tank_regions, tanks, regions").Error
	s.Require().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkIntegrationTestSuite) newRegion(name string) *region.Region {
	r, err := region.NewRegion(kernel.NewUUID(), name)
	s.Require().NoError(err)
	return r
}

func (s *UnitOfWorkIntegrationTestSuite) newTank(regionIDs ...kernel.UUID) *tank.Tank {
	price, err := kernel.NewMoney(50.00)
	s.Require().NoError(err)
	t, err := tank.NewTank(kernel.NewUUID(), "Al-Shifa", 1000, "Drinking", price, "Al-Bara", regionIDs)
	s.Require().NoError(err)
	return t
}

func (s *UnitOfWorkIntegrationTestSuite) newUser(role account.Role, regionID kernel.UUID) *account.User {
	u, err := account.NewUser(kernel.NewUUID(), kernel.NewUUID().String()+"@example.com",
		"$2a$10$hash", "Amira Haddad", "+963-11-1234567", "Main St 4", role, &regionID,
		time.Now().UTC())
	s.Require().NoError(err)
	return u
}

func (s *UnitOfWorkIntegrationTestSuite) newOrder(customerID, tankID kernel.UUID) *order.Order {
	price, err := kernel.NewMoney(50.00)
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, tankID, 3, price, time.Now().UTC())
	s.Require().NoError(err)
	return o
}

// seedCatalog persists a region, a tank serving it, and a customer with
// its backing user, all outside any transaction.
func (s *UnitOfWorkIntegrationTestSuite) seedCatalog() (*region.Region, *tank.Tank, *customer.Customer) {
	ctx := context.Background()
	uow := s.factory.Create()

	r := s.newRegion("Kansafra")
	s.Require().NoError(uow.RegionRepository().Add(ctx, r))

	t := s.newTank(r.ID())
	s.Require().NoError(uow.TankRepository().Add(ctx, t))

	u := s.newUser(account.RoleCustomer, r.ID())
	s.Require().NoError(uow.UserRepository().Add(ctx, u))

	c, err := customer.NewCustomer(kernel.NewUUID(), u.ID(), r.ID())
	s.Require().NoError(err)
	s.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	return r, t, c
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "repeated Begin must not nest")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().Error(uow.Commit(ctx), "commit without transaction must fail")
	s.Require().NoError(uow.Rollback(ctx), "rollback without transaction is a no-op")
}

func (s *UnitOfWorkIntegrationTestSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	_, t, c := s.seedCatalog()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	o := s.newOrder(c.ID(), t.ID())
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	restored, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.True(restored.IsEqual(o))
	s.Equal(order.Pending, restored.Status())
	s.True(restored.Price().IsEqual(o.Price()))
	s.Nil(restored.Driver())
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	_, t, c := s.seedCatalog()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))

	o := s.newOrder(c.ID(), t.ID())
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestStatusGuardDetectsLostRace() {
	ctx := context.Background()
	r, t, c := s.seedCatalog()

	o := s.newOrder(c.ID(), t.ID())
	uow := s.factory.Create()
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))

	driverUser := s.newUser(account.RoleDriver, r.ID())
	s.Require().NoError(uow.UserRepository().Add(ctx, driverUser))
	d, err := driver.NewDriver(kernel.NewUUID(), driverUser.ID(), r.ID())
	s.Require().NoError(err)
	s.Require().NoError(uow.DriverRepository().Add(ctx, d))

	// first writer wins
	first, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Require().NoError(first.AcceptBy(d.ID()))
	s.Require().NoError(s.factory.Create().OrderRepository().
		UpdateWithStatusGuard(ctx, first, order.Pending))

	// second writer loaded the same pending order and loses
	second := s.newOrder(c.ID(), t.ID())
	restored, err := order.RestoreOrder(o.ID(), c.ID(), t.ID(), nil, second.Quantity(),
		second.Price(), second.OrderTime(), order.Pending, nil, "")
	s.Require().NoError(err)
	s.Require().NoError(restored.AcceptBy(d.ID()))

	err = s.factory.Create().OrderRepository().UpdateWithStatusGuard(ctx, restored, order.Pending)
	s.Require().ErrorIs(err, errs.ErrConcurrentWrite)
}

func (s *UnitOfWorkIntegrationTestSuite) TestUnassignPersistsNullDriver() {
	ctx := context.Background()
	r, t, c := s.seedCatalog()

	driverUser := s.newUser(account.RoleDriver, r.ID())
	uow := s.factory.Create()
	s.Require().NoError(uow.UserRepository().Add(ctx, driverUser))
	d, err := driver.NewDriver(kernel.NewUUID(), driverUser.ID(), r.ID())
	s.Require().NoError(err)
	s.Require().NoError(uow.DriverRepository().Add(ctx, d))

	o := s.newOrder(c.ID(), t.ID())
	s.Require().NoError(o.AcceptBy(d.ID()))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))

	s.Require().NoError(o.Unassign())
	s.Require().NoError(uow.OrderRepository().Update(ctx, o))

	restored, err := uow.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Nil(restored.Driver(), "driver column must be nulled, not skipped")
	s.Equal(order.Accepted, restored.Status())
}

func (s *UnitOfWorkIntegrationTestSuite) TestTankRegionLinksRoundTrip() {
	ctx := context.Background()
	uow := s.factory.Create()

	first := s.newRegion("Al-Bara")
	second := s.newRegion("Kansafra")
	s.Require().NoError(uow.RegionRepository().Add(ctx, first))
	s.Require().NoError(uow.RegionRepository().Add(ctx, second))

	t := s.newTank(first.ID(), second.ID())
	s.Require().NoError(uow.TankRepository().Add(ctx, t))

	restored, err := uow.TankRepository().Get(ctx, t.ID())
	s.Require().NoError(err)
	s.True(restored.ServesRegion(first.ID()))
	s.True(restored.ServesRegion(second.ID()))

	// narrowing the served set replaces the links
	price := restored.PricePerBarrel()
	s.Require().NoError(restored.Update(restored.Name(), restored.Capacity(),
		restored.WaterType(), price, restored.Location(), []kernel.UUID{first.ID()}))
	s.Require().NoError(uow.TankRepository().Update(ctx, restored))

	reread, err := uow.TankRepository().Get(ctx, t.ID())
	s.Require().NoError(err)
	s.True(reread.ServesRegion(first.ID()))
	s.False(reread.ServesRegion(second.ID()))
}

func (s *UnitOfWorkIntegrationTestSuite) TestDuplicateEmailIsRejected() {
	ctx := context.Background()
	uow := s.factory.Create()

	r := s.newRegion("Saraqib")
	s.Require().NoError(uow.RegionRepository().Add(ctx, r))

	regionID := r.ID()
	first, err := account.NewUser(kernel.NewUUID(), "amira@example.com", "$2a$10$hash",
		"Amira Haddad", "", "", account.RoleCustomer, &regionID, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(uow.UserRepository().Add(ctx, first))

	second, err := account.NewUser(kernel.NewUUID(), "amira@example.com", "$2a$10$hash",
		"Another Amira", "", "", account.RoleCustomer, &regionID, time.Now().UTC())
	s.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, second)
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *UnitOfWorkIntegrationTestSuite) TestCustomerLookupByUser() {
	ctx := context.Background()
	_, _, c := s.seedCatalog()

	restored, err := s.factory.Create().CustomerRepository().GetByUserID(ctx, c.UserID())
	s.Require().NoError(err)
	s.True(restored.IsEqual(c))

	exists, err := s.factory.Create().CustomerRepository().ExistsInRegion(ctx, c.RegionID())
	s.Require().NoError(err)
	s.True(exists)
}

func (s *UnitOfWorkIntegrationTestSuite) TestLockoutRoundTrip() {
	ctx := context.Background()
	uow := s.factory.Create()

	r := s.newRegion("Ariha")
	s.Require().NoError(uow.RegionRepository().Add(ctx, r))

	u := s.newUser(account.RoleCustomer, r.ID())
	s.Require().NoError(uow.UserRepository().Add(ctx, u))

	s.Require().NoError(u.Lock(time.Now().UTC().Add(time.Hour)))
	s.Require().NoError(uow.UserRepository().Update(ctx, u))

	restored, err := s.factory.Create().UserRepository().Get(ctx, u.ID())
	s.Require().NoError(err)
	s.True(restored.IsLocked(time.Now()))

	restored.Unlock()
	s.Require().NoError(uow.UserRepository().Update(ctx, restored))

	reread, err := s.factory.Create().UserRepository().Get(ctx, u.ID())
	s.Require().NoError(err)
	s.Nil(reread.LockedUntil(), "locked_until column must be nulled, not skipped")
}

func (s *UnitOfWorkIntegrationTestSuite) TestCustomerRegionMovePersists() {
	ctx := context.Background()
	_, _, c := s.seedCatalog()

	uow := s.factory.Create()
	next := s.newRegion("Saraqib")
	s.Require().NoError(uow.RegionRepository().Add(ctx, next))

	s.Require().NoError(c.MoveToRegion(next.ID()))
	s.Require().NoError(uow.CustomerRepository().Update(ctx, c))

	restored, err := s.factory.Create().CustomerRepository().Get(ctx, c.ID())
	s.Require().NoError(err)
	s.True(restored.RegionID().IsEqual(next.ID()))
}

func (s *UnitOfWorkIntegrationTestSuite) TestLockedAccountCannotSignIn() {
	ctx := context.Background()
	uow := s.factory.Create()

	r := s.newRegion("Kafr Nabl")
	s.Require().NoError(uow.RegionRepository().Add(ctx, r))

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("secret1")
	s.Require().NoError(err)

	regionID := r.ID()
	u, err := account.NewUser(kernel.NewUUID(), "lina@example.com", hash,
		"Lina Qasem", "", "", account.RoleCustomer, &regionID, time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(uow.UserRepository().Add(ctx, u))

	c, err := customer.NewCustomer(kernel.NewUUID(), u.ID(), r.ID())
	s.Require().NoError(err)
	s.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	handler := queries.NewAuthenticateUserQueryHandler(s.db, hasher)
	query, err := queries.NewAuthenticateUserQuery("lina@example.com", "secret1")
	s.Require().NoError(err)

	identity, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Equal(account.RoleCustomer, identity.Role)

	s.Require().NoError(u.Lock(time.Now().UTC().Add(time.Hour)))
	s.Require().NoError(uow.UserRepository().Update(ctx, u))

	_, err = handler.Handle(ctx, query)
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid,
		"a locked account must fail like bad credentials")
}

func (s *UnitOfWorkIntegrationTestSuite) TestSeedIsIdempotent() {
	ctx := context.Background()

	s.Require().NoError(postgres_adapter.Seed(s.db, "admin@suqia.com", "$2a$10$hash"))
	s.Require().NoError(postgres_adapter.Seed(s.db, "admin@suqia.com", "$2a$10$hash"))

	var regionCount, tankCount, linkCount int64
	s.Require().NoError(s.db.WithContext(ctx).Table("regions").Count(&regionCount).Error)
	s.Require().NoError(s.db.WithContext(ctx).Table("tanks").Count(&tankCount).Error)
	s.Require().NoError(s.db.WithContext(ctx).Table("tank_regions").Count(&linkCount).Error)
	s.EqualValues(5, regionCount)
	s.EqualValues(3, tankCount)
	s.EqualValues(6, linkCount)

	admin, err := s.factory.Create().UserRepository().GetByEmail(ctx, "admin@suqia.com")
	s.Require().NoError(err)
	s.Equal(account.RoleAdmin, admin.Role())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
