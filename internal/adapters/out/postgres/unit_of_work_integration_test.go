package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "salesorders/internal/adapters/out/postgres"
	"salesorders/internal/adapters/out/postgres/itemrepo"
	"salesorders/internal/adapters/out/postgres/orderrepo"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderStatusDTO{},
		&itemrepo.ItemDTO{},
		&itemrepo.ItemStatusDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_statuses, order_items, item_statuses").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ItemRepository(), "First instance should provide item repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.ItemRepository(), "Second instance should provide item repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies order and item repository
// operations within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Cancel one item and persist both the item and the order header
	// within the same transaction
	itemIDs := []kernel.UUID{testOrder.Items()[0].ID()}
	items, err := uow.ItemRepository().GetForOrder(ctx, testOrder.ID(), itemIDs)
	suite.Require().NoError(err)

	err = testOrder.CancelItems(true, items)
	suite.Require().NoError(err)

	err = uow.ItemRepository().UpdateAll(ctx, testOrder.ID(), items)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the cancelled item persisted
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetWithItems(ctx, testOrder.ID())
	suite.Require().NoError(err)

	cancelled := 0
	for _, item := range retrievedOrder.Items() {
		if item.Cancelled() {
			cancelled++
		}
	}
	suite.Equal(1, cancelled)

	openCount, err := newUow.ItemRepository().CountOpen(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), openCount)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify order does not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := createTestOrder()
	order2 := createTestOrder()

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_CancelLastItemWorkflow tests the full cancel-last-item workflow
// involving both repositories and the guard-bypassing order cancellation
// within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancelLastItemWorkflow() {
	ctx := context.Background()

	// Persist the order first
	setupUow := suite.factory.Create()
	testOrder := createTestOrder()
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Begin transaction for the workflow
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Load the order and all of its items
	aggregate, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	itemIDs := []kernel.UUID{testOrder.Items()[0].ID(), testOrder.Items()[1].ID()}
	items, err := uow.ItemRepository().GetForOrder(ctx, testOrder.ID(), itemIDs)
	suite.Require().NoError(err)

	// Step 2: Cancel every item (domain operation)
	err = aggregate.CancelItems(true, items)
	suite.Require().NoError(err)
	err = uow.ItemRepository().UpdateAll(ctx, testOrder.ID(), items)
	suite.Require().NoError(err)

	// Step 3: No open items remain, so the order itself is cancelled
	openCount, err := uow.ItemRepository().CountOpen(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), openCount)

	err = aggregate.MarkCancelled()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, aggregate)
	suite.Require().NoError(err)

	// Commit the entire workflow
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetWithItems(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.HasActiveStatus(status.OrderCancelled))
	suite.Equal(int64(1), retrievedOrder.Version())
	for _, item := range retrievedOrder.Items() {
		suite.True(item.Cancelled(), "All items should be cancelled")
	}
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a multi-step workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()

	// Persist the order first
	setupUow := suite.factory.Create()
	testOrder := createTestOrder()
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Begin transaction
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Perform domain operations
	aggregate, err := uow.OrderRepository().GetWithItems(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = aggregate.Cancel(true, aggregate.Items())
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, aggregate)
	suite.Require().NoError(err)
	err = uow.ItemRepository().UpdateAll(ctx, testOrder.ID(), aggregate.Items())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().GetWithItems(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(retrievedOrder.HasActiveStatus(status.OrderCancelled))
	suite.Equal(int64(0), retrievedOrder.Version())
	for _, item := range retrievedOrder.Items() {
		suite.False(item.Cancelled(), "No item should be cancelled after rollback")
	}
}

// createTestOrder creates a valid two-item order for testing purposes.
func createTestOrder() *order.Order {
	address := order.RestoreShipmentAddress(
		"Jordan Miles", "Acme Corp", "+1-555-0100",
		"12 Harbor Way", "Suite 400", "Portland", "OR", "97201", "US", "",
	)
	item1, _ := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Standing Desk", 2, 49900, 500)
	item2, _ := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Desk Lamp", 1, 8900, 0)

	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jordan Miles",
		order.SpeedNormal, false, address, nil,
		[]*order.Item{item1, item2}, order.CreationFlags{},
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
