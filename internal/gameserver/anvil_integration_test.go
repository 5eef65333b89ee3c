package gameserver

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/udisondev/anvil/internal/config"
	"github.com/udisondev/anvil/internal/db"
	"github.com/udisondev/anvil/internal/game/anvil"
	"github.com/udisondev/anvil/internal/model"
	"github.com/udisondev/anvil/internal/permission"
	"github.com/udisondev/anvil/internal/scheduler"
	"github.com/udisondev/anvil/internal/testutil"
)

// AnvilIntegrationSuite прогоняет полный цикл наковальни с реальным журналом в PostgreSQL
// и работающим тикером.
type AnvilIntegrationSuite struct {
	suite.Suite
	ctx    context.Context
	cancel context.CancelFunc

	pool  *pgxpool.Pool
	repo  *db.CombinationRepository
	tasks *scheduler.TaskManager
	host  *AnvilHost
}

func (s *AnvilIntegrationSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.pool = testutil.SetupTestDB(s.T())
	s.repo = db.NewCombinationRepository(s.pool)

	cfg := config.DefaultAnvil()
	cfg.TaskInterval = 5 * time.Millisecond
	cfg.Permissions = map[string][]string{cfg.UnsafePermission: {"Notch"}}

	s.tasks = scheduler.NewTaskManager(cfg.TaskInterval)
	listener := NewAnvilListener(cfg, testutil.Catalog(s.T()), s.tasks, permission.NewStatic(cfg.Permissions), s.repo)
	s.host = NewAnvilHost(listener, s.tasks)

	go func() { _ = s.tasks.Start(s.ctx) }()
}

func (s *AnvilIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE anvil_combinations`)
	s.Require().NoError(err)
}

func (s *AnvilIntegrationSuite) TearDownSuite() {
	s.cancel()
}

// combine prepares, waits for the deferred cost and clicks the output slot.
func (s *AnvilIntegrationSuite) combine(viewer *model.Viewer, first, second *model.Item, rename string) (*model.AnvilInventory, bool) {
	inv := testutil.NewAnvil(first, second)
	inv.SetRenameText(rename)

	s.Require().NotNil(s.host.Prepare(s.ctx, inv))
	s.Require().NoError(s.host.AwaitTick(s.ctx))

	_, ok := s.host.Click(s.ctx, viewer, inv, AnvilOutputSlot)
	return inv, ok
}

func (s *AnvilIntegrationSuite) TestTakenResultIsRecorded() {
	t := s.T()
	viewer := model.NewViewer(7, "Steve")

	inv, ok := s.combine(viewer,
		testutil.NewItem(t, "diamond_sword", anvil.Set{"sharpness": 4}, 3),
		testutil.NewItem(t, "enchanted_book", anvil.Set{"sharpness": 4, "unbreaking": 3}, 1),
		"Excalibur",
	)
	s.Require().True(ok)
	s.Equal(4, inv.RepairCost())
	s.Require().Len(viewer.Received(), 1)

	records, err := s.repo.ListByPlayer(s.ctx, "steve", 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	rec := records[0]
	s.Equal("diamond_sword", rec.FirstType)
	s.Equal("enchanted_book", rec.SecondType)
	s.Equal("Excalibur", rec.DisplayName)
	s.Equal(anvil.Set{"sharpness": 5, "unbreaking": 3}, rec.Enchantments)
	s.Equal(4, rec.RepairCost)
	s.False(rec.Conflicting)
}

func (s *AnvilIntegrationSuite) TestConflictingResultNeedsPermission() {
	t := s.T()
	// The conflict sits on one input, so the merge keeps both kinds.
	sword := func() *model.Item { return testutil.NewItem(t, "diamond_sword", anvil.Set{"unbreaking": 1}, 0) }
	book := func() *model.Item {
		return testutil.NewItem(t, "enchanted_book", anvil.Set{"sharpness": 5, "smite": 5}, 0)
	}

	_, ok := s.combine(model.NewViewer(8, "Alex"), sword(), book(), "")
	s.False(ok)

	_, ok = s.combine(model.NewViewer(9, "Notch"), sword(), book(), "")
	s.True(ok)

	denied, err := s.repo.ListByPlayer(s.ctx, "Alex", 0)
	s.Require().NoError(err)
	s.Empty(denied)

	allowed, err := s.repo.ListByPlayer(s.ctx, "Notch", 0)
	s.Require().NoError(err)
	s.Require().Len(allowed, 1)
	s.True(allowed[0].Conflicting)
}

func TestAnvilIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(AnvilIntegrationSuite))
}
