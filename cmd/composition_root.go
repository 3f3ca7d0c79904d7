package cmd

import (
	"context"
	"log/slog"

	httpin "rfidship/internal/adapters/in/http"
	"rfidship/internal/adapters/out/labels"
	"rfidship/internal/adapters/out/passwords"
	"rfidship/internal/adapters/out/postgres"
	"rfidship/internal/adapters/out/tokens"
	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
	"rfidship/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	strategy services.IdentifierDerivationStrategy
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	labels   ports.LabelRenderer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	strategy, err := services.ParseDerivationStrategy(cfg.RfidDerivation)
	if err != nil {
		return CompositionRoot{}, err
	}

	hasher, err := passwords.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}

	issuer, err := tokens.NewJWTIssuer(tokens.Config{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Issuer:        cfg.JWTIssuer,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	renderer, err := labels.NewPDFRenderer(labels.DefaultLayout)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		strategy:   strategy,
		hasher:     hasher,
		tokens:     issuer,
		labels:     renderer,
	}, nil
}

func (c *CompositionRoot) rfidUoWFactory() commands.RfidUoWFactory {
	return FuncRfidUoWFactory(func() commands.RfidUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) boxUoWFactory() commands.BoxUoWFactory {
	return FuncBoxUoWFactory(func() commands.BoxUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.userUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateCreateRfidCommandHandler() commands.CreateRfidCommandHandler {
	return commands.NewCreateRfidCommandHandler(c.rfidUoWFactory(), c.strategy)
}

func (c *CompositionRoot) CreateBatchCreateRfidCommandHandler() commands.BatchCreateRfidCommandHandler {
	return commands.NewBatchCreateRfidCommandHandler(c.rfidUoWFactory(), c.strategy)
}

func (c *CompositionRoot) CreateGenerateProductRfidsCommandHandler() commands.GenerateProductRfidsCommandHandler {
	return commands.NewGenerateProductRfidsCommandHandler(c.rfidUoWFactory(), c.strategy, c.logger)
}

func (c *CompositionRoot) CreateCreateBoxCommandHandler() commands.CreateBoxCommandHandler {
	return commands.NewCreateBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateCreateBatchBoxesCommandHandler() commands.CreateBatchBoxesCommandHandler {
	return commands.NewCreateBatchBoxesCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateAddRfidToBoxCommandHandler() commands.AddRfidToBoxCommandHandler {
	return commands.NewAddRfidToBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateRemoveRfidFromBoxCommandHandler() commands.RemoveRfidFromBoxCommandHandler {
	return commands.NewRemoveRfidFromBoxCommandHandler(c.boxUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAddBoxToShipmentCommandHandler() commands.AddBoxToShipmentCommandHandler {
	return commands.NewAddBoxToShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRemoveBoxFromShipmentCommandHandler() commands.RemoveBoxFromShipmentCommandHandler {
	return commands.NewRemoveBoxFromShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateShipShipmentCommandHandler() commands.ShipShipmentCommandHandler {
	return commands.NewShipShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentNoteCommandHandler() commands.UpdateShipmentNoteCommandHandler {
	return commands.NewUpdateShipmentNoteCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateQueryProductRfidsQueryHandler() queries.QueryProductRfidsQueryHandler {
	return queries.NewQueryProductRfidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxesQueryHandler() queries.GetBoxesQueryHandler {
	return queries.NewGetBoxesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoxByNoQueryHandler() queries.GetBoxByNoQueryHandler {
	return queries.NewGetBoxByNoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByUUIDQueryHandler() queries.GetUserByUUIDQueryHandler {
	return queries.NewGetUserByUUIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQueryLogsQueryHandler() queries.QueryLogsQueryHandler {
	return queries.NewQueryLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLogSummaryQueryHandler() queries.GetLogSummaryQueryHandler {
	return queries.NewGetLogSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		Login:        c.CreateLoginCommandHandler(),
		RefreshToken: c.CreateRefreshTokenCommandHandler(),

		CreateRfid:           c.CreateCreateRfidCommandHandler(),
		BatchCreateRfid:      c.CreateBatchCreateRfidCommandHandler(),
		GenerateProductRfids: c.CreateGenerateProductRfidsCommandHandler(),
		QueryProductRfids:    c.CreateQueryProductRfidsQueryHandler(),

		CreateBox:         c.CreateCreateBoxCommandHandler(),
		CreateBatchBoxes:  c.CreateCreateBatchBoxesCommandHandler(),
		AddRfidToBox:      c.CreateAddRfidToBoxCommandHandler(),
		RemoveRfidFromBox: c.CreateRemoveRfidFromBoxCommandHandler(),
		GetBoxes:          c.CreateGetBoxesQueryHandler(),
		GetBoxByNo:        c.CreateGetBoxByNoQueryHandler(),

		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		AddBoxToShipment:      c.CreateAddBoxToShipmentCommandHandler(),
		RemoveBoxFromShipment: c.CreateRemoveBoxFromShipmentCommandHandler(),
		ShipShipment:          c.CreateShipShipmentCommandHandler(),
		UpdateShipmentNote:    c.CreateUpdateShipmentNoteCommandHandler(),
		GetShipment:           c.CreateGetShipmentQueryHandler(),

		CreateUser:    c.CreateCreateUserCommandHandler(),
		UpdateUser:    c.CreateUpdateUserCommandHandler(),
		DeleteUser:    c.CreateDeleteUserCommandHandler(),
		GetUsers:      c.CreateGetUsersQueryHandler(),
		GetUserByUUID: c.CreateGetUserByUUIDQueryHandler(),

		QueryLogs:     c.CreateQueryLogsQueryHandler(),
		GetLogSummary: c.CreateGetLogSummaryQueryHandler(),
	}
}

func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateHTTPHandlers(),
		c.tokens,
		c.labels,
		httpin.WithLogger(c.logger),
		httpin.WithLoginRateLimiter(httpin.NewLoginRateLimiter(rate.Limit(c.cfg.LoginRatePerSec), c.cfg.LoginBurst)),
	)
	return httpin.NewEcho(server)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewAuditDigestJob(c.CreateGetLogSummaryQueryHandler(), c.cfg.AuditDigestSchedule, c.logger),
	)
}

// EnsureAdmin provisions the configured administrator. Without
// ADMIN_ACCOUNT it does nothing.
func (c *CompositionRoot) EnsureAdmin(ctx context.Context) error {
	if c.cfg.AdminAccount == "" {
		return nil
	}

	command, err := commands.NewEnsureAdminCommand(c.cfg.AdminAccount, c.cfg.AdminPassword, c.cfg.AdminCode, c.cfg.AdminName)
	if err != nil {
		return err
	}

	result, err := c.CreateEnsureAdminCommandHandler().Handle(ctx, command)
	if err != nil {
		return err
	}
	if result.Created {
		c.logger.InfoContext(ctx, "Admin account created", "account", result.User.Account)
	}
	return nil
}

type FuncRfidUoWFactory func() commands.RfidUoW

func (f FuncRfidUoWFactory) Create() commands.RfidUoW {
	return f()
}

type FuncBoxUoWFactory func() commands.BoxUoW

func (f FuncBoxUoWFactory) Create() commands.BoxUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
