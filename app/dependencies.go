package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/olegamobile/lets-play/config"
	"github.com/olegamobile/lets-play/internal/policy"
	"github.com/olegamobile/lets-play/jwtauth"
	"github.com/olegamobile/lets-play/middleware"
	"github.com/olegamobile/lets-play/repositories"
	"github.com/olegamobile/lets-play/repositories/sqldb"
	"github.com/olegamobile/lets-play/services"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *sqldb.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *sqldb.RepositoryFactory

	// Repositories
	Users     repositories.UserRepository
	Products  repositories.ProductRepository
	TxManager repositories.TransactionManager

	// Security
	Hasher       services.PasswordHasher
	Tokens       *jwtauth.Codec
	AccessPolicy *policy.AccessPolicy

	// Services
	Authenticator  *services.Authenticator
	UserService    *services.UserService
	ProductService *services.ProductService

	// Middleware
	AuthMiddleware   *middleware.AuthMiddleware
	PolicyMiddleware *middleware.PolicyEnforcementMiddleware
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	// Keys first so a bad secret fails before any connection is opened
	if err := deps.initSecurity(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize security: %w", err)
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initRepositories()
	deps.initServices()
	deps.initMiddleware()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initSecurity builds the password hasher, token codec and access policy
func (d *Dependencies) initSecurity(cfg *config.Config) error {
	codec, err := jwtauth.NewCodecFromBase64(cfg.JWT.Secret)
	if err != nil {
		return fmt.Errorf("invalid JWT_SECRET: %w", err)
	}

	d.Tokens = codec
	d.Hasher = services.NewBcryptHasher(cfg.Security.PasswordHashCost)
	d.AccessPolicy = policy.NewDefaultAccessPolicy()

	d.Logger.Info("security initialized",
		zap.Duration("token_ttl", codec.TTL()),
		zap.Int("rules", len(d.AccessPolicy.Rules())))
	return nil
}

// initDatabase opens the credential store and creates the schema when enabled
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	factory, err := sqldb.NewRepositoryFactory(cfg, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create repository factory: %w", err)
	}

	d.RepoFactory = factory
	d.DB = factory.GetDB()

	if cfg.Database.AutoMigrate {
		if err := factory.InitSchema(ctx); err != nil {
			_ = factory.Close()
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		d.Logger.Info("database schema ready")
	}

	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	repos := d.RepoFactory.NewRepositories()

	d.Users = repos.Users
	d.Products = repos.Products
	d.TxManager = d.RepoFactory.GetTransactionManager()
}

func (d *Dependencies) initServices() {
	d.Authenticator = services.NewAuthenticator(d.Users, d.Hasher, d.Logger)
	d.UserService = services.NewUserService(d.Users, d.TxManager, d.Hasher, d.Logger)
	d.ProductService = services.NewProductService(d.Products, d.Logger)
}

func (d *Dependencies) initMiddleware() {
	d.AuthMiddleware = middleware.NewAuthMiddleware(d.Tokens, d.Users, d.Logger)
	d.PolicyMiddleware = middleware.NewPolicyEnforcementMiddleware(d.AccessPolicy, d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	_ = d.Logger.Sync()

	return errors.Join(errs...)
}
