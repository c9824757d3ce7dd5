package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	chainstore "github.com/bnema/storefront-cli/internal/adapters/storage/chain"
	filestore "github.com/bnema/storefront-cli/internal/adapters/storage/file"
	passstore "github.com/bnema/storefront-cli/internal/adapters/storage/pass"
	"github.com/bnema/storefront-cli/internal/adapters/storeapi"
	"github.com/bnema/storefront-cli/internal/application"
	"github.com/bnema/storefront-cli/internal/config"
	"github.com/bnema/storefront-cli/internal/logging"
	"github.com/bnema/storefront-cli/internal/ports"
	"github.com/bnema/storefront-cli/internal/version"
)

const passRoot = "storefront"

// app is the object graph shared by every command of one invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	bus    *application.Bus
	api    ports.CommerceAPI

	local       *filestore.Store
	credentials ports.LocalStorage

	session  *application.Session
	wishlist *application.Wishlist
	catalog  *application.Catalog
	cart     *application.Cart
	orders   *application.Orders
}

func wireApp(cfg config.Config, logOutput io.Writer) (*app, error) {
	logger := logging.New(cfg.LogLevel, logOutput)
	bus := application.NewBus()

	client := storeapi.NewClient(cfg.APIURL,
		storeapi.WithTimeout(cfg.RequestTimeout),
		storeapi.WithUserAgent(fmt.Sprintf("sf/%s (%s)", version.Version, bus.InstanceID())),
	)
	api := storeapi.NewAPI(client)

	originDir, err := filestore.OriginDir(cfg.DataDir, cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("resolve storage directory: %w", err)
	}
	local := filestore.NewStore(originDir)

	credentials, err := credentialStore(cfg, local)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		bus:         bus,
		api:         api,
		local:       local,
		credentials: credentials,
		session:     application.NewSession(api, credentials, ports.SystemClock{}, logger),
		wishlist:    application.NewWishlist(local, bus, logger),
		catalog:     application.NewCatalog(api, logger),
		cart:        application.NewCart(api, bus, logger),
		orders:      application.NewOrders(api),
	}, nil
}

// credentialStore picks the credential partition. The wishlist always lives
// in the local file store so other processes can watch it.
func credentialStore(cfg config.Config, local *filestore.Store) (ports.LocalStorage, error) {
	originKey, err := filestore.OriginKey(cfg.APIURL)
	if err != nil {
		return nil, err
	}
	prefix := path.Join(passRoot, originKey)

	switch cfg.CredentialBackend {
	case config.BackendFile:
		return local, nil
	case config.BackendPass:
		return passstore.NewStore(prefix), nil
	case config.BackendAuto, "":
		return chainstore.NewPassFirstWithFileFallback(prefix, local.Root())
	default:
		return nil, fmt.Errorf("unknown credential backend %q", cfg.CredentialBackend)
	}
}
