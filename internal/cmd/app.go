package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crcs-platform/campusctl/internal/config"
	"github.com/crcs-platform/campusctl/internal/errors"
	"github.com/crcs-platform/campusctl/internal/log"
	"github.com/crcs-platform/campusctl/internal/platform"
	"github.com/crcs-platform/campusctl/internal/session"
	"github.com/crcs-platform/campusctl/internal/ux"
	"github.com/crcs-platform/campusctl/pkg/campus/types"
)

// app bundles the wired-up pieces every command needs: configuration, the
// rehydrated session store and the gateway client bound to it.
type app struct {
	cfg    *config.Config
	store  *session.Store
	client *platform.Client
	logger *log.Logger
}

// newApp loads configuration, rehydrates the session from disk and wires
// the store and client together.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}

	logCfg := log.DefaultConfig()
	if flagVerbose {
		logCfg = log.VerboseConfig()
	} else if cfg.LogLevel != "" {
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	keychain := session.NewKeychain(config.Home())
	store := session.NewStore(keychain, logger)
	store.Rehydrate()

	client := platform.NewClient(cfg.APIURL, store,
		platform.WithTimeout(cfg.Timeout()),
		platform.WithLogger(logger),
	)
	store.Bind(client)

	return &app{
		cfg:    cfg,
		store:  store,
		client: client,
		logger: logger,
	}, nil
}

// formatter builds the output formatter selected by --output or the
// configured default.
func (a *app) formatter(cmd *cobra.Command) (ux.Formatter, error) {
	return ux.NewFormatter(a.cfg.Output, &ux.FormatterOptions{
		Writer: cmd.OutOrStdout(),
	})
}

// textOutput reports whether the selected format is human-readable text,
// in which case commands render tables instead of feeding the formatter.
func (a *app) textOutput() bool {
	return a.cfg.Output == "" || a.cfg.Output == "text"
}

// requireAuth fails fast when no session is held, before any request
// leaves the machine.
func (a *app) requireAuth() error {
	if !a.store.IsAuthenticated() {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// requireRole is the advisory client-side role gate. The gateway remains
// the authority; this just avoids a round trip that is known to fail.
func (a *app) requireRole(action string, roles ...types.Role) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !a.store.HasRole(roles...) {
		names := make([]string, len(roles))
		for i, r := range roles {
			names[i] = string(r)
		}
		return errors.NewRoleDeniedError(action, names...)
	}
	return nil
}
