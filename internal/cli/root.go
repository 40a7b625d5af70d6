// Package cli implements the plat-respond command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/joeblew999/plat-respond/internal/config"
	"github.com/joeblew999/plat-respond/internal/svc"
	pathcfg "github.com/joeblew999/plat-respond/pkg/config"
	"github.com/joeblew999/plat-respond/pkg/log"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type options struct {
	configFile string
	backend    string
	dir        string
	dbPath     string
	folderID   string
	creds      string
	jsonOut    bool
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "plat-respond",
		Short: "Fill and manage email response templates",
		Long: `plat-respond fills stored email templates with {placeholder} values
and manages the shared template folder.

Templates are JSON documents named <useralias>_<skill>_<templatename>.json,
kept in a local directory, a SQLite database or a Google Drive folder.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.DisableStat()
			if opts.verbose {
				log.SetLogger(log.New("debug", "text"))
			} else {
				logx.SetLevel(logx.ErrorLevel)
				log.SetLogger(log.New("error", "text"))
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "f", "", "Server config file to take store settings from")
	flags.StringVar(&opts.backend, "backend", config.BackendLocal, "Store backend: local, sqlite or drive")
	flags.StringVar(&opts.dir, "dir", "", "Template directory for the local backend (default $DATA_PATH/templates)")
	flags.StringVar(&opts.dbPath, "db", "", "Database file for the sqlite backend (default $DATA_PATH/plat-respond.db)")
	flags.StringVar(&opts.folderID, "drive-folder", "", "Google Drive folder ID for the drive backend")
	flags.StringVar(&opts.creds, "drive-credentials", "", "Service account key for the drive backend")
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "Output in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	root.SetVersionTemplate(fmt.Sprintf("plat-respond %s (%s, %s)\n", Version, GitCommit, BuildDate))

	root.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newRenderCmd(opts),
		newSaveCmd(opts),
		newDetectCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// storeConfig resolves store settings from the config file or the flags.
func (o *options) storeConfig() (config.StoreConfig, error) {
	if o.configFile != "" {
		var c config.Config
		if err := conf.Load(o.configFile, &c, conf.UseEnv()); err != nil {
			return config.StoreConfig{}, fmt.Errorf("load config: %w", err)
		}
		return c.Store, nil
	}

	c := config.StoreConfig{
		Backend:  o.backend,
		CacheTTL: 30 * time.Second,
	}
	c.Local.Dir = o.dir
	if c.Local.Dir == "" {
		c.Local.Dir = pathcfg.GetTemplatePath()
	}
	c.SQLite.Path = o.dbPath
	if c.SQLite.Path == "" {
		c.SQLite.Path = pathcfg.GetDatabasePath()
	}
	c.Drive.FolderID = o.folderID
	c.Drive.CredentialsFile = o.creds
	c.Drive.RateLimit = 10
	c.Drive.Burst = 5
	return c, nil
}

// withStore opens the configured store for the duration of fn.
func (o *options) withStore(cmd *cobra.Command, fn func(ctx context.Context, st *store.Store) error) error {
	c, err := o.storeConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, cleanup, err := svc.NewStore(ctx, c)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, st)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
