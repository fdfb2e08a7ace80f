// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command odbcdm inspects an ODBC driver manager: which entry points
// it exports, its data sources and drivers, and runs queries.
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"

	"github.com/dlodbc/odbc"
	"github.com/dlodbc/odbc/api"
	"github.com/dlodbc/odbc/internal/logger"
)

type options struct {
	Config     string `short:"c" long:"config" description:"YAML profiles file"`
	Profile    string `short:"p" long:"profile" description:"profile to use" default:"default"`
	Library    string `short:"l" long:"library" description:"driver manager library"`
	SizeOfLong int    `long:"size-of-long" description:"width of C long in bytes" choice:"4" choice:"8"`
	ANSI       bool   `long:"ansi" description:"use the ANSI entry points"`
	Legacy     bool   `long:"legacy" description:"4 byte SQLLEN"`
	Debug      bool   `short:"d" long:"debug" description:"debug logging"`
}

var (
	opts     options
	selected struct{ connection string }
	log      *slog.Logger
)

// config merges the defaults, the selected profile and the flags.
func config() (api.Config, error) {
	cfg := api.DefaultConfig()
	cfg.Legacy = false
	if opts.Config != "" {
		profiles, err := loadProfiles(opts.Config)
		if err != nil {
			return cfg, err
		}
		p, ok := profiles[opts.Profile]
		if !ok {
			return cfg, fmt.Errorf("%s: no profile %q", opts.Config, opts.Profile)
		}
		p.apply(&cfg)
		selected.connection = p.Connection
	}
	if opts.Library != "" {
		cfg.Library = opts.Library
	}
	if opts.SizeOfLong != 0 {
		cfg.SizeOfLong = opts.SizeOfLong
	}
	if opts.ANSI {
		cfg.Unicode = false
	}
	if opts.Legacy {
		cfg.Legacy = true
	}
	cfg.Logger = log
	return cfg, nil
}

func openEnvironment() (*odbc.Environment, error) {
	cfg, err := config()
	if err != nil {
		return nil, err
	}
	dm, err := api.Open(cfg)
	if err != nil {
		return nil, err
	}
	env, err := odbc.NewEnvironment(dm)
	if err != nil {
		dm.Close()
		return nil, err
	}
	return env, nil
}

func closeEnvironment(env *odbc.Environment) {
	if err := env.Close(); err != nil {
		log.Warn("closing environment", "error", err)
	}
	env.DriverManager().Close()
}

type entryPointsCmd struct {
	Missing bool `long:"missing" description:"only list entry points the library lacks"`
}

func (c *entryPointsCmd) Execute([]string) error {
	cfg, err := config()
	if err != nil {
		return err
	}
	dm, err := api.Open(cfg)
	if err != nil {
		return err
	}
	defer dm.Close()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	bound := 0
	for _, ep := range dm.EntryPoints() {
		if ep.Bound() {
			bound++
			if c.Missing {
				continue
			}
		}
		state := "missing"
		if ep.Bound() {
			state = "bound"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", ep.Name, state, ep)
	}
	fmt.Fprintf(w, "\n%d of %d entry points bound\n", bound, len(dm.EntryPoints()))
	return w.Flush()
}

type dataSourcesCmd struct{}

func (c *dataSourcesCmd) Execute([]string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer closeEnvironment(env)
	dsns, err := env.DataSources()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, d := range dsns {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
	}
	return w.Flush()
}

type driversCmd struct {
	Verbose bool `short:"v" long:"verbose" description:"show driver attributes"`
}

func (c *driversCmd) Execute([]string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer closeEnvironment(env)
	drivers, err := env.Drivers()
	if err != nil {
		return err
	}
	for _, d := range drivers {
		fmt.Println(d.Description)
		if c.Verbose {
			for _, a := range d.Attributes {
				fmt.Printf("\t%s\n", a)
			}
		}
	}
	return nil
}

type queryCmd struct {
	Connection string `short:"s" long:"connection" description:"connection string, defaults to the profile's"`
	Args       struct {
		Query  string   `positional-arg-name:"query" required:"yes"`
		Params []string `positional-arg-name:"params"`
	} `positional-args:"yes"`
}

func (c *queryCmd) Execute([]string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer closeEnvironment(env)
	connStr := c.Connection
	if connStr == "" {
		connStr = selected.connection
	}
	if connStr == "" {
		return errors.New("no connection string given")
	}

	db := sqlx.NewDb(sql.OpenDB(odbc.NewConnector(env, connStr)), "odbc")
	defer db.Close()
	args := make([]interface{}, len(c.Args.Params))
	for i, p := range c.Args.Params {
		args[i] = p
	}
	rows, err := db.Queryx(c.Args.Query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	n := 0
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return err
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = format(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
		n++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Info("query done", "rows", n)
	return nil
}

func format(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}

func main() {
	log = logger.New(os.Stderr)
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Debug {
			logger.Level.Set(slog.LevelDebug)
		}
		return cmd.Execute(args)
	}
	parser.AddCommand("entrypoints", "list entry points", "List the ODBC entry points and whether the library exports them.", &entryPointsCmd{})
	parser.AddCommand("datasources", "list data sources", "List the data sources known to the driver manager.", &dataSourcesCmd{})
	parser.AddCommand("drivers", "list drivers", "List the installed ODBC drivers.", &driversCmd{})
	parser.AddCommand("query", "run a query", "Run a query and print the result as a table.", &queryCmd{})

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		var ferr *flags.Error
		if !errors.As(err, &ferr) {
			log.Error("odbcdm failed", "error", err)
		}
		os.Exit(1)
	}
}
