// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/bsdate"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

const defaultFormat = "YYYY-MM-DD"

// Location is a time.Location that is specified in yaml by its IANA name.
type Location struct {
	*time.Location
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Location) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	l.Location = loc
	return nil
}

// Config represents the optional configuration file.
type Config struct {
	Location Location `yaml:"location" cmd:"IANA name of the location whose midnight starts a day, eg. Asia/Kathmandu"`
	Format   string   `yaml:"format" cmd:"format for BS dates using the tokens YYYY, YY, MM, M, DD and D"`
}

func parseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config   string `subcmd:"config,,yaml configuration file"`
	Location string `subcmd:"location,,'IANA name of the location whose midnight starts a day, defaults to the config file setting or Local'"`
}

// session holds the state shared by a single command invocation.
type session struct {
	conv   *bsdate.Converter
	format string
}

func (cf *CommonFlags) location(cfg Config) (*time.Location, error) {
	switch {
	case len(cf.Location) > 0:
		return time.LoadLocation(cf.Location)
	case cfg.Location.Location != nil:
		return cfg.Location.Location, nil
	}
	return time.Local, nil
}

// setup creates the logger, stored in the returned context, and the
// converter to be used by a command. The returned function must be called
// to release the logger.
func (cf *CommonFlags) setup(ctx context.Context, format string) (context.Context, session, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, session{}, func() {}, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	done := func() { logger.Close() }

	cfg, err := loadConfig(ctx, cf.Config)
	if err != nil {
		return ctx, session{}, done, err
	}
	loc, err := cf.location(cfg)
	if err != nil {
		return ctx, session{}, done, err
	}
	conv, err := bsdate.NewConverter(bsdate.DefaultTable(), bsdate.WithLocation(loc))
	if err != nil {
		return ctx, session{}, done, err
	}
	switch {
	case len(format) > 0:
	case len(cfg.Format) > 0:
		format = cfg.Format
	default:
		format = defaultFormat
	}
	ctxlog.Logger(ctx).Debug("session", "config", cf.Config, "location", loc.String(), "format", format)
	return ctx, session{conv: conv, format: format}, done, nil
}
