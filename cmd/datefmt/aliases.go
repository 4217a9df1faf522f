// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datefmt"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// aliasConfig is the schema of the alias file, eg:
//
//	aliases:
//	  us: MM/dd/yyyy
//	  stamp: yyyy-MM-dd HH:mm:ss.SSS
type aliasConfig struct {
	Aliases map[string]string `yaml:"aliases"`
}

var builtinAliases = map[string]string{
	"iso-date":     datefmt.ISODate.Pattern(),
	"iso-time":     datefmt.ISOTime.Pattern(),
	"iso-datetime": datefmt.ISODateTime.Pattern(),
}

// loadAliases reads the user defined aliases. A missing file is not an
// error, the built-in aliases are always available.
func loadAliases(file string) (map[string]string, error) {
	cfg := aliasConfig{}
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return cfg.Aliases, nil
}

func saveAliases(file string, aliases map[string]string) error {
	buf, err := yaml.Marshal(aliasConfig{Aliases: aliases})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, buf, 0o644)
}

// compilePattern compiles pattern, first resolving it against the
// built-in aliases and then those defined in aliasFile.
func compilePattern(aliasFile, pattern string) (*datefmt.Formatter, error) {
	if p, ok := builtinAliases[pattern]; ok {
		return datefmt.Compile(p)
	}
	aliases, err := loadAliases(aliasFile)
	if err != nil {
		return nil, err
	}
	if p, ok := aliases[pattern]; ok {
		return datefmt.Compile(p)
	}
	return datefmt.Compile(pattern)
}

func (c *commands) aliasesList(ctx context.Context, values interface{}, _ []string) error {
	fl := values.(*commonFlags)
	_, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	user, err := loadAliases(fl.AliasFile)
	if err != nil {
		return err
	}
	merged := map[string]string{}
	for name, pattern := range builtinAliases {
		merged[name] = pattern
	}
	for name, pattern := range user {
		merged[name] = pattern
	}
	buf, err := yaml.Marshal(aliasConfig{Aliases: merged})
	if err != nil {
		return err
	}
	_, err = c.out.Write(buf)
	return err
}

func (c *commands) aliasesAdd(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*commonFlags)
	ctx, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	name, pattern := args[0], args[1]
	if _, ok := builtinAliases[name]; ok {
		return fmt.Errorf("%q is a built-in alias and cannot be replaced", name)
	}
	if len(name) == 0 || strings.ContainsAny(name, " \t'") {
		return fmt.Errorf("invalid alias name: %q", name)
	}
	if _, err := datefmt.Compile(pattern); err != nil {
		return err
	}
	user, err := loadAliases(fl.AliasFile)
	if err != nil {
		return err
	}
	if user == nil {
		user = map[string]string{}
	}
	user[name] = pattern
	if err := saveAliases(fl.AliasFile, user); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("saved alias", "file", fl.AliasFile, "alias", name, "pattern", pattern)
	return nil
}

func (c *commands) aliasesRemove(ctx context.Context, values interface{}, args []string) error {
	fl := values.(*commonFlags)
	ctx, logger, err := fl.initContext(ctx)
	if err != nil {
		return err
	}
	defer logger.Close()
	name := args[0]
	if _, ok := builtinAliases[name]; ok {
		return fmt.Errorf("%q is a built-in alias and cannot be removed", name)
	}
	user, err := loadAliases(fl.AliasFile)
	if err != nil {
		return err
	}
	if _, ok := user[name]; !ok {
		return fmt.Errorf("no alias %q in %v", name, fl.AliasFile)
	}
	delete(user, name)
	if err := saveAliases(fl.AliasFile, user); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("removed alias", "file", fl.AliasFile, "alias", name)
	return nil
}
