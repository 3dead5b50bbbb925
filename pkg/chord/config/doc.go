/*
Package config loads chord client settings from files and the environment.

# Overview

config declares the file- and environment-loadable subset of a client
configuration (debug flags, logging and pruning toggles, the store
metadata block) and loaders for YAML, JSON, CHORD_* environment
variables and .env files.

# Basic Usage

Load from a file, overlay the environment, and apply to a client config:

	settings, err := config.FromFile("chord.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	env, _ := config.FromEnv()
	settings = config.Merge(settings, env)

	var cfg chord.Config[Cart, Checkout, Line, Product]
	cfg.CDP = segmentClient
	cfg.Formatters = formatters
	config.Apply(&cfg, settings)

	client, err := chord.New(cfg)

# Precedence

Merge overlays its second argument on the first: explicit environment
values win over file values, and values already set on the chord.Config
before Apply win over both for the tri-state toggles. Debug is ORed at
every layer, since false is indistinguishable from unset.
*/
package config
