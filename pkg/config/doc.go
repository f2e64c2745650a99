// Package config provides configuration management for the trajectory
// finder pipeline.
//
// # Overview
//
// Config centralizes every value a pipeline run needs: input/output
// paths, the patient quota k, the resolution-policy toggles, the solution
// pool size, and the worker-pool sizing. A run gets its Config from, in
// increasing priority, Default(), an optional JSON run-config file loaded
// with LoadFile, and finally the CLI flags in cmd/trajfinder.
//
// # Basic usage
//
//	cfg := config.Default()
//	cfg.DAGsPath = "./dags"
//	cfg.OutputPath = "./out"
//	cfg.K = 3
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Run-config files
//
// LoadFile reads a JSON document validated against a small inline
// gojsonschema schema, and overlays only the fields it sets onto a base
// Config, leaving the rest untouched.
package config
