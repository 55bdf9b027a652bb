// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package supervisor provides the suture v4 process supervision tree.

# Tree layout

	animerec (root)
	├── data-layer
	│   └── refresh-service   periodic and admin-triggered snapshot reloads
	└── api-layer
	    └── http-server       chi router behind net/http

Each layer is its own supervisor, so repeated refresh failures back off
inside the data layer while the API keeps answering from the last
snapshot.

# Logging

Supervisor events (service panics, restarts, backoff) go through
sutureslog into the zerolog pipeline:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewRefreshService(engine, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
	err = tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
