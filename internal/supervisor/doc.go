// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package supervisor runs the long-lived parts of regiotrend under suture v4.

Services are grouped into three child supervisors so that a crash in one
layer restarts only that layer:

	RootSupervisor ("regiotrend")
	├── DataSupervisor ("data-layer")
	│   └── DatasetReloaderService   polls the source for a new version
	├── MessagingSupervisor ("messaging-layer")
	│   └── NotificationHubService   fans dataset_reloaded out to WebSocket clients
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing reloader never takes the HTTP server down: requests keep being
answered from the last loaded table.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddService(supervisor.LayerData, services.NewDatasetReloaderService(reloader))
	tree.AddService(supervisor.LayerMessaging, services.NewNotificationHubService(hub))
	tree.AddService(supervisor.LayerAPI, services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Return values

	nil                   stopped cleanly, not restarted
	error                 crashed, restarted with backoff
	ctx.Err()             shutdown requested
	suture.ErrDoNotRestart finished for good

Supervisor events (start, failure, backoff) are logged through sutureslog
into the same zerolog output as the rest of the process.
*/
package supervisor
