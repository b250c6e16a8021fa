// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

/*
Package services adapts regiotrend components to suture.Service.

  - HTTPServerService turns ListenAndServe/Shutdown into Serve(ctx) with a
    bounded graceful shutdown.
  - NotificationHubService runs the WebSocket hub that broadcasts
    dataset_reloaded messages.
  - DatasetReloaderService runs the periodic source version check.

Each wrapper names itself through fmt.Stringer so suture events read
"dataset-reloader: restarting" rather than a type name. Wrappers depend on
small interfaces rather than concrete types so they can be tested with
doubles and do not import the packages they supervise.
*/
package services
