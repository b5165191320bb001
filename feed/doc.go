// Package feed ingests realtime vehicle data and installs it on the network
// as per-journey observation snapshots.
//
// Two sources are supported: polling a GTFS-Realtime TripUpdates feed over
// HTTP, and subscribing to JSON snapshot messages on NATS. Both end in the
// same place, a SetRealtime swap on the matching vehicle journey.
package feed
