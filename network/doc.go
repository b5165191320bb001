/*
Package network builds and indexes the static transport model: stops, stop
areas, journey patterns, links between adjacent stops, and scheduled vehicle
journeys.

The model is constructed once from a raw dataset and is read-only afterwards,
so it is safe for unrestricted concurrent reads. The only mutable field is the
per-journey realtime payload, which is replaced wholesale through an atomic
pointer swap; readers always see a complete snapshot.

# Basic Usage

	raw, err := network.LoadRawNetwork("dataset.json")
	if err != nil {
	    log.Fatal().Err(err).Msg("load dataset")
	}
	net, err := network.Build(raw)
	if err != nil {
	    log.Fatal().Err(err).Msg("build network")
	}

	vj := net.VehicleJourneys["4_717_1"]
	active := vj.ActiveAt(43200)
*/
package network
