package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	lib "github.com/theoremus-urban-solutions/transit-trajectory"
	"github.com/theoremus-urban-solutions/transit-trajectory/config"
	"github.com/theoremus-urban-solutions/transit-trajectory/feed"
	"github.com/theoremus-urban-solutions/transit-trajectory/metrics"
	"github.com/theoremus-urban-solutions/transit-trajectory/network"
	"github.com/theoremus-urban-solutions/transit-trajectory/utils"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	dataset := flag.String("dataset", "", "network dataset path or URL (overrides config)")
	queryTime := flag.Int64("time", 0, "query time in seconds (oneshot; default now)")
	journey := flag.String("journey", "", "restrict oneshot output to one journey code")
	viewportFlag := flag.String("viewport", "", "viewport as WxH (overrides config)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	lib.InitLogging(*debug)
	if err := config.LoadAppConfig(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	source := config.DatasetSource()
	if *dataset != "" {
		source = *dataset
	}
	if source == "" {
		log.Fatal().Msg("no dataset configured; set dataset.path or pass -dataset")
	}
	raw, err := network.LoadRawNetwork(source)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("load dataset")
	}
	net, err := network.Build(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("build network")
	}

	width, height := config.Config.Viewport.Width, config.Config.Viewport.Height
	if *viewportFlag != "" {
		width, height = parseViewport(*viewportFlag)
	}
	var opts []lib.EngineOption
	if width > 0 && height > 0 {
		opts = append(opts, lib.WithViewport(width, height))
	}
	engine := lib.NewEngine(net, opts...)

	switch *mode {
	case "oneshot":
		oneshot(engine, *queryTime, *journey)
	case "serve":
		serve(engine, net)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

type oneshotRecord struct {
	Journey   string `json:"journey"`
	Deviation string `json:"deviation,omitempty"`
	lib.VehiclePosition
}

func oneshot(engine *lib.Engine, t int64, journeyCode string) {
	if t == 0 {
		t = time.Now().Unix()
	}

	codes := engine.ActiveJourneys(t)
	if journeyCode != "" {
		codes = []string{journeyCode}
	}

	records := make([]oneshotRecord, 0)
	for _, code := range codes {
		vehicles, err := engine.PositionsAt(code, t)
		if err != nil {
			log.Fatal().Err(err).Str("journey", code).Msg("query")
		}
		vj := engine.Network().VehicleJourneys[code]
		for _, vp := range vehicles {
			rec := oneshotRecord{Journey: code, VehiclePosition: vp}
			rec.Position = engine.ProjectToViewport(rec.Position)
			if dev, ok := lib.DeviationAt(vj, t, vp.Distance); ok {
				rec.Deviation = utils.PresentableDeviation(dev)
			}
			records = append(records, rec)
		}
	}

	buf, err := json.MarshalIndent(map[string]any{
		"time":      t,
		"date":      utils.Iso8601DateFromUnixSeconds(t),
		"positions": records,
	}, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
	fmt.Println(string(buf))
}

func serve(engine *lib.Engine, net *network.Network) {
	collector := metrics.NewCollector()
	server := lib.NewServer(engine, collector, config.Config.Server.Port)

	feedCfg := config.Config.Feed
	if feedCfg.NATSURL != "" {
		subject := feedCfg.NATSSubject
		if subject == "" {
			subject = "trajectory.snapshots"
		}
		sub, err := feed.NewNATSSubscriber(feedCfg.NATSURL, subject, net, func(epoch int64) {
			collector.FeedUpdates.Inc()
			server.OnFeedUpdate(epoch)
		})
		if err != nil {
			log.Fatal().Err(err).Msg("nats")
		}
		defer sub.Close()
	}

	if feedCfg.GTFSRTURL != "" {
		interval := time.Duration(feedCfg.PollIntervalMS) * time.Millisecond
		if interval <= 0 {
			interval = 30 * time.Second
		}
		timeout := time.Duration(feedCfg.TimeoutMS) * time.Millisecond
		src := feed.NewGTFSRTSource(feedCfg.GTFSRTURL, timeout)
		go pollFeed(src, net, server, collector, interval)
	}

	server.Start()
	server.WaitForShutdown()
}

func pollFeed(src *feed.GTFSRTSource, net *network.Network, server *lib.Server, collector *metrics.Collector, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		epoch, _, err := src.Refresh(net)
		if err != nil {
			collector.FeedErrors.Inc()
			log.Error().Err(err).Msg("gtfsrt refresh failed")
		} else {
			collector.FeedUpdates.Inc()
			server.OnFeedUpdate(epoch)
		}
		<-ticker.C
	}
}

func parseViewport(s string) (float64, float64) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		log.Fatal().Str("viewport", s).Msg("viewport must be WxH")
	}
	w, errW := strconv.ParseFloat(parts[0], 64)
	h, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		log.Fatal().Str("viewport", s).Msg("viewport must be WxH")
	}
	return w, h
}
