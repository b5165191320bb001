package feed

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// SnapshotMessage is the JSON payload carried on the NATS subject: the full
// set of live vehicles for one journey. An empty vehicle list clears the
// journey's realtime payload.
type SnapshotMessage struct {
	JourneyCode string                   `json:"journeyCode"`
	Epoch       int64                    `json:"epoch,omitempty"`
	Vehicles    []network.RawLiveVehicle `json:"vehicles"`
}

// NATSSubscriber applies snapshot messages to the network as they arrive.
type NATSSubscriber struct {
	nc  *nats.Conn
	sub *nats.Subscription
}

// NewNATSSubscriber connects, subscribes and starts applying messages.
// onApplied is called after every successfully installed snapshot with the
// message epoch, or the receive time when the publisher set none.
func NewNATSSubscriber(url, subject string, net *network.Network, onApplied func(epoch int64)) (*NATSSubscriber, error) {
	nc, err := nats.Connect(url,
		nats.Name("transit-trajectory"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			log.Warn().Msg("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Info().Msg("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}

	sub, err := nc.Subscribe(subject, func(m *nats.Msg) {
		applySnapshot(net, m.Data, onApplied)
	})
	if err != nil {
		nc.Close()
		return nil, err
	}
	log.Info().Str("subject", subject).Msg("nats subscribed")
	return &NATSSubscriber{nc: nc, sub: sub}, nil
}

func applySnapshot(net *network.Network, data []byte, onApplied func(epoch int64)) {
	var msg SnapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Error().Err(err).Msg("bad snapshot message")
		return
	}
	vj, ok := net.VehicleJourneys[msg.JourneyCode]
	if !ok {
		log.Debug().Str("journey", msg.JourneyCode).Msg("snapshot for unknown journey")
		return
	}
	vehicles, err := network.LiveVehiclesFromRaw(msg.JourneyCode, msg.Vehicles)
	if err != nil {
		log.Error().Err(err).Str("journey", msg.JourneyCode).Msg("rejected snapshot")
		return
	}
	vj.SetRealtime(vehicles)

	epoch := msg.Epoch
	if epoch == 0 {
		epoch = time.Now().Unix()
	}
	if onApplied != nil {
		onApplied(epoch)
	}
}

// Close drains the subscription before dropping the connection.
func (s *NATSSubscriber) Close() {
	if s.sub != nil {
		_ = s.sub.Drain()
	}
	if s.nc != nil {
		s.nc.Close()
	}
}
