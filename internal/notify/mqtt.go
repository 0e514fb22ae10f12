package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

const (
	scheduleTopic = "prayers/schedule"
	announceTopic = "prayers/announce"
)

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Announcer pushes prayer announcements to home displays over MQTT.
type Announcer struct {
	client mqtt.Client
}

func NewAnnouncer(brokerURL, clientName string) (*Announcer, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Announcer{client: client}, nil
}

// PublishSchedule pushes the full day schedule, retained so displays that
// connect late still receive it.
func (a *Announcer) PublishSchedule(page model.TimingsPageData) error {
	payload, err := json.Marshal(page)
	if err != nil {
		return err
	}
	token := a.client.Publish(scheduleTopic, 1, true, payload)
	token.Wait()
	return token.Error()
}

// PublishPrayer announces a single prayer at its time.
func (a *Announcer) PublishPrayer(p model.Prayer) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	token := a.client.Publish(announceTopic, 1, false, payload)
	token.Wait()
	return token.Error()
}

func (a *Announcer) Close() {
	a.client.Disconnect(250)
}
