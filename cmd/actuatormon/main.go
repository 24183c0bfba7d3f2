package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/robotalks/actuator.go/pkg/l1"
	"github.com/robotalks/actuator.go/pkg/l1/comm/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/actuator"
)

func init() {
	if val := os.Getenv("ACTUATOR_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		switch {
		case strings.HasSuffix(topic, "/"+l1.TopicMeta):
			if len(payload) == 0 {
				log.Printf("%s: offline", topic)
				return
			}
			log.Printf("%s: %s", topic, string(payload))
		case strings.HasSuffix(topic, "/"+l1.TopicState):
			var report mqtt.StateReport
			if err := json.Unmarshal(payload, &report); err != nil {
				log.Printf("%s: bad state: %v", topic, err)
				return
			}
			state, _ := json.Marshal(report.State)
			log.Printf("%s: %s", topic, string(state))
		case strings.HasSuffix(topic, "/"+l1.TopicCommand):
			log.Printf("%s: %v", topic, payload)
		}
	}))
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	<-(chan struct{})(nil)
}
