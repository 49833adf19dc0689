package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestMQTTResolverIntegration runs the request/reply flow against a real
// Mosquitto broker with an echo responder on the request topic.
func TestMQTTResolverIntegration(t *testing.T) {
	if os.Getenv("DOCKER_AVAILABLE") != "true" && os.Getenv("DOCKER_AVAILABLE") != "1" {
		t.Skip("docker not available")
	}
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "eclipse-mosquitto:2.0",
		ExposedPorts: []string{"1883/tcp"},
		WaitingFor:   wait.ForListeningPort("1883/tcp"),
		Cmd:          []string{"mosquitto", "-c", "/mosquitto-no-auth.conf"},
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "1883")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}
	broker := fmt.Sprintf("tcp://%s:%s", host, port.Port())

	// Responder echoing every request back on the reply topic.
	respOpts := paho.NewClientOptions().AddBroker(broker).SetClientID("responder")
	responder := paho.NewClient(respOpts)
	if token := responder.Connect(); token.Wait() && token.Error() != nil {
		t.Fatalf("responder connect: %v", token.Error())
	}
	defer responder.Disconnect(250)
	token := responder.Subscribe("flextime/requests", 0, func(c paho.Client, m paho.Message) {
		var in mqttRequest
		if err := json.Unmarshal(m.Payload(), &in); err != nil {
			return
		}
		out, _ := json.Marshal(mqttReply{RequestID: in.RequestID, Output: "echo: " + in.Input})
		c.Publish("flextime/replies", 0, false, out)
	})
	if token.Wait() && token.Error() != nil {
		t.Fatalf("responder subscribe: %v", token.Error())
	}

	resolver, err := NewMQTTResolver("remote_agent", MQTTConfig{
		Broker:       broker,
		ClientID:     "flextime-test",
		RequestTopic: "flextime/requests",
		ReplyTopic:   "flextime/replies",
	})
	if err != nil {
		t.Fatalf("create resolver: %v", err)
	}
	defer resolver.Disconnect()

	// give the reply subscription time to settle
	time.Sleep(500 * time.Millisecond)

	invokeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	out, err := resolver.Invoke(invokeCtx, "check venues", "")
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if out != "echo: check venues" {
		t.Errorf("unexpected output: %q", out)
	}
}
