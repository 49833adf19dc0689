package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/openathletics/flextime/infra/logger"
)

// MQTTConfig defines the connection parameters for a remote resolver
// reachable over MQTT.
type MQTTConfig struct {
	Broker       string `json:"broker"`
	ClientID     string `json:"client_id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	RequestTopic string `json:"request_topic"`
	ReplyTopic   string `json:"reply_topic"`
	QoS          byte   `json:"qos"`
}

// mqttClient is the subset of the Paho client the resolver uses.
type mqttClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) mqttClient {
	return paho.NewClient(opts)
}

type mqttRequest struct {
	RequestID string `json:"request_id"`
	Input     string `json:"input"`
	Context   string `json:"context,omitempty"`
}

type mqttReply struct {
	RequestID string `json:"request_id"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
}

// MQTTResolver forwards tasks to a remote agent over MQTT request/reply.
// Each request carries a correlation id; replies are matched back to the
// waiting invocation.
type MQTTResolver struct {
	name         string
	cli          mqttClient
	requestTopic string
	qos          byte
	log          logger.Logger

	mu      sync.Mutex
	pending map[string]chan mqttReply
}

// NewMQTTResolver connects to the broker and subscribes to the reply topic.
func NewMQTTResolver(name string, cfg MQTTConfig) (*MQTTResolver, error) {
	log := logger.New("mqtt-resolver")
	r := &MQTTResolver{
		name:         name,
		requestTopic: cfg.RequestTopic,
		qos:          cfg.QoS,
		log:          log,
		pending:      make(map[string]chan mqttReply),
	}

	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(cfg.ReplyTopic, cfg.QoS, r.onReply); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	r.cli = c
	return r, nil
}

func (r *MQTTResolver) Name() string { return r.name }

func (r *MQTTResolver) onReply(_ paho.Client, msg paho.Message) {
	var reply mqttReply
	if err := json.Unmarshal(msg.Payload(), &reply); err != nil {
		r.log.Errorf("failed to decode reply: %v", err)
		return
	}
	r.mu.Lock()
	ch, ok := r.pending[reply.RequestID]
	r.mu.Unlock()
	if !ok {
		r.log.Warnf("reply for unknown request %s", reply.RequestID)
		return
	}
	select {
	case ch <- reply:
	default:
	}
}

// Invoke publishes the request and waits for the correlated reply or the
// context deadline.
func (r *MQTTResolver) Invoke(ctx context.Context, input, prior string) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(mqttRequest{RequestID: id, Input: input, Context: prior})
	if err != nil {
		return "", err
	}

	ch := make(chan mqttReply, 1)
	r.mu.Lock()
	r.pending[id] = ch
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
	}()

	if token := r.cli.Publish(r.requestTopic, r.qos, false, payload); token.Wait() && token.Error() != nil {
		return "", fmt.Errorf("publish request: %w", token.Error())
	}
	r.log.Debugf("sent request %s to %s", id, r.requestTopic)

	select {
	case reply := <-ch:
		if reply.Error != "" {
			return "", fmt.Errorf("remote resolver: %s", reply.Error)
		}
		return reply.Output, nil
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for reply: %w", ctx.Err())
	}
}

// Disconnect gracefully closes the MQTT connection.
func (r *MQTTResolver) Disconnect() {
	if r.cli != nil && r.cli.IsConnected() {
		r.cli.Disconnect(250)
	}
}
