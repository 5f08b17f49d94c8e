package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"overseer/internal/common"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"
)

const (
	DefaultNatsMaxMessageCount    int64         = 1024
	DefaultNatsMaxSizeBytes       int64         = 1024 * 1024 * 128
	DefaultNatsPublishTimeout     time.Duration = 5 * time.Second
	DefaultNatsStreamReplicaCount int           = 1
)

// InitNatsOpts configures the InitNats method
type InitNatsOpts struct {
	// Addr contains the hostname:port address of the NATS instance
	Addr string

	// Username defines the username to use when authenticating with NATS
	Username string

	// Password defines the password to use when authenticating with NATS
	Password string

	// NKey takes precedence over the `Username` and `Password`
	// fields; when this is specified, the standard credentials
	// are ignored in favour of using this `NKey` which is arguably
	// more secure
	NKey string

	ServiceLogs chan<- common.ServiceLog
}

// InitNats initialises the singleton queue instance against a NATS
// JetStream deployment.
func InitNats(opts InitNatsOpts) error {
	natsOpts := []nats.Option{}
	if opts.NKey != "" {
		keyPair, err := nkeys.FromSeed([]byte(opts.NKey))
		if err != nil {
			return fmt.Errorf("failed to generate keypair from nkey: %w", err)
		}
		publicKey, err := keyPair.PublicKey()
		if err != nil {
			return fmt.Errorf("failed to generate public key from nkey: %w", err)
		}
		natsOpts = append(natsOpts, nats.Nkey(publicKey, keyPair.Sign))
	} else if opts.Username != "" && opts.Password != "" {
		natsOpts = append(natsOpts, nats.UserInfo(opts.Username, opts.Password))
	} else {
		return fmt.Errorf("failed to receive any authentication methods")
	}
	natsInstance := &Nats{
		Addr:        opts.Addr,
		ServiceLogs: opts.ServiceLogs,
		options:     natsOpts,
	}
	if err := natsInstance.Connect(); err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	instance = natsInstance
	return nil
}

type Nats struct {
	Addr        string
	Client      *nats.Conn
	ServiceLogs chan<- common.ServiceLog

	options       []nats.Option
	streamContext nats.JetStreamContext
}

func (n *Nats) Connect() error {
	var err error
	n.Client, err = nats.Connect("nats://"+n.Addr, n.options...)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	if !n.Client.IsConnected() {
		return fmt.Errorf("failed to verify connection")
	}
	n.streamContext, err = n.Client.JetStream()
	if err != nil {
		return fmt.Errorf("failed to get jetstream context: %w", err)
	}
	return nil
}

func (n *Nats) Close() error {
	if err := n.Client.Drain(); err != nil {
		return fmt.Errorf("failed to drain connection[%s]: %w", n.Client.ConnectedAddr(), err)
	}
	n.Client.Close()
	return nil
}

func (n *Nats) Push(opts PushOpts) (*PushOutput, error) {
	if err := n.ensureNats(); err != nil {
		return nil, fmt.Errorf("failed to validate nats setup: %w", err)
	}
	_, subject := getNatsQueueInfo(opts.Queue)
	ensureStreamOpts := natsStreamOpts{
		MaxMessagesCount: DefaultNatsMaxMessageCount,
		MaxSizeBytes:     DefaultNatsMaxSizeBytes,
		Replicas:         DefaultNatsStreamReplicaCount,
		QueueInfo:        opts.Queue,
	}
	if opts.Stream != nil {
		if opts.Stream.MaxMessagesCount != 0 {
			ensureStreamOpts.MaxMessagesCount = opts.Stream.MaxMessagesCount
		}
		if opts.Stream.MaxSizeBytes != 0 {
			ensureStreamOpts.MaxSizeBytes = opts.Stream.MaxSizeBytes
		}
		if opts.Stream.ReplicaCount != 0 {
			ensureStreamOpts.Replicas = opts.Stream.ReplicaCount
		}
	}
	if err := n.ensureStream(ensureStreamOpts); err != nil {
		return nil, fmt.Errorf("failed to ensure stream: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultNatsPublishTimeout)
	defer cancel()
	if _, err := n.streamContext.Publish(subject, opts.Data, nats.Context(ctx)); err != nil {
		return nil, fmt.Errorf("failed to publish message: %w", err)
	}
	return &PushOutput{
		MessageSizeBytes: len(opts.Data),
		Queue:            opts.Queue,
	}, nil
}

func (n *Nats) ensureNats() error {
	errs := []error{}
	if n.Client == nil {
		errs = append(errs, ErrorClientUndefined)
	}
	if n.streamContext == nil {
		errs = append(errs, ErrorStreamingClientUndefined)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

type natsStreamOpts struct {
	MaxMessagesCount int64
	MaxSizeBytes     int64
	Replicas         int
	QueueInfo        QueueOpts
}

func (n *Nats) ensureStream(opts natsStreamOpts) error {
	stream, subject := getNatsQueueInfo(opts.QueueInfo)
	if streamInfo, err := n.streamContext.StreamInfo(stream); err == nil && streamInfo != nil {
		cfg := streamInfo.Config
		if !isSubjectInSubjects(cfg.Subjects, subject) {
			cfg.Subjects = append(cfg.Subjects, subject)
			if _, err := n.streamContext.UpdateStream(&cfg); err != nil {
				return fmt.Errorf("failed to update stream[%s:%s]: %w", stream, subject, err)
			}
		}
		return nil
	}
	cfg := &nats.StreamConfig{
		Name:      stream,
		Subjects:  []string{subject},
		Replicas:  opts.Replicas,
		Retention: nats.InterestPolicy,
		MaxMsgs:   opts.MaxMessagesCount,
		MaxBytes:  opts.MaxSizeBytes,
		Storage:   nats.FileStorage,
		Discard:   nats.DiscardOld,
	}
	if _, err := n.streamContext.AddStream(cfg); err != nil {
		return fmt.Errorf("failed to add stream[%s:%s]: %w", stream, subject, err)
	}
	return nil
}

func getNatsQueueInfo(opts QueueOpts) (stream, subject string) {
	stream = strings.ToLower(opts.Stream)
	subject = fmt.Sprintf("%s.%s", stream, strings.ToLower(opts.Subject))
	return
}

func isSubjectInSubjects(subjects []string, target string) bool {
	for _, s := range subjects {
		if s == target {
			return true
		}
	}
	return false
}
