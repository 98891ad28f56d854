// Package discovery registers the running API instance in etcd so front-desk
// clients and operators can resolve it. Registration is advisory: the server
// keeps serving if etcd is down.
package discovery

import (
	"context"
	"fmt"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/example/platterflow/pkg/config"
)

const leaseTTLSeconds = 30

type Registry struct {
	client *clientv3.Client
	config *config.EtcdConfig
}

type Instance struct {
	Name string
	Host string
	Port int
}

func (i *Instance) addr() string {
	return fmt.Sprintf("%s:%d", i.Host, i.Port)
}

func NewRegistry(cfg *config.EtcdConfig) (*Registry, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: cfg.DialTimeout * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	return &Registry{client: cli, config: cfg}, nil
}

func (r *Registry) key(instance *Instance) string {
	return fmt.Sprintf("%s%s/%s", r.config.Prefix, instance.Name, instance.addr())
}

// Register writes the instance under a leased key and keeps the lease alive in
// the background until ctx is cancelled.
func (r *Registry) Register(ctx context.Context, instance *Instance) error {
	lease, err := r.client.Grant(ctx, leaseTTLSeconds)
	if err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}

	if _, err := r.client.Put(ctx, r.key(instance), instance.addr(), clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("failed to register instance: %w", err)
	}

	ch, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return fmt.Errorf("failed to keep lease alive: %w", err)
	}
	go func() {
		for range ch {
		}
	}()

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instance *Instance) error {
	if _, err := r.client.Delete(ctx, r.key(instance)); err != nil {
		return fmt.Errorf("failed to deregister instance: %w", err)
	}
	return nil
}

func (r *Registry) Close() error {
	return r.client.Close()
}
