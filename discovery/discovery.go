// Package discovery announces the service on the local network over
// mDNS and keeps track of other running instances.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Wagner-UFRRJ/agrimensura/logging"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

const ServiceName = "_agrimensura._tcp"

// Peer is another service instance seen on the network.
type Peer struct {
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	Properties map[string]string `json:"properties,omitempty"`
}

type Controller struct {
	name       string
	port       uint
	properties map[string]string

	resolver *zeroconf.Resolver

	peerLock sync.RWMutex
	peers    map[string]Peer
}

func NewController(name string, port uint, properties map[string]string) (*Controller, error) {
	resolver, err := zeroconf.NewResolver()
	if err != nil {
		return nil, err
	}
	return &Controller{
		name:       name,
		port:       port,
		properties: properties,
		resolver:   resolver,
		peers:      make(map[string]Peer),
	}, nil
}

// ListenAndServe registers this instance and browses for peers until
// the context is cancelled.
func (c *Controller) ListenAndServe(ctx context.Context) {
	logger, ctx := logging.SubFrom(ctx, "discovery")
	server, err := zeroconf.Register(c.name, ServiceName, "local.", int(c.port), propertiesAsTXT(c.properties), nil)
	if err != nil {
		logger.Error("Failed to publish zeroconf service", zap.Error(err))
		return
	}
	defer server.Shutdown()

	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		for e := range entries {
			if e == nil {
				continue
			}
			c.peerDiscovered(ctx, e)
		}
	}()
	if err := c.resolver.Browse(ctx, ServiceName, "", entries); err != nil {
		logger.Error("Failed to browse mDNS services", zap.Error(err))
		return
	}
	logger.Info("mDNS browsing", zap.String("service", ServiceName))
	<-ctx.Done()
}

func (c *Controller) peerDiscovered(ctx context.Context, e *zeroconf.ServiceEntry) {
	if e.Instance == c.name {
		return
	}
	peer := Peer{
		Name:       e.Instance,
		Properties: propertiesFromTXT(e.Text),
	}
	if len(e.AddrIPv4) > 0 {
		peer.URL = fmt.Sprintf("http://%s:%d", e.AddrIPv4[0], e.Port)
	}
	c.peerLock.Lock()
	c.peers[peer.Name] = peer
	c.peerLock.Unlock()
	logging.From(ctx).Info("Peer detected", zap.String("peer", peer.Name), zap.String("url", peer.URL))
}

// Peers returns the instances seen so far.
func (c *Controller) Peers() (peers []Peer) {
	c.peerLock.RLock()
	defer c.peerLock.RUnlock()
	for _, p := range c.peers {
		peers = append(peers, p)
	}
	return
}

func propertiesAsTXT(p map[string]string) (txt []string) {
	for k, v := range p {
		txt = append(txt, fmt.Sprintf("%s=%s", k, v))
	}
	return
}

func propertiesFromTXT(txt []string) (p map[string]string) {
	p = make(map[string]string)
	for _, kv := range txt {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 && parts[0] != "" {
			p[parts[0]] = parts[1]
		}
	}
	return
}
