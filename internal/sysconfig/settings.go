// Package sysconfig is the system settings dialog: network, system and
// services tabs whose widgets load from and store to the value repository.
package sysconfig

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jask/cwmkit/internal/database/repository"
)

// Setting keys.
const (
	KeyHostname = "network.hostname"
	KeyDHCP     = "network.dhcp"
	KeyAddress  = "network.address"
	KeyMTU      = "network.mtu"
	KeyTimezone = "system.timezone"
	KeyLogLevel = "system.log_level"
	KeyMOTD     = "system.motd"
	KeyServices = "services.enabled"
	KeyZone     = "services.firewall_zone"
)

// Defaults are seeded into a fresh database.
var Defaults = map[string]any{
	KeyHostname: "localhost",
	KeyDHCP:     true,
	KeyAddress:  "",
	KeyMTU:      1500,
	KeyTimezone: "UTC",
	KeyLogLevel: "info",
	KeyMOTD:     "",
	KeyServices: []string{"sshd"},
	KeyZone:     "public",
}

// Settings is the backing store the widgets share. Hooks cannot return
// errors, so persistence failures are collected and reported by Err.
type Settings struct {
	ctx    context.Context
	values *repository.ValueRepo
	logger *log.Logger
	errs   []error
}

func NewSettings(ctx context.Context, values *repository.ValueRepo, logger *log.Logger) *Settings {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Settings{ctx: ctx, values: values, logger: logger}
}

// load decodes key into dst, falling back to the default when unset.
func (s *Settings) load(key string, dst any, fallback func()) {
	found, err := s.values.Get(s.ctx, key, dst)
	if err != nil {
		s.fail(err)
	}
	if !found || err != nil {
		fallback()
	}
}

func (s *Settings) save(key string, v any) {
	if err := s.values.Set(s.ctx, key, v); err != nil {
		s.fail(err)
		return
	}
	s.logger.Printf("stored %s", key)
}

func (s *Settings) fail(err error) {
	s.logger.Printf("settings: %v", err)
	s.errs = append(s.errs, err)
}

// Err returns every persistence error seen so far.
func (s *Settings) Err() error { return errors.Join(s.errs...) }

func (s *Settings) loadString(key string) string {
	var v string
	s.load(key, &v, func() { v, _ = Defaults[key].(string) })
	return v
}

func (s *Settings) loadBool(key string) bool {
	var v bool
	s.load(key, &v, func() { v, _ = Defaults[key].(bool) })
	return v
}

func (s *Settings) loadInt(key string) int {
	var v int
	s.load(key, &v, func() { v, _ = Defaults[key].(int) })
	return v
}

func (s *Settings) loadStrings(key string) []string {
	var v []string
	s.load(key, &v, func() { v, _ = Defaults[key].([]string) })
	return v
}
