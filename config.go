package main

import "sync"

type Config struct {
	MessageLogShown int    `json:"message_log_shown"`
	MessageLogCap   int    `json:"message_log_cap"`
	TickIntervalMs  int    `json:"tick_interval_ms"`
	RollSeed        uint64 `json:"roll_seed"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		MessageLogShown: 3,
		MessageLogCap:   64,
		TickIntervalMs:  50,
		RollSeed:        0,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
