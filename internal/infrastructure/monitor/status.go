package monitor

import "time"

type Status struct {
	Store        bool      `json:"store"`
	StoreKeys    int       `json:"store_keys"`
	RedisEnabled bool      `json:"redis_enabled"`
	Redis        bool      `json:"redis"`
	LastCheck    time.Time `json:"last_check"`
}
