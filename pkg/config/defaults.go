package config

// defaultConfig holds the values merged into every loaded butler config for
// fields the file leaves unset.
func defaultConfig() *ButlerConfig {
	return &ButlerConfig{
		Timezone: "UTC",
		Modules: ModulesConfig{
			Approvals: &ApprovalsConfig{
				DefaultExpiryHours: 48,
				DefaultRiskTier:    "medium",
			},
			Scheduler: &SchedulerConfig{
				TickSeconds: 30,
			},
		},
		Worker: WorkerConfig{
			TimeoutSec: 600,
			GraceSec:   10,
		},
		Queue: QueueConfig{
			WorkerCount:        2,
			PollIntervalSec:    2,
			ShutdownTimeoutSec: 30,
		},
	}
}
