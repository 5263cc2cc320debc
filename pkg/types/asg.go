package types

// GroupConfig is the normalized configuration of an Auto Scaling Group.
// Field order matches the order callers see when the record is rendered
// as YAML or JSON, and is part of the output contract.
type GroupConfig struct {
	Name                string                     `yaml:"name" json:"name"`
	AvailabilityZones   []string                   `yaml:"availability_zones" json:"availability_zones"`
	DefaultCooldown     int32                      `yaml:"default_cooldown" json:"default_cooldown"`
	DesiredCapacity     int32                      `yaml:"desired_capacity" json:"desired_capacity"`
	HealthCheckPeriod   int32                      `yaml:"health_check_period" json:"health_check_period"`
	HealthCheckType     string                     `yaml:"health_check_type" json:"health_check_type"`
	LaunchConfigName    string                     `yaml:"launch_config_name" json:"launch_config_name"`
	LoadBalancers       []string                   `yaml:"load_balancers" json:"load_balancers"`
	MaxSize             int32                      `yaml:"max_size" json:"max_size"`
	MinSize             int32                      `yaml:"min_size" json:"min_size"`
	VPCZoneIdentifier   []string                   `yaml:"vpc_zone_identifier" json:"vpc_zone_identifier"`
	Tags                []Tag                      `yaml:"tags" json:"tags"`
	TerminationPolicies []string                   `yaml:"termination_policies" json:"termination_policies"`
	SuspendedProcesses  []string                   `yaml:"suspended_processes" json:"suspended_processes"`
	ScalingPolicies     []ScalingPolicy            `yaml:"scaling_policies" json:"scaling_policies"`
	ScheduledActions    map[string]ScheduledAction `yaml:"scheduled_actions" json:"scheduled_actions"`
}

// Tag is a single group tag.
type Tag struct {
	Key               string `yaml:"key" json:"key"`
	Value             string `yaml:"value" json:"value"`
	PropagateAtLaunch bool   `yaml:"propagate_at_launch" json:"propagate_at_launch"`
}

// ScalingPolicy is a scaling policy attached to a group. Order within
// GroupConfig.ScalingPolicies is whatever AWS returned.
type ScalingPolicy struct {
	Name              string `yaml:"name" json:"name"`
	AdjustmentType    string `yaml:"adjustment_type" json:"adjustment_type"`
	ScalingAdjustment int32  `yaml:"scaling_adjustment" json:"scaling_adjustment"`
	MinAdjustmentStep int32  `yaml:"min_adjustment_step" json:"min_adjustment_step"`
	Cooldown          int32  `yaml:"cooldown" json:"cooldown"`
}

// ScheduledAction is a scheduled scaling action, keyed by action name in
// GroupConfig.ScheduledActions. EndTime is nil when AWS reports no end time.
type ScheduledAction struct {
	MinSize         int32   `yaml:"min_size" json:"min_size"`
	MaxSize         int32   `yaml:"max_size" json:"max_size"`
	DesiredCapacity int     `yaml:"desired_capacity" json:"desired_capacity"`
	StartTime       string  `yaml:"start_time" json:"start_time"`
	EndTime         *string `yaml:"end_time" json:"end_time"`
	Recurrence      string  `yaml:"recurrence" json:"recurrence"`
}

// GroupSummary is the thin listing record used by `asgcfg ls` and the
// interactive selector.
type GroupSummary struct {
	Name             string
	LaunchConfigName string
	DesiredCapacity  int
	MinSize          int
	MaxSize          int
	AZs              []string
}
